// typed_field.go — optional type-safe context field helpers.
//
// TypedField is an ergonomic layer over the plain string/any context API
// (`With`, `Ctx`). It does not replace it; the two mix freely.
//
// Usage:
//
//	var (
//	    FOpID    = xgxopaque.NewTypedField[string]("op_id")
//	    FAttempt = xgxopaque.NewTypedField[int]("attempt")
//	)
//
//	err := xgxopaque.Temporary("queue full")
//	err = FAttempt.Set(err, 2)
//	n, ok := FAttempt.Get(err) // 2, true
//
// Caveats:
//   - Get performs an exact type assertion; the stored dynamic type must
//     match T, no conversions.
//   - Get reads through Context(), which is copy-on-read (one map
//     allocation per call).
package xgxopaque

import (
	"fmt"
)

// TypedField provides type-safe access to one context key.
// T is the Go type stored and retrieved for that key.
type TypedField[T any] struct {
	key string
}

// NewTypedField constructs a TypedField[T] for key.
// Keys SHOULD be snake_case for consistency across logs.
func NewTypedField[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key.
func (f TypedField[T]) Key() string { return f.key }

// Set attaches (key = val) and returns a NEW Error. A nil receiver error
// yields a fresh message-less failure carrying only the field; prefer
// passing a non-nil Error.
func (f TypedField[T]) Set(e Error, val T) Error {
	if e == nil {
		return New("", f.key, any(val))
	}
	return e.With(f.key, any(val))
}

// Get retrieves the typed value from e.
// Returns (zero, false) if e is nil, the field is absent, or the stored
// dynamic type differs from T.
func (f TypedField[T]) Get(e Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	m := e.Context()
	if m == nil {
		return zero, false
	}
	v, ok := m[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics. Intended for tests and
// contexts where absence is a programming error.
func (f TypedField[T]) MustGet(e Error) T {
	var zero T
	if e == nil {
		panic(fmt.Errorf("xgxopaque.TypedField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := e.Context()[f.key]
	if !ok {
		panic(fmt.Errorf("xgxopaque.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("xgxopaque.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
