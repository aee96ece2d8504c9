// chain.go — traversal over cause chains and joined error trees.
//
// Scope:
//   - Generic walking over both wrapping forms the stdlib recognizes:
//     Unwrap() error (classic chains) and Unwrap() []error (errors.Join,
//     multi-%w).
//   - Cycle-safe: a dual seen-set guards traversal, because map[error] alone
//     panics on non-comparable dynamic types. Comparable values go in an
//     error-keyed set; pointer-typed non-comparables are tracked by pointer
//     identity; anything else is treated as acyclic under the depth cap.
package xgxopaque

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// chainSeen tracks visited nodes across both identity regimes.
type chainSeen struct {
	byVal map[error]struct{}
	byPtr map[uintptr]struct{}
}

func newChainSeen() *chainSeen {
	return &chainSeen{
		byVal: make(map[error]struct{}, 8),
		byPtr: make(map[uintptr]struct{}, 8),
	}
}

// mark reports whether err was newly marked (false → already seen).
func (s *chainSeen) mark(err error) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := s.byVal[err]; dup {
			return false
		}
		s.byVal[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := s.byPtr[id]; dup {
			return false
		}
		s.byPtr[id] = struct{}{}
		return true
	}
	// Neither comparable nor pointer: rely on the depth cap.
	return true
}

// maxChainDepth bounds traversal against runaway or cyclic graphs.
const maxChainDepth = 1 << 12

// Walk visits each distinct node of err's unwrap graph in pre-order (node
// before its causes), left to right across joins. Traversal stops early
// when visit returns false. nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newChainSeen()
	stack := make([]error, 0, 8)
	stack = append(stack, err)
	seen.mark(err)

	for len(stack) > 0 && len(stack) < maxChainDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			// Push in reverse so children pop left-to-right.
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil && seen.mark(kids[i]) {
					stack = append(stack, kids[i])
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && seen.mark(u) {
				stack = append(stack, u)
			}
		}
	}
}

// Flatten returns the leaf errors of err's unwrap graph (nodes with no
// causes) in depth-first order. nil yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	Walk(err, func(e error) bool {
		switch n := e.(type) {
		case multiUnwrapper:
			if len(n.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if n.Unwrap() != nil {
				return true
			}
		}
		out = append(out, e)
		return true
	})
	return out
}

// Root returns the innermost error along the first path — the original
// failure a chain of Wrap calls started from. nil-safe.
func Root(err error) error {
	leaves := Flatten(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Has reports whether target appears anywhere in err's unwrap graph.
// Matching follows errors.Is: identity for sentinel values, plus any
// Is(error) bool equivalence hook a link defines. Nil-safe on both sides.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
