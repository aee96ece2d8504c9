// Package xgxopaque defines the minimal opaque error model used across xgx
// projects where classification must not depend on concrete types. It keeps
// perfect interoperability with the Go standard library.
//
// Design tenets:
//   - Capability over identity: callers ask what an error can do, never what
//     it is.
//   - Interop-first: play nicely with errors.Is/As and errors.Join.
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - Minimal surface: no logging/HTTP/JSON in core; adapters live in
//     subpackages (e.g., opaquelog).
package xgxopaque

// Caps is the capability set an error may assert. Flags are fixed at
// construction and independent of each other: a Timeout error is not
// implicitly Temporary, and vice versa.
//
// The zero value (all false) means "no retry guidance": the error is
// classifiable but asserts nothing.
type Caps struct {
	// Timeout reports that the operation exceeded its time budget.
	Timeout bool

	// Temporary reports a condition expected to clear on its own, making a
	// retry reasonable (dependency briefly down, transient contention).
	Temporary bool
}

// Error is the fluent, interop-friendly contract for xgx opaque errors.
//
// All fluent methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and MUST NOT alter the receiver. This makes shared error
// values safe across goroutines without synchronization and keeps chains
// reproducible for logs and tests.
//
// The Timeout/Temporary getters double as the behavior-assertion hooks that
// Classify looks for; the same method set is honored on foreign errors
// (net.Error implementations classify without any adaptation).
type Error interface {
	// error provides the link's own concise message. The full chain is
	// rendered by FormatChain at the reporting boundary, not here.
	error

	// Ctx attaches a short contextual message and optional key-value fields.
	// If the receiver's message is empty, msg is set once; messages are
	// never concatenated. Keys should be snake_case. Returns a NEW Error.
	Ctx(msg string, kv ...any) Error

	// With adds a single key-value field. Returns a NEW Error.
	With(key string, val any) Error

	// WithStack attaches a stack trace captured at the call site.
	// Returns a NEW Error.
	WithStack() Error

	// WithStackSkip is like WithStack but skips additional call frames
	// (for helper wrappers). Returns a NEW Error.
	WithStackSkip(skip int) Error

	// Timeout reports the value's own Timeout flag. Chain-aware queries
	// belong to Classify/IsTimeout, which also consider causes.
	Timeout() bool

	// Temporary reports the value's own Temporary flag.
	Temporary() bool

	// Context returns a shallow COPY of the structured context as a map.
	// Safe for callers to mutate (copy-on-read); last write wins on
	// duplicate keys.
	Context() map[string]any

	// Unwrap returns the causal parent (nil for root failures), enabling
	// stdlib traversal via errors.Is/As.
	Unwrap() error
}
