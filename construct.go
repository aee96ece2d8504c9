// construct.go — the concrete opaque error type and its constructors.
//
// Scope:
//   - One concrete type (opaqueErr) implementing xgxopaque.Error with
//     NON-MUTATING fluent methods (copy-on-write clone on every builder).
//   - Constructors that fix capability flags at construction time; nothing
//     can change them afterwards.
//   - Wrap, the one chain-building operation: one new link per call, cause
//     preserved untouched.
//
// Interop:
//   - errors.Is/As traverse via Unwrap.
//   - Foreign errors are never rewritten; Wrap links to them as-is.
package xgxopaque

// opaqueErr is the single concrete error type of the package. Callers only
// ever see it through the Error interface or plain error; classification
// goes through the Timeout/Temporary behavior hooks, so the type itself
// stays an implementation detail and can never be matched against.
type opaqueErr struct {
	msg   string
	caps  Caps
	ctx   fields
	cause error
	stk   Stack
}

func (e *opaqueErr) Error() string {
	if e.msg == "" {
		return "error"
	}
	return e.msg
}

func (e *opaqueErr) Unwrap() error           { return e.cause }
func (e *opaqueErr) Timeout() bool           { return e.caps.Timeout }
func (e *opaqueErr) Temporary() bool         { return e.caps.Temporary }
func (e *opaqueErr) Context() map[string]any { return ctxToMap(e.ctx) }

// Ctx sets the message once (only if currently empty) and appends fields.
// It never concatenates messages; progressive detail belongs in context
// fields, or in a new Wrap link.
func (e *opaqueErr) Ctx(msg string, kv ...any) Error {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = ctxCloneAppend(n.ctx, ctxFromKV(kv...)...)
	}
	return n
}

func (e *opaqueErr) With(key string, val any) Error {
	n := e.clone()
	n.ctx = ctxCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

func (e *opaqueErr) WithStack() Error {
	return e.WithStackSkip(0)
}

func (e *opaqueErr) WithStackSkip(skip int) Error {
	n := e.clone()
	n.stk = captureStackDefault(skip + 1) // +1 to skip this method
	return n
}

// clone copies the receiver, deep-copying the context slice so the original
// can never observe later appends. msg, caps, cause, and stk are immutable
// values; shallow copy is sufficient for them.
func (e *opaqueErr) clone() *opaqueErr {
	n := *e
	if len(e.ctx) > 0 {
		copied := make(fields, len(e.ctx))
		copy(copied, e.ctx)
		n.ctx = copied
	} else {
		n.ctx = emptyFields
	}
	return &n
}

// -----------------------------------------------------------------------------
// Constructors — capability flags are decided here and only here
// -----------------------------------------------------------------------------

// New creates a root failure with no capability flags and optional context.
func New(msg string, kv ...any) Error {
	return &opaqueErr{msg: msg, ctx: ctxFromKV(kv...)}
}

// Timeout creates a root failure asserting the Timeout capability.
func Timeout(msg string, kv ...any) Error {
	return &opaqueErr{msg: msg, caps: Caps{Timeout: true}, ctx: ctxFromKV(kv...)}
}

// Temporary creates a root failure asserting the Temporary capability.
func Temporary(msg string, kv ...any) Error {
	return &opaqueErr{msg: msg, caps: Caps{Temporary: true}, ctx: ctxFromKV(kv...)}
}

// WithCaps creates a root failure with an explicit capability set. Use it
// when both flags apply (e.g., a timeout worth retrying) or when the set is
// computed by the producer.
func WithCaps(caps Caps, msg string, kv ...any) Error {
	return &opaqueErr{msg: msg, caps: caps, ctx: ctxFromKV(kv...)}
}

// Wrap adds one diagnostic link on top of cause: a new error whose message
// is msg, whose context holds kv, and whose cause is exactly the argument.
//
// Wrapping requires an existing failure: Wrap(nil, ...) returns nil, so
// call sites can wrap unconditionally on the error path. The cause is never
// flattened, truncated, or rewritten — wrapping an already-wrapped error
// extends the chain by one link and preserves everything below. The new
// link carries no capability flags of its own; Classify still sees the
// cause's flags through the chain.
func Wrap(cause error, msg string, kv ...any) Error {
	if cause == nil {
		return nil
	}
	return &opaqueErr{msg: msg, ctx: ctxFromKV(kv...), cause: cause}
}

// From adopts any error as an Error without adding a chain link.
//   - nil → nil
//   - Error → returned as-is
//   - other error → wrapped in a message-less link (FormatChain and
//     Classify see straight through it)
func From(err error) Error {
	if err == nil {
		return nil
	}
	if oe, ok := err.(Error); ok {
		return oe
	}
	return &opaqueErr{ctx: emptyFields, cause: err}
}

var _ Error = (*opaqueErr)(nil)
