// doc.go — package documentation for xgx-opaque
//
// Package xgxopaque provides opaque, capability-classified errors and a
// fail-fast write wrapper. It is the xgx answer to two recurring questions
// in request-handling code:
//
//  1. "Should I retry this?" — answered by asking the error what it can do
//     (capability assertion), never by matching its concrete type or a
//     sentinel identity.
//  2. "Do I really need an error check after every write?" — answered by a
//     sticky writer that remembers the first failure and turns a batch of
//     dependent writes into a single final check.
//
// # Capability Model
//
// An error value carries a message, an optional cause, structured context
// fields, and a fixed set of capability flags decided at construction:
//
//	Timeout   — the operation exceeded its time budget
//	Temporary — the condition may clear on its own; retrying is reasonable
//
// Callers never see the concrete type. They ask:
//
//	caps := xgxopaque.Classify(err)
//	if caps.Temporary { retry() }
//
// Classify walks the full cause chain and honors any link that asserts the
// behavior, including foreign errors with net.Error-style Timeout/Temporary
// methods. An error with no flags anywhere classifies all-false; that is an
// answer, not a failure.
//
// # Wrapping
//
// Wrap adds one link to the chain per call — message plus optional fields —
// and never flattens or rewrites what it wraps:
//
//	if err != nil {
//	    return xgxopaque.Wrap(err, "persist order", "order_id", id)
//	}
//
// Wrap(nil, ...) returns nil: wrapping requires an existing failure, and
// nil-in/nil-out keeps call sites free of special cases. Once constructed,
// a value's message, cause, and flags never change; fluent methods such as
// Ctx and With return a NEW value (copy-on-write).
//
// # Fail-Fast Writing
//
// FailWriter wraps an io.Writer. Writes forward until the first failure;
// from then on every Write returns the remembered error immediately and the
// underlying writer is never touched again:
//
//	fw := xgxopaque.NewFailWriter(conn)
//	fw.Write(header)
//	fw.Write(body)
//	fw.Write(trailer)
//	if err := fw.Err(); err != nil {
//	    return err // exactly the first failure, wrapped with position
//	}
//
// The per-call results inside the batch are deliberately ignorable: the
// batch is one logical unit, so partial completion has no independent
// meaning and the single Err() check decides the whole sequence.
//
// # Report Once
//
// Intermediate layers wrap and return; they do not log. The boundary that
// finally handles the error renders the whole chain exactly once:
//
//	log.Error().Msg(xgxopaque.FormatChain(err))
//
// FormatChain prints every link, outermost context first, innermost root
// last. The opaquelog subpackage adapts this to zerolog for callers that
// want structured output; the core stays logging-free.
//
// # Formatting
//
// Errors implement fmt.Formatter:
//   - %v, %s → concise, single-line (the link's own message)
//   - %+v    → verbose, multi-line (caps, msg, ctx, cause recursion, stack)
//   - %q     → quoted concise form
//
// # Interop
//
//   - errors.Is/As traverse the chain via Unwrap(); Has is the nil-safe form.
//   - Join mirrors errors.Join but keeps %+v recursive.
//   - Stacks are opt-in via WithStack; classification stays cheap.
//
// # Concurrency
//
// Error values are immutable and freely shareable. FailWriter is a single
// sequential writer by design: no internal locking, callers serialize.
package xgxopaque
