// failwriter.go — the fail-fast write wrapper.
//
// FailWriter collapses N sequential fallible writes into one final check.
// The underlying operations form a single logical unit (a multi-part
// message, one HTTP response body), so partial completion has no meaning on
// its own: after the first failure every later write is a no-op and the
// batch fails with exactly the first error.
//
// State machine: {healthy, failed}, starting healthy. The first underlying
// failure moves the writer to failed; there is no transition back, and the
// remembered error never changes. Create one FailWriter per batch.
package xgxopaque

import (
	"io"
)

// FailWriter wraps exactly one io.Writer and remembers its first failure.
//
// Not safe for concurrent writers: its use case is a single sequential
// producer, so it carries no locking. Error values it returns are immutable
// and safe to share.
type FailWriter struct {
	w   io.Writer
	n   int64 // bytes the underlying writer accepted
	err error // first failure, wrapped once; sticky forever
}

// NewFailWriter wraps w. A nil w fails the first Write with a wrapped
// io.ErrClosedPipe rather than panicking mid-batch.
func NewFailWriter(w io.Writer) *FailWriter {
	return &FailWriter{w: w}
}

// Write forwards p to the underlying writer unless a failure has already
// been remembered.
//
//   - already failed → (0, remembered error); the underlying writer is not
//     touched and no new error is created.
//   - underlying failure → remembers the error wrapped with the byte offset
//     and returns (0, remembered error). Bytes the writer accepted before
//     failing still count toward Written.
//   - short write with a nil error → treated as io.ErrShortWrite, same
//     handling as a failure.
//   - success → (len(p), nil).
//
// Inside a batch the per-call result is deliberately ignorable; Err decides
// the batch. The error return exists to honor io.Writer's contract and for
// callers that want to stop a loop early.
func (fw *FailWriter) Write(p []byte) (int, error) {
	if fw.err != nil {
		return 0, fw.err
	}
	if fw.w == nil {
		fw.err = Wrap(io.ErrClosedPipe, "write failed", "offset", fw.n)
		return 0, fw.err
	}
	n, err := fw.w.Write(p)
	if n > 0 {
		fw.n += int64(n)
	}
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		fw.err = Wrap(err, "write failed", "offset", fw.n)
		return 0, fw.err
	}
	return n, nil
}

// WriteString writes s with Write's semantics.
func (fw *FailWriter) WriteString(s string) (int, error) {
	return fw.Write([]byte(s))
}

// Err returns the remembered first failure, or nil while healthy. Call it
// once, after the batch, to decide overall success. The returned error's
// innermost link is the underlying writer's own error; Classify and Has see
// through the wrapping as usual.
func (fw *FailWriter) Err() error { return fw.err }

// Written returns the total bytes the underlying writer accepted, including
// any partial progress on the failing write.
func (fw *FailWriter) Written() int64 { return fw.n }

var _ io.Writer = (*FailWriter)(nil)
var _ io.StringWriter = (*FailWriter)(nil)
