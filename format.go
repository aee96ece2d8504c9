// format.go — fmt.Formatter and the boundary chain renderer.
//
// Behavior:
//
//	%s, %v   → concise: the link's own message (Error()).
//	%+v      → verbose, structured multi-line:
//	             caps=timeout,temporary msg="<message>"
//	             ctx: key1=val1 key2=val2 ...
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	%q       → quoted concise form.
//
// FormatChain is the single-use diagnostic renderer for the top of a call
// stack: one line, every link, outermost context first, root failure last.
// Intermediate layers must wrap and return, never render; rendering twice
// reports one failure as two.
package xgxopaque

import (
	"fmt"
	"io"
	"strings"
)

// FormatChain renders err's full cause chain, outermost message first,
// ": "-separated, e.g.
//
//	flush response: write payload: disk full
//
// Message-less links (e.g., From adapters) are skipped; they add no
// diagnostic text. A foreign link renders via its own Error(), which by
// convention already includes its causes, so traversal stops there.
// FormatChain(nil) returns "".
func FormatChain(err error) string {
	if err == nil {
		return ""
	}
	var parts []string
	for err != nil {
		oe, ok := err.(*opaqueErr)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		if oe.msg != "" {
			parts = append(parts, oe.msg)
		}
		err = oe.cause
	}
	if len(parts) == 0 {
		return "error"
	}
	return strings.Join(parts, ": ")
}

// capsLabel renders the set flags as a short comma list ("" when none).
func capsLabel(c Caps) string {
	switch {
	case c.Timeout && c.Temporary:
		return "timeout,temporary"
	case c.Timeout:
		return "timeout"
	case c.Temporary:
		return "temporary"
	default:
		return ""
	}
}

func formatConcise(w io.Writer, e error) {
	// write errors are ignored on formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured multi-line representation. Empty
// sections (no caps, no ctx, no cause, no stack) are omitted.
func formatVerbose(w io.Writer, caps Caps, msg string, ctx fields, cause error, stk Stack) {
	if lbl := capsLabel(caps); lbl != "" {
		_, _ = fmt.Fprintf(w, "caps=%s ", lbl)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// %+v recursion preserves nested ctx/stacks when available.
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *opaqueErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.caps, e.msg, e.ctx, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
