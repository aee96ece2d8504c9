// join.go — formatting-aware multi-error join.
//
// Identical unwrap and string semantics to errors.Join (Unwrap() []error,
// newline-joined Error()), plus fmt.Formatter so %+v recurses into each
// child's own %+v rendering. Classify and Has traverse the children like
// any other unwrap graph.
package xgxopaque

import (
	"fmt"
	"strings"
)

// multi mirrors errors.Join but keeps verbose formatting recursive.
type multi struct {
	errs []error // non-nil children only
}

func (m *multi) Error() string {
	if len(m.errs) == 0 {
		return ""
	}
	if len(m.errs) == 1 {
		return m.errs[0].Error()
	}
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes children to stdlib traversal (errors.Is/As walk pre-order).
func (m *multi) Unwrap() []error { return m.errs }

func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		_, _ = fmt.Fprint(s, m.Error())
	case 's':
		_, _ = fmt.Fprint(s, m.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		_, _ = fmt.Fprint(s, m.Error())
	}
}

// Join wraps the given errors, ignoring nils.
//   - all nil → nil
//   - one non-nil → that error (identity preserved)
//   - 2+ non-nil → a container with Unwrap() []error and recursive %+v
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}

// Append appends more errors onto head with Join semantics, avoiding
// allocation when nothing changes.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	anyNew := false
	for _, e := range more {
		if e != nil {
			anyNew = true
			break
		}
	}
	if !anyNew {
		return head
	}
	combined := make([]error, 0, 1+len(more))
	combined = append(combined, head)
	combined = append(combined, more...)
	return Join(combined...)
}
