// format_test.go — FormatChain and fmt verb behavior.
package xgxopaque

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestFormatChain_OutermostFirst(t *testing.T) {
	t.Parallel()

	root := errors.New("disk full")
	err := Wrap(Wrap(root, "write payload"), "flush response")

	got := FormatChain(err)
	want := "flush response: write payload: disk full"
	if got != want {
		t.Fatalf("FormatChain = %q, want %q", got, want)
	}
}

func TestFormatChain_EveryLinkPresent(t *testing.T) {
	t.Parallel()

	err := error(Timeout("rpc deadline"))
	msgs := []string{"layer one", "layer two", "layer three"}
	for _, m := range msgs {
		err = Wrap(err, m)
	}

	got := FormatChain(err)
	// Outermost-to-innermost: last wrap first, root last.
	if !containsInOrder(got, "layer three", "layer two", "layer one", "rpc deadline") {
		t.Fatalf("chain order wrong or link missing: %q", got)
	}
	for _, m := range msgs {
		if !strings.Contains(got, m) {
			t.Fatalf("FormatChain omitted %q: %q", m, got)
		}
	}
}

func TestFormatChain_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		if got := FormatChain(nil); got != "" {
			t.Fatalf("FormatChain(nil) = %q, want empty", got)
		}
	})

	t.Run("foreign error renders as-is", func(t *testing.T) {
		root := errors.New("boom")
		if got := FormatChain(root); got != "boom" {
			t.Fatalf("FormatChain(foreign) = %q, want %q", got, "boom")
		}
	})

	t.Run("message-less adapter links are skipped", func(t *testing.T) {
		err := Wrap(From(errors.New("boom")), "op failed")
		if got := FormatChain(err); got != "op failed: boom" {
			t.Fatalf("FormatChain = %q, want %q", got, "op failed: boom")
		}
	})
}

func TestFormat_ConciseAndVerbose(t *testing.T) {
	t.Parallel()

	err := Timeout("rpc deadline", "elapsed_ms", 1500).
		Ctx("", "tenant", "acme").
		WithStack()

	concise := fmt.Sprintf("%v", err)
	if concise != "rpc deadline" {
		t.Fatalf("%%v = %q, want the link's own message", concise)
	}

	verbose := fmt.Sprintf("%+v", err)
	for _, frag := range []string{
		"caps=timeout",
		`msg="rpc deadline"`,
		"\nctx:",
		" elapsed_ms=1500",
		" tenant=acme",
		"\nstack:",
	} {
		if !strings.Contains(verbose, frag) {
			t.Fatalf("%%+v missing %q in:\n%s", frag, verbose)
		}
	}
	// Context preserves insertion order.
	if !containsInOrder(verbose, "ctx:", " elapsed_ms=1500", " tenant=acme") {
		t.Fatalf("context order not preserved: %q", verbose)
	}
}

func TestFormat_VerboseRecursesIntoCause(t *testing.T) {
	t.Parallel()

	inner := Temporary("dependency down", "service", "ledger")
	outer := Wrap(inner, "post entry", "entry_id", 42)

	verbose := fmt.Sprintf("%+v", outer)
	for _, frag := range []string{
		`msg="post entry"`,
		" entry_id=42",
		"\ncause: ",
		"caps=temporary",
		`msg="dependency down"`,
		" service=ledger",
	} {
		if !strings.Contains(verbose, frag) {
			t.Fatalf("%%+v missing %q in:\n%s", frag, verbose)
		}
	}
}

func TestFormat_NoCapsNoSections(t *testing.T) {
	t.Parallel()

	verbose := fmt.Sprintf("%+v", New("plain"))
	if strings.Contains(verbose, "caps=") {
		t.Fatalf("flag-free error printed a caps section: %q", verbose)
	}
	for _, section := range []string{"\nctx:", "\ncause:", "\nstack:"} {
		if strings.Contains(verbose, section) {
			t.Fatalf("empty section %q rendered: %q", section, verbose)
		}
	}
}

func TestFormat_Quoted(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%q", New("needs \"quoting\""))
	if got != `"needs \"quoting\""` {
		t.Fatalf("%%q = %s", got)
	}
}
