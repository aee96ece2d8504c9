// join_test.go — multi-error join semantics and formatting.
package xgxopaque

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestJoin_NilHandling(t *testing.T) {
	t.Parallel()

	if Join() != nil || Join(nil, nil) != nil {
		t.Fatalf("Join of nothing must be nil")
	}

	only := New("solo")
	if Join(nil, only, nil) != error(only) {
		t.Fatalf("single survivor must keep identity")
	}
}

func TestJoin_ErrorStringMatchesStdlib(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")
	if got, want := Join(a, b).Error(), errors.Join(a, b).Error(); got != want {
		t.Fatalf("Error() = %q, want stdlib-compatible %q", got, want)
	}
}

func TestJoin_IsTraversal(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	j := Join(New("noise"), Wrap(sentinel, "ctx"))
	if !errors.Is(j, sentinel) {
		t.Fatalf("errors.Is over join = false, want true")
	}
}

func TestJoin_VerboseRecurses(t *testing.T) {
	t.Parallel()

	j := Join(
		Timeout("slow shard", "shard", 3),
		New("validation failed", "field", "email"),
	)

	verbose := fmt.Sprintf("%+v", j)
	for _, frag := range []string{
		"caps=timeout",
		`msg="slow shard"`,
		" shard=3",
		`msg="validation failed"`,
		" field=email",
	} {
		if !strings.Contains(verbose, frag) {
			t.Fatalf("%%+v(join) missing %q in:\n%s", frag, verbose)
		}
	}
}

func TestAppend_Semantics(t *testing.T) {
	t.Parallel()

	t.Run("nil head", func(t *testing.T) {
		e := New("x")
		if Append(nil, e) != error(e) {
			t.Fatalf("Append(nil, e) must return e")
		}
	})

	t.Run("nothing new keeps head identity", func(t *testing.T) {
		head := New("head")
		if Append(head, nil, nil) != error(head) {
			t.Fatalf("Append with only nils must return head unchanged")
		}
	})

	t.Run("accumulates", func(t *testing.T) {
		head := New("head")
		tail := New("tail")
		j := Append(head, tail)
		if !Has(j, head) || !Has(j, tail) {
			t.Fatalf("Append lost a member")
		}
	})
}
