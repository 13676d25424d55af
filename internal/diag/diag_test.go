package diag

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/baleg00/tau/internal/token"
)

func TestHasErrorsIgnoresWarnings(t *testing.T) {
	b := NewBag()
	b.Add(Entry{Kind: MixedSignedness, Message: "mixed signedness"})
	if b.HasErrors() {
		t.Fatalf("expected a bag with only warnings to report no errors")
	}
	b.Add(Entry{Kind: TypeMismatch, Message: "type mismatch"})
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors once a non-warning entry is present")
	}
}

func TestErrorsAndWarningsPartition(t *testing.T) {
	b := NewBag()
	b.Add(Entry{Kind: TypeMismatch})
	b.Add(Entry{Kind: MixedSignedness})
	b.Add(Entry{Kind: NarrowingConversion})

	if len(b.Errors()) != 1 || len(b.Warnings()) != 2 {
		t.Fatalf("expected 1 error and 2 warnings, got %d and %d", len(b.Errors()), len(b.Warnings()))
	}
}

func TestRenderIncludesCaretAtColumn(t *testing.T) {
	reg := token.NewRegistry()
	reg.RegisterFile("a.tau", "var x: i32 = 3.14\n")
	tok := reg.NewToken("a.tau", token.INT, 13, 4)

	entry := Entry{Kind: TypeMismatch, Message: "expected i32, got f64", Primary: tok}
	out := Render(reg, entry, false)

	if !strings.Contains(out, "a.tau:1:14") {
		t.Fatalf("expected header to report line 1 column 14, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret line, got %q", out)
	}
}

func TestSummaryCountsErrorsAndWarnings(t *testing.T) {
	b := NewBag()
	b.Add(Entry{Kind: TypeMismatch})
	b.Add(Entry{Kind: SymbolCollision})
	b.Add(Entry{Kind: MixedSignedness})

	got := Summary(b)
	if !strings.Contains(got, "2 errors") || !strings.Contains(got, "1 warning") {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestRenderAllSnapshot(t *testing.T) {
	reg := token.NewRegistry()
	reg.RegisterFile("a.tau", "var x: i32 = 3.14\nfun f() { x += 1 }\n")

	b := NewBag()
	b.Add(Entry{
		Kind:    TypeMismatch,
		Message: "expected i32, got f64",
		Primary: reg.NewToken("a.tau", token.FLOAT, 13, 4),
	})
	b.Add(Entry{
		Kind:    MixedSignedness,
		Message: "mixing signed and unsigned operands",
		Primary: reg.NewToken("a.tau", token.IDENT, 29, 1),
	})

	snaps.MatchSnapshot(t, RenderAll(reg, b, false)+"\n"+Summary(b))
}
