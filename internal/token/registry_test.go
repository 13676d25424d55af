package token

import "testing"

func TestRegisterFileIdempotent(t *testing.T) {
	r := NewRegistry()
	r.RegisterFile("a.tau", "var x: i32 = 0\n")
	r.RegisterFile("a.tau", "THIS SHOULD BE IGNORED")

	tok := r.NewToken("a.tau", IDENT, 4, 1)
	if tok.Literal() != "x" {
		t.Fatalf("expected literal %q, got %q", "x", tok.Literal())
	}
}

func TestLocateComputesLineColumn(t *testing.T) {
	r := NewRegistry()
	src := "var a: i32 = 1\nvar b: i32 = 2\n"
	r.RegisterFile("f.tau", src)

	tok := r.NewToken("f.tau", IDENT, len("var a: i32 = 1\nvar "), 1)
	pos := tok.Pos()
	if pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", pos.Line)
	}
}

func TestPathAndSource(t *testing.T) {
	r := NewRegistry()
	r.RegisterFile("m.tau", "mod M {}\n")
	tok := r.NewToken("m.tau", MOD, 0, 3)

	path, src, ok := r.PathAndSource(tok)
	if !ok || path != "m.tau" || src != "mod M {}\n" {
		t.Fatalf("unexpected PathAndSource result: %q %q %v", path, src, ok)
	}
}

func TestFreeAllDropsFiles(t *testing.T) {
	r := NewRegistry()
	r.RegisterFile("x.tau", "var x: i32 = 0")
	r.FreeAll()

	tok := r.NewToken("x.tau", IDENT, 4, 1)
	if tok.Literal() != "" {
		t.Fatalf("expected empty literal after FreeAll, got %q", tok.Literal())
	}
}
