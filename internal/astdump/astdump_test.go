package astdump

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/token"
)

type harness struct {
	treg   *token.Registry
	areg   *ast.Registry
	offset int
}

func newHarness() *harness {
	treg := token.NewRegistry()
	treg.RegisterFile("t.tau", "0123456789abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnopqrstuvwxyz")
	return &harness{treg: treg, areg: ast.NewRegistry()}
}

func (h *harness) tok(kind token.Kind) token.Token {
	t := h.treg.NewToken("t.tau", kind, h.offset, 1)
	h.offset++
	return t
}

func (h *harness) ident(name string) *ast.Identifier {
	return ast.NewIdentifier(h.areg, h.tok(token.IDENT), name)
}

// sampleProgram builds:
//
//	var x: i32 = 1 + 2
//	fun add(a: i32, b: i32): i32 { return a + b }
func (h *harness) sampleProgram() *ast.Program {
	xType := ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32)
	xInit := ast.NewBinaryExpr(h.areg, h.tok(token.PLUS), ast.BinAdd,
		ast.NewIntLit(h.areg, h.tok(token.INT), 1),
		ast.NewIntLit(h.areg, h.tok(token.INT), 2))
	x := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), xType, xInit, true, false)

	i32 := func() ast.TypeExpr { return ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32) }
	a := ast.NewParamDecl(h.areg, h.tok(token.IDENT), h.ident("a"), i32(), nil, false)
	b := ast.NewParamDecl(h.areg, h.tok(token.IDENT), h.ident("b"), i32(), nil, false)
	sum := ast.NewBinaryExpr(h.areg, h.tok(token.PLUS), ast.BinAdd,
		ast.NewIdentifier(h.areg, h.tok(token.IDENT), "a"),
		ast.NewIdentifier(h.areg, h.tok(token.IDENT), "b"))
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{
		ast.NewReturnStmt(h.areg, h.tok(token.RETURN), sum),
	})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("add"), []*ast.ParamDecl{a, b}, false, i32(), body, true)

	return ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{x, fn})
}

func TestDumpProducesValidJSON(t *testing.T) {
	h := newHarness()
	out := DumpCompact(h.sampleProgram())

	var v any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("dump is not valid JSON: %v\n%s", err, out)
	}
}

func TestDumpRoundTripsFieldsByQuery(t *testing.T) {
	h := newHarness()
	out := DumpCompact(h.sampleProgram())

	if got := Query(out, "kind").String(); got != "prog" {
		t.Fatalf("expected root kind %q, got %q", "prog", got)
	}
	if got := Query(out, "decls.#").Int(); got != 2 {
		t.Fatalf("expected 2 top-level decls, got %d", got)
	}
	if got := Query(out, "decls.0.kind").String(); got != "var" {
		t.Fatalf("expected first decl kind %q, got %q", "var", got)
	}
	if got := Query(out, "decls.0.init.op_kind").String(); got != "+" {
		t.Fatalf("expected init op_kind %q, got %q", "+", got)
	}
	if got := Query(out, "decls.1.params.#").Int(); got != 2 {
		t.Fatalf("expected 2 params on add, got %d", got)
	}
	if got := Query(out, "decls.1.body.statements.0.kind").String(); got != "return" {
		t.Fatalf("expected a return statement, got %q", got)
	}
}

func TestDumpNullLitHasNoExtraFields(t *testing.T) {
	h := newHarness()
	out := DumpCompact(ast.NewNullLit(h.areg, h.tok(token.IDENT)))
	if got := Query(out, "kind").String(); got != "lit-null" {
		t.Fatalf("expected kind %q, got %q", "lit-null", got)
	}
}

func TestDumpSnapshot(t *testing.T) {
	h := newHarness()
	snaps.MatchJSON(t, DumpCompact(h.sampleProgram()))
}

// TestLoadRoundTripsDump exercises the round-trip property: dumping a
// tree, loading it back, and dumping the result again yields the same
// JSON (structure and fields, which is all the dump format carries —
// tokens and annotation slots are intentionally absent from it).
func TestLoadRoundTripsDump(t *testing.T) {
	h := newHarness()
	original := DumpCompact(h.sampleProgram())

	loaded, err := Load(ast.NewRegistry(), []byte(original))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	again := DumpCompact(loaded)
	if original != again {
		t.Fatalf("round-trip mismatch:\noriginal: %s\nreloaded: %s", original, again)
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := Load(ast.NewRegistry(), []byte(`{"kind":"not-a-real-kind"}`))
	if err == nil {
		t.Fatalf("expected an error for an unknown node kind")
	}
}

func TestLoadRejectsNonProgramRoot(t *testing.T) {
	_, err := Load(ast.NewRegistry(), []byte(`{"kind":"lit-null"}`))
	if err == nil {
		t.Fatalf("expected an error when the root node isn't a program")
	}
}
