package ast

import (
	"testing"

	"github.com/baleg00/tau/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Synthetic(k, k.String())
}

func TestRegistryAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()
	a := NewIdentifier(r, tok(token.IDENT), "a")
	b := NewIdentifier(r, tok(token.IDENT), "b")

	if a.ID() != 0 || b.ID() != 1 {
		t.Fatalf("expected sequential IDs 0,1; got %d,%d", a.ID(), b.ID())
	}
	if r.Len() != 2 {
		t.Fatalf("expected registry length 2, got %d", r.Len())
	}
	if r.Get(a.ID()) != Node(a) {
		t.Fatalf("Get did not round-trip node a")
	}
}

func TestRegistryFreeAll(t *testing.T) {
	r := NewRegistry()
	NewIdentifier(r, tok(token.IDENT), "a")
	r.FreeAll()
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after FreeAll, got len %d", r.Len())
	}
}

func TestVarDeclString(t *testing.T) {
	r := NewRegistry()
	name := NewIdentifier(r, tok(token.IDENT), "x")
	typ := NewPrimType(r, tok(token.IDENT), PrimI32)
	init := NewIntLit(r, tok(token.INT), 0)
	v := NewVarDecl(r, tok(token.VAR), name, typ, init, true, false)

	if got, want := v.String(), "var x: i32 = 0"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if v.DeclName() != name {
		t.Fatalf("DeclName() should return the Name child")
	}
}

func TestBreakStmtTargetDefaultsInvalid(t *testing.T) {
	r := NewRegistry()
	b := NewBreakStmt(r, tok(token.BREAK))
	if b.Target != InvalidID {
		t.Fatalf("expected InvalidID target before control-flow analysis, got %d", b.Target)
	}
}

func TestPoisonImplementsEveryMarkerInterface(t *testing.T) {
	r := NewRegistry()
	p := NewPoison(r, tok(token.ILLEGAL), "parse failure")

	var _ Expression = p
	var _ Statement = p
	var _ TypeExpr = p
	var _ PathNode = p
}

func TestDeclsAreStatements(t *testing.T) {
	r := NewRegistry()
	name := NewIdentifier(r, tok(token.IDENT), "x")
	typ := NewPrimType(r, tok(token.IDENT), PrimI32)
	v := NewVarDecl(r, tok(token.VAR), name, typ, nil, true, false)

	block := NewBlockStmt(r, tok(token.IDENT), []Statement{v})
	if len(block.Statements) != 1 {
		t.Fatalf("expected one statement in block")
	}
}
