package generics

import (
	"testing"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/nameres"
	"github.com/baleg00/tau/internal/token"
	"github.com/baleg00/tau/internal/typecheck"
	"github.com/baleg00/tau/internal/types"
)

type harness struct {
	treg   *token.Registry
	areg   *ast.Registry
	bag    *diag.Bag
	offset int
}

func newHarness() *harness {
	treg := token.NewRegistry()
	treg.RegisterFile("t.tau", "0123456789abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnopqrstuvwxyz")
	return &harness{treg: treg, areg: ast.NewRegistry(), bag: diag.NewBag()}
}

func (h *harness) tok(kind token.Kind) token.Token {
	t := h.treg.NewToken("t.tau", kind, h.offset, 1)
	h.offset++
	return t
}

func (h *harness) ident(name string) *ast.Identifier {
	return ast.NewIdentifier(h.areg, h.tok(token.IDENT), name)
}

func (h *harness) prim(k ast.PrimKind) *ast.PrimType {
	return ast.NewPrimType(h.areg, h.tok(token.IDENT), k)
}

// boxGeneric builds:
//
//	generic<T> struct Box { value: T }
func (h *harness) boxGeneric() (*ast.GenericDecl, *ast.StructDecl) {
	field := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("value"), ast.NewDeclRefType(h.areg, h.tok(token.IDENT), ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("T"))), false)
	st := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Box"), []*ast.FieldDecl{field}, false)
	tparam := ast.NewGenericParamDecl(h.areg, h.tok(token.IDENT), h.ident("T"), ast.GenericParamType, nil)
	gen := ast.NewGenericDecl(h.areg, h.tok(token.GENERIC), []*ast.GenericParamDecl{tparam}, st, false)
	return gen, st
}

// specVar declares `name: Box<argType>` with no initializer.
func (h *harness) specVar(name string, argType ast.TypeExpr) *ast.VarDecl {
	base := ast.NewDeclRefType(h.areg, h.tok(token.IDENT), ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("Box")))
	spec := ast.NewGenericSpecType(h.areg, h.tok(token.IDENT), base, []ast.Node{argType})
	return ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident(name), spec, nil, false, false)
}

func TestSpecializationsWithSameArgumentsAreMemoized(t *testing.T) {
	h := newHarness()

	gen, _ := h.boxGeneric()
	v1 := h.specVar("a", h.prim(ast.PrimI32))
	v2 := h.specVar("b", h.prim(ast.PrimI32))
	v3 := h.specVar("c", h.prim(ast.PrimBool))

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{gen, v1, v2, v3})

	resolver := nameres.New(h.areg, h.bag)
	root := resolver.Resolve(prog)

	builder := types.NewBuilder()
	checker := typecheck.New(h.areg, h.bag, builder)
	g := New(h.areg, h.bag, builder)
	g.SetContext(resolver, root, checker)
	checker.SetInstantiator(g)

	table := checker.Check(prog)

	t1, ok := table.Get(v1.ID())
	if !ok {
		t.Fatalf("expected a type for a")
	}
	t2, ok := table.Get(v2.ID())
	if !ok {
		t.Fatalf("expected a type for b")
	}
	t3, ok := table.Get(v3.ID())
	if !ok {
		t.Fatalf("expected a type for c")
	}

	if types.IsPoison(t1) || types.IsPoison(t2) || types.IsPoison(t3) {
		t.Fatalf("expected no poison types, got %s, %s, %s", t1, t2, t3)
	}

	if t1 != t2 {
		t.Fatalf("expected two Box<i32> specializations to share the same type, got distinct %s and %s", t1, t2)
	}
	if t1 == t3 {
		t.Fatalf("expected Box<i32> and Box<bool> to specialize to distinct types")
	}

	for _, e := range h.bag.Entries() {
		if !e.Kind.IsWarning() {
			t.Fatalf("unexpected diagnostic: %v", e)
		}
	}
}
