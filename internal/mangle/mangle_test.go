package mangle

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

func (h *harness) run(prog *ast.Program) *Table {
	nameres.New(h.areg, h.bag).Resolve(prog)
	table := typecheck.New(h.areg, h.bag, types.NewBuilder()).Check(prog)
	return New(table).Mangle(prog)
}

func emptyFun(h *harness, name string, params []*ast.ParamDecl, ret ast.TypeExpr) *ast.FunDecl {
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil)
	return ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident(name), params, false, ret, body, false)
}

func TestSameNamedFunctionsInDifferentModulesGetDistinctNames(t *testing.T) {
	h := newHarness()

	fa := emptyFun(h, "run", nil, nil)
	fb := emptyFun(h, "run", nil, nil)
	modA := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("a"), []ast.Decl{fa}, false)
	modB := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("b"), []ast.Decl{fb}, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{modA, modB})

	out := h.run(prog)

	na, ok := out.Get(fa.ID())
	if !ok {
		t.Fatalf("expected a mangled name for a.run")
	}
	nb, ok := out.Get(fb.ID())
	if !ok {
		t.Fatalf("expected a mangled name for b.run")
	}
	if na == nb {
		t.Fatalf("expected distinct names for same-named functions in different modules, got %q twice", na)
	}
}

func TestFunctionMangledNameFoldsInParameterTypes(t *testing.T) {
	h := newHarness()

	pi32 := ast.NewParamDecl(h.areg, h.tok(token.IDENT), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), nil, false)
	pbool := ast.NewParamDecl(h.areg, h.tok(token.IDENT), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimBool), nil, false)
	fa := emptyFun(h, "f", []*ast.ParamDecl{pi32}, nil)
	fb := emptyFun(h, "f", []*ast.ParamDecl{pbool}, nil)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{fa, fb})

	out := h.run(prog)

	na, _ := out.Get(fa.ID())
	nb, _ := out.Get(fb.ID())
	if na == nb {
		t.Fatalf("expected parameter types to change the mangled name, got %q twice", na)
	}
}

func TestStructGetsModuleQualifiedName(t *testing.T) {
	h := newHarness()

	field := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), false)
	st := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Point"), []*ast.FieldDecl{field}, false)
	mod := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("geo"), []ast.Decl{st}, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{mod})

	out := h.run(prog)

	name, ok := out.Get(st.ID())
	if !ok {
		t.Fatalf("expected a mangled name for geo.Point")
	}
	if name != "geo$Point" {
		t.Fatalf("expected module-qualified name geo$Point, got %q", name)
	}
}

func TestGenericDeclarationItselfGetsNoEntry(t *testing.T) {
	h := newHarness()

	tparam := ast.NewGenericParamDecl(h.areg, h.tok(token.IDENT), h.ident("T"), ast.GenericParamType, nil)
	fn := emptyFun(h, "identity", nil, nil)
	gen := ast.NewGenericDecl(h.areg, h.tok(token.GENERIC), []*ast.GenericParamDecl{tparam}, fn, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{gen})

	out := h.run(prog)

	if out.Len() != 0 {
		t.Fatalf("expected a bare generic declaration to record no linkage names, got %d", out.Len())
	}
}
