package typecheck

import (
	"testing"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/nameres"
	"github.com/baleg00/tau/internal/token"
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

// check runs nameres then typecheck over prog and returns the Checker
// and its resulting table, so tests can look up a node's recorded type.
func (h *harness) check(prog *ast.Program) (*Checker, *types.Builder) {
	nameres.New(h.areg, h.bag).Resolve(prog)
	builder := types.NewBuilder()
	c := New(h.areg, h.bag, builder)
	c.Check(prog)
	return c, builder
}

func TestVarDeclInfersTypeFromLiteralInit(t *testing.T) {
	h := newHarness()

	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), nil, ast.NewIntLit(h.areg, h.tok(token.INT), 200), false, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl})

	c, _ := h.check(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	xt, ok := c.table.Get(xDecl.ID())
	if !ok {
		t.Fatalf("expected x to have a recorded type")
	}
	prim, ok := xt.(*types.Primitive)
	if !ok || prim.Prim != ast.PrimI16 {
		t.Fatalf("expected x inferred as i16 (200 doesn't fit i8), got %v", xt)
	}
}

func TestVarDeclRejectsIncompatibleInitializer(t *testing.T) {
	h := newHarness()

	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"),
		ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimBool),
		ast.NewIntLit(h.areg, h.tok(token.INT), 1), false, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl})

	h.check(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.TypeMismatch {
		t.Fatalf("expected one type_mismatch diagnostic, got %v", errs)
	}
}

func TestBinaryArithmeticPromotesOperands(t *testing.T) {
	h := newHarness()

	left := ast.NewIntLit(h.areg, h.tok(token.INT), 1)   // i8
	right := ast.NewIntLit(h.areg, h.tok(token.INT), 500) // i16
	add := ast.NewBinaryExpr(h.areg, h.tok(token.PLUS), ast.BinAdd, left, right)
	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), nil, add, false, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl})

	c, _ := h.check(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	at, _ := c.table.Get(add.ID())
	prim, ok := at.(*types.Primitive)
	if !ok || prim.Prim != ast.PrimI16 {
		t.Fatalf("expected i8+i16 to promote to i16, got %v", at)
	}
}

func TestAssignRequiresMutableLhs(t *testing.T) {
	h := newHarness()

	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), ast.NewIntLit(h.areg, h.tok(token.INT), 1), false, false)
	xUse := h.ident("x")
	assign := ast.NewBinaryExpr(h.areg, h.tok(token.ASSIGN), ast.BinAssign, xUse, ast.NewIntLit(h.areg, h.tok(token.INT), 2))
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), assign)})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl, fn})

	h.check(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.ExpectedMutable {
		t.Fatalf("expected one expected_mutable diagnostic, got %v", errs)
	}
}

func TestAssignAcceptsMutableLhs(t *testing.T) {
	h := newHarness()

	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), ast.NewIntLit(h.areg, h.tok(token.INT), 1), true, false)
	xUse := h.ident("x")
	assign := ast.NewBinaryExpr(h.areg, h.tok(token.ASSIGN), ast.BinAssign, xUse, ast.NewIntLit(h.areg, h.tok(token.INT), 2))
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), assign)})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl, fn})

	h.check(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
}

func TestStructFieldAccessResolvesAndTypes(t *testing.T) {
	h := newHarness()

	fieldX := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), true)
	pointDecl := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Point"), []*ast.FieldDecl{fieldX}, true)

	pathSeg := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("Point"))
	declRef := ast.NewDeclRefType(h.areg, h.tok(token.IDENT), pathSeg)
	pVar := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("p"), declRef, nil, false, false)

	pUse := h.ident("p")
	memberX := h.ident("x")
	access := ast.NewBinaryExpr(h.areg, h.tok(token.DOT), ast.BinAccess, pUse, memberX)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), access)})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{pointDecl, pVar, fn})

	c, _ := h.check(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	if memberX.ResolvedDecl() != fieldX.ID() {
		t.Fatalf("expected p.x to resolve to Point.x, got %d want %d", memberX.ResolvedDecl(), fieldX.ID())
	}
	at, _ := c.table.Get(access.ID())
	if !types.IsRef(at) {
		t.Fatalf("expected member access to be typed as a reference, got %v", at)
	}
}

func TestPrivateFieldAccessFromOutsideModuleReportsError(t *testing.T) {
	h := newHarness()

	privField := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("secret"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), false)
	boxDecl := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Box"), []*ast.FieldDecl{privField}, true)
	mod := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("inner"), []ast.Decl{boxDecl}, true)

	pathSeg := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("inner"))
	pathSeg2 := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("Box"))
	access := ast.NewPathAccess(h.areg, h.tok(token.DOT), pathSeg, pathSeg2)
	declRef := ast.NewDeclRefType(h.areg, h.tok(token.IDENT), access)
	bVar := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("b"), declRef, nil, false, false)

	bUse := h.ident("b")
	memberSecret := h.ident("secret")
	memberAccess := ast.NewBinaryExpr(h.areg, h.tok(token.DOT), ast.BinAccess, bUse, memberSecret)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), memberAccess)})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{mod, bVar, fn})

	h.check(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.PrivateMember {
		t.Fatalf("expected one private_member diagnostic, got %v", errs)
	}
}

func TestCallArityMismatchReportsError(t *testing.T) {
	h := newHarness()

	param := ast.NewParamDecl(h.areg, h.tok(token.IDENT), h.ident("n"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), nil, false)
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), []*ast.ParamDecl{param}, false, nil, ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil), false)

	callee := h.ident("f")
	call := ast.NewCallExpr(h.areg, h.tok(token.IDENT), callee, nil)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), call)})
	main := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("main"), nil, false, nil, body, false)

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{fn, main})

	h.check(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.ArityMismatch {
		t.Fatalf("expected one arity_mismatch diagnostic, got %v", errs)
	}
}

func TestReturnValueMustConvertToDeclaredReturnType(t *testing.T) {
	h := newHarness()

	ret := ast.NewReturnStmt(h.areg, h.tok(token.RETURN), ast.NewBoolLit(h.areg, h.tok(token.TRUE), true))
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ret})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{fn})

	h.check(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.TypeMismatch {
		t.Fatalf("expected one type_mismatch diagnostic, got %v", errs)
	}
}

func TestSelfReferentialStructFieldResolves(t *testing.T) {
	h := newHarness()

	pathSeg := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("Node"))
	declRef := ast.NewDeclRefType(h.areg, h.tok(token.IDENT), pathSeg)
	ptrField := ast.NewPtrType(h.areg, h.tok(token.STAR), declRef)
	nextField := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("next"), ptrField, true)
	nodeDecl := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Node"), []*ast.FieldDecl{nextField}, true)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{nodeDecl})

	c, _ := h.check(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	nt, _ := c.table.Get(nodeDecl.ID())
	ft, _ := c.table.Get(nextField.ID())
	ptr, ok := ft.(*types.Ptr)
	if !ok {
		t.Fatalf("expected next field to be a pointer type, got %v", ft)
	}
	if ptr.Base != nt {
		t.Fatalf("expected self-referential field to point at the same interned Node type")
	}
}
