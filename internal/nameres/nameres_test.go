package nameres

import (
	"testing"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/token"
)

// harness bundles the registries a test needs and hands out unique
// tokens against one synthetic source file.
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

func TestIdentifierResolvesThroughModuleScope(t *testing.T) {
	h := newHarness()

	xDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("x"), ast.NewPrimType(h.areg, h.tok(token.IDENT), ast.PrimI32), ast.NewIntLit(h.areg, h.tok(token.INT), 1), false, false)
	xUse := h.ident("x")
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{
		ast.NewExprStmt(h.areg, h.tok(token.IDENT), xUse),
	})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{xDecl, fn})

	New(h.areg, h.bag).Resolve(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	if xUse.ResolvedDecl() != xDecl.ID() {
		t.Fatalf("expected x to resolve to its VarDecl, got %d want %d", xUse.ResolvedDecl(), xDecl.ID())
	}
}

func TestForwardReferenceAmongModuleDeclsResolves(t *testing.T) {
	h := newHarness()

	// `fun a` calls `b`, declared textually after it — module-level
	// declarations hoist, so this must still resolve.
	callB := ast.NewCallExpr(h.areg, h.tok(token.IDENT), h.ident("b"), nil)
	bodyA := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), callB)})
	funA := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("a"), nil, false, nil, bodyA, false)
	funB := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("b"), nil, false, nil, ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil), false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{funA, funB})

	New(h.areg, h.bag).Resolve(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	callee := callB.Callee.(*ast.Identifier)
	if callee.ResolvedDecl() != funB.ID() {
		t.Fatalf("expected forward call to resolve to funB, got %d want %d", callee.ResolvedDecl(), funB.ID())
	}
}

func TestSymbolCollisionReportsBothLocations(t *testing.T) {
	h := newHarness()

	first := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("dup"), nil, ast.NewIntLit(h.areg, h.tok(token.INT), 1), false, false)
	second := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("dup"), nil, ast.NewIntLit(h.areg, h.tok(token.INT), 2), false, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{first, second})

	New(h.areg, h.bag).Resolve(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.SymbolCollision {
		t.Fatalf("expected exactly one symbol_collision diagnostic, got %v", errs)
	}
	if len(errs[0].Secondary) != 1 {
		t.Fatalf("expected the prior declaration recorded as a secondary location")
	}
}

func TestUndefinedSymbolLeavesIdentifierUnresolved(t *testing.T) {
	h := newHarness()

	use := h.ident("missing")
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), use)})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{fn})

	New(h.areg, h.bag).Resolve(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.UndefinedSymbol {
		t.Fatalf("expected one undefined_symbol diagnostic, got %v", errs)
	}
	if use.ResolvedDecl() != ast.InvalidID {
		t.Fatalf("expected unresolved identifier to keep InvalidID, got %d", use.ResolvedDecl())
	}
}

func TestBlockScopeHasNoHoisting(t *testing.T) {
	h := newHarness()

	useBeforeDecl := h.ident("late")
	lateDecl := ast.NewVarDecl(h.areg, h.tok(token.VAR), h.ident("late"), nil, ast.NewIntLit(h.areg, h.tok(token.INT), 1), false, false)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{
		ast.NewExprStmt(h.areg, h.tok(token.IDENT), useBeforeDecl),
		lateDecl,
	})
	fn := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("f"), nil, false, nil, body, false)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{fn})

	New(h.areg, h.bag).Resolve(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.UndefinedSymbol {
		t.Fatalf("expected a local var used before its own declaration to be undefined, got %v", errs)
	}
}

func TestStructFieldTypeResolvesDeclRef(t *testing.T) {
	h := newHarness()

	pointDecl := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Point"), nil, true)
	refPath := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("Point"))
	fieldType := ast.NewDeclRefType(h.areg, h.tok(token.IDENT), refPath)
	field := ast.NewFieldDecl(h.areg, h.tok(token.IDENT), h.ident("origin"), fieldType, true)
	container := ast.NewStructDecl(h.areg, h.tok(token.STRUCT), h.ident("Shape"), []*ast.FieldDecl{field}, true)
	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{pointDecl, container})

	New(h.areg, h.bag).Resolve(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	if fieldType.ResolvedDecl() != pointDecl.ID() {
		t.Fatalf("expected field type to resolve to Point, got %d want %d", fieldType.ResolvedDecl(), pointDecl.ID())
	}
}

func TestUseAliasImportsUnderNewName(t *testing.T) {
	h := newHarness()

	inner := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("helper"), nil, false, nil, ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil), true)
	mod := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("util"), []ast.Decl{inner}, false)

	modPath := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("util"))
	helperPath := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("helper"))
	access := ast.NewPathAccess(h.areg, h.tok(token.DOT), modPath, helperPath)
	alias := ast.NewPathAlias(h.areg, h.tok(token.IDENT), access, h.ident("h"))
	useDecl := ast.NewUseDecl(h.areg, h.tok(token.USE), alias)

	callH := ast.NewCallExpr(h.areg, h.tok(token.IDENT), h.ident("h"), nil)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{ast.NewExprStmt(h.areg, h.tok(token.IDENT), callH)})
	main := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("main"), nil, false, nil, body, false)

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{mod, useDecl, main})

	New(h.areg, h.bag).Resolve(prog)

	if h.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", h.bag.Entries())
	}
	callee := callH.Callee.(*ast.Identifier)
	if callee.ResolvedDecl() != inner.ID() {
		t.Fatalf("expected aliased call to resolve to util.helper, got %d want %d", callee.ResolvedDecl(), inner.ID())
	}
}

func TestUseWildcardSkipsPrivateMembers(t *testing.T) {
	h := newHarness()

	pub := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("pub"), nil, false, nil, ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil), true)
	priv := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("priv"), nil, false, nil, ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), nil), false)
	mod := ast.NewModDecl(h.areg, h.tok(token.MOD), h.ident("util"), []ast.Decl{pub, priv}, false)

	modPath := ast.NewPathSegment(h.areg, h.tok(token.IDENT), h.ident("util"))
	wild := ast.NewPathWildcard(h.areg, h.tok(token.WILDCARD), modPath)
	useDecl := ast.NewUseDecl(h.areg, h.tok(token.USE), wild)

	callPub := ast.NewCallExpr(h.areg, h.tok(token.IDENT), h.ident("pub"), nil)
	callPriv := ast.NewCallExpr(h.areg, h.tok(token.IDENT), h.ident("priv"), nil)
	body := ast.NewBlockStmt(h.areg, h.tok(token.LBRACE), []ast.Statement{
		ast.NewExprStmt(h.areg, h.tok(token.IDENT), callPub),
		ast.NewExprStmt(h.areg, h.tok(token.IDENT), callPriv),
	})
	main := ast.NewFunDecl(h.areg, h.tok(token.FUN), h.ident("main"), nil, false, nil, body, false)

	prog := ast.NewProgram(h.areg, h.tok(token.EOF), []ast.Decl{mod, useDecl, main})

	New(h.areg, h.bag).Resolve(prog)

	errs := h.bag.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.UndefinedSymbol {
		t.Fatalf("expected only the private-member call to be undefined, got %v", errs)
	}
	if callPub.Callee.(*ast.Identifier).ResolvedDecl() != pub.ID() {
		t.Fatalf("expected wildcard-imported public member to resolve")
	}
}
