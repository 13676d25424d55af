package typecheck

import (
	"fmt"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/token"
	"github.com/baleg00/tau/internal/types"
	"github.com/baleg00/tau/internal/typetable"
)

// Checker runs the type-checking pass over one program already bound by
// nameres. Composite declarations, function signatures, and every
// explicitly-typed var/param/field get their type registered in a
// signature pass before any statement or expression is checked, so
// forward references between sibling declarations resolve the same way
// they do in nameres (spec §4.6).
type Checker struct {
	reg     *ast.Registry
	bag     *diag.Bag
	builder *types.Builder
	table   *typetable.Table

	// moduleOf records the enclosing ModDecl (InvalidID for top-level)
	// of every struct/union declaration, so member access can decide
	// whether a private field is being reached from inside or outside
	// its declaring module.
	moduleOf map[ast.ID]ast.ID

	curModule ast.ID
	curReturn types.Type

	instantiator Instantiator
}

// New creates a Checker that reports into bag, reads nodes back out of
// reg, and interns types through builder.
func New(reg *ast.Registry, bag *diag.Bag, builder *types.Builder) *Checker {
	return &Checker{
		reg:       reg,
		bag:       bag,
		builder:   builder,
		table:     typetable.New(),
		moduleOf:  make(map[ast.ID]ast.ID),
		curModule: ast.InvalidID,
	}
}

// SetInstantiator wires the generic-instantiation collaborator (package
// generics). Until it is set, a generic specialization type-checks its
// arity and argument kinds but yields poison instead of a concrete
// instantiated type — see generics_hook.go.
func (c *Checker) SetInstantiator(i Instantiator) {
	c.instantiator = i
}

// Table returns the type table Check populates, live — package generics
// reads and writes through this same reference via CheckDecl so a
// specialization clone's entries land in the one table the rest of the
// pipeline sees, instead of a throwaway copy.
func (c *Checker) Table() *typetable.Table {
	return c.table
}

// Check type-checks every declaration in prog and returns the populated
// type table.
func (c *Checker) Check(prog *ast.Program) *typetable.Table {
	c.registerSignatures(prog.Decls, ast.InvalidID)
	c.checkBodies(prog.Decls)
	return c.table
}

// CheckDecl type-checks a single declaration that was not part of the
// program Check already walked — package generics uses this to check a
// specialization clone against the signatures Check already registered
// for every other declaration, without re-registering or re-checking
// them a second time (which would re-report every diagnostic they
// already produced).
func (c *Checker) CheckDecl(d ast.Decl, module ast.ID) {
	c.registerSignatures([]ast.Decl{d}, module)
	c.checkBodyDecl(d)
}

func (c *Checker) setType(n ast.Node, t types.Type) types.Type {
	c.table.Set(n.ID(), t)
	if ix, ok := n.(interface{ SetTypeIndex(int) }); ok {
		ix.SetTypeIndex(0)
	}
	return t
}

func (c *Checker) err(kind diag.Kind, tok token.Token, format string, args ...any) {
	c.bag.Add(diag.Entry{Kind: kind, Message: fmt.Sprintf(format, args...), Primary: tok})
}

func (c *Checker) isBool(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return ok && p.Prim == ast.PrimBool
}

func (c *Checker) isUnit(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return ok && p.Prim == ast.PrimUnit
}

// registerSignatures walks decls (recursing into mod/generic bodies)
// and registers the nominal type of every struct/union/enum, the
// signature of every function, and the declared type of every
// explicitly-typed var/param/field. It does not check expressions —
// array/vec/mat sizes and default values are typed here only as a side
// effect of evaluating the TypeExpr tree they sit in (constIntValue),
// never their own statement-level semantics.
func (c *Checker) registerSignatures(decls []ast.Decl, module ast.ID) {
	for _, d := range decls {
		switch n := d.(type) {
		case *ast.StructDecl:
			c.moduleOf[n.ID()] = module
			st, _ := c.builder.BuildStruct(n.ID(), n.Name.Value, nil).(*types.Struct)
			c.setType(n, st)
			fields := make([]types.Type, len(n.Fields))
			for i, f := range n.Fields {
				ft := c.evalTypeExpr(f.Type)
				c.setType(f, ft)
				fields[i] = ft
			}
			st.Fields = fields
		case *ast.UnionDecl:
			c.moduleOf[n.ID()] = module
			un, _ := c.builder.BuildUnion(n.ID(), n.Name.Value, nil).(*types.Union)
			c.setType(n, un)
			fields := make([]types.Type, len(n.Fields))
			for i, f := range n.Fields {
				ft := c.evalTypeExpr(f.Type)
				c.setType(f, ft)
				fields[i] = ft
			}
			un.Fields = fields
		case *ast.EnumDecl:
			c.moduleOf[n.ID()] = module
			et := c.builder.BuildEnum(n.ID(), n.Name.Value)
			c.setType(n, et)
			for _, ec := range n.Constants {
				c.setType(ec, et)
			}
		case *ast.ModDecl:
			c.registerSignatures(n.Decls, n.ID())
		case *ast.FunDecl:
			params := make([]types.Type, len(n.Params))
			for i, p := range n.Params {
				pt := c.evalTypeExpr(p.Type)
				c.setType(p, pt)
				params[i] = pt
			}
			ret := types.Type(c.builder.Prim(ast.PrimUnit))
			if n.ReturnType != nil {
				ret = c.evalTypeExpr(n.ReturnType)
			}
			c.setType(n, c.builder.BuildFun(params, ret))
		case *ast.VarDecl:
			if n.Type != nil {
				c.setType(n, c.evalTypeExpr(n.Type))
			}
		case *ast.GenericDecl:
			c.registerSignatures([]ast.Decl{n.Inner}, module)
		}
	}
}

func (c *Checker) checkBodies(decls []ast.Decl) {
	for _, d := range decls {
		c.checkBodyDecl(d)
	}
}

func (c *Checker) checkBodyDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.VarDecl:
		c.checkVarDeclBody(n)
	case *ast.ParamDecl:
		if n.Default != nil {
			dt := c.checkExpr(n.Default)
			pt, _ := c.table.Get(n.ID())
			if !types.IsPoison(dt) && !types.ImplicitDirect(dt, pt) {
				c.err(diag.TypeMismatch, n.Default.Tok(), "default value is not convertible to parameter type %s", pt)
			}
		}
	case *ast.EnumConstantDecl:
		if n.Value != nil {
			c.checkExpr(n.Value)
		}
	case *ast.StructDecl, *ast.UnionDecl:
		// fields carry no initializer to check.
	case *ast.EnumDecl:
		for _, ec := range n.Constants {
			c.checkBodyDecl(ec)
		}
	case *ast.ModDecl:
		prev := c.curModule
		c.curModule = n.ID()
		c.checkBodies(n.Decls)
		c.curModule = prev
	case *ast.FunDecl:
		prevRet := c.curReturn
		sig, _ := c.table.Get(n.ID())
		if fn, ok := sig.(*types.Fun); ok {
			c.curReturn = fn.Return
		} else {
			c.curReturn = c.builder.Prim(ast.PrimUnit)
		}
		for _, p := range n.Params {
			c.checkBodyDecl(p)
		}
		if n.Body != nil {
			c.checkBlock(n.Body)
		}
		c.curReturn = prevRet
	case *ast.GenericDecl:
		c.checkBodyDecl(n.Inner)
	case *ast.GenericParamDecl, *ast.UseDecl:
		// nothing further to check.
	}
}

func (c *Checker) checkVarDeclBody(n *ast.VarDecl) {
	declared, hasDeclared := c.table.Get(n.ID())
	switch {
	case n.Init != nil:
		initT := c.checkExpr(n.Init)
		if !hasDeclared {
			inferred := types.RemoveMut(types.RemoveRef(initT))
			c.setType(n, inferred)
			return
		}
		if !types.IsPoison(initT) && !types.ImplicitDirect(initT, declared) {
			c.err(diag.TypeMismatch, n.Init.Tok(), "initializer is not convertible to declared type %s", declared)
		}
	case !hasDeclared:
		c.err(diag.TypeMismatch, n.Tok(), "%q has neither a declared type nor an initializer", n.Name.Value)
		c.setType(n, c.builder.Poison())
	}
}
