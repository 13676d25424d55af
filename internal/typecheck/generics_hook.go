package typecheck

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
)

// Instantiator specializes a generic declaration against a concrete
// argument list. Package generics implements this by cloning the
// generic's body and running nameres and typecheck over the clone,
// memoized on (declaration, canonical argument tuple); Checker only
// knows the interface, so typecheck never imports generics — the
// pipeline wires the two together once both exist via SetInstantiator.
type Instantiator interface {
	Instantiate(spec *ast.SpecExpr, gen *ast.GenericDecl) (types.Type, bool)
	InstantiateType(spec *ast.GenericSpecType, gen *ast.GenericDecl) (types.Type, bool)
}

// genericDeclOf finds the GenericDecl a spec expression's callee
// identifier resolved to, if any.
func (c *Checker) genericDeclOf(e ast.Expression) (*ast.GenericDecl, bool) {
	ident, ok := calleeIdentifier(e)
	if !ok {
		return nil, false
	}
	gen, ok := c.reg.Get(ident.ResolvedDecl()).(*ast.GenericDecl)
	return gen, ok
}

// genericDeclOfType finds the GenericDecl a spec type's base
// DeclRefType resolved to, if any — the type-position counterpart of
// genericDeclOf.
func (c *Checker) genericDeclOfType(t ast.TypeExpr) (*ast.GenericDecl, bool) {
	dr, ok := t.(*ast.DeclRefType)
	if !ok {
		return nil, false
	}
	gen, ok := c.reg.Get(dr.ResolvedDecl()).(*ast.GenericDecl)
	return gen, ok
}

func (c *Checker) checkSpec(n *ast.SpecExpr) types.Type {
	calleeT := c.checkExpr(n.Callee)
	gen, ok := c.genericDeclOf(n.Callee)
	if !ok {
		if !types.IsPoison(calleeT) {
			c.err(diag.NotGeneric, n.Callee.Tok(), "call target is not generic")
		}
		for _, a := range n.Args {
			c.checkOperandNode(a)
		}
		return c.setType(n, c.builder.Poison())
	}
	if !c.checkGenericArgs(gen, n.Args) {
		return c.setType(n, c.builder.Poison())
	}
	if c.instantiator != nil {
		if t, ok := c.instantiator.Instantiate(n, gen); ok {
			return c.setType(n, t)
		}
	}
	return c.setType(n, c.builder.Poison())
}

func (c *Checker) checkSpecType(n *ast.GenericSpecType) types.Type {
	gen, ok := c.genericDeclOfType(n.Base)
	if !ok {
		for _, a := range n.Args {
			c.checkOperandNode(a)
		}
		c.err(diag.NotGeneric, n.Tok(), "type is not generic")
		return c.builder.Poison()
	}
	if !c.checkGenericArgs(gen, n.Args) {
		return c.builder.Poison()
	}
	if c.instantiator != nil {
		if t, ok := c.instantiator.InstantiateType(n, gen); ok {
			return t
		}
	}
	return c.builder.Poison()
}

// checkGenericArgs validates n.Args against gen's declared parameter
// list: a GenericParamType parameter takes a TypeExpr argument; a
// GenericParamConst parameter takes an Expression argument, checked
// against its ConstraintType when one is declared.
func (c *Checker) checkGenericArgs(gen *ast.GenericDecl, args []ast.Node) bool {
	if len(args) != len(gen.Params) {
		c.err(diag.GenericArityMismatch, gen.Tok(), "expected %d generic argument(s), got %d", len(gen.Params), len(args))
		for _, a := range args {
			c.checkOperandNode(a)
		}
		return false
	}
	ok := true
	for i, p := range gen.Params {
		switch p.ParamKind {
		case ast.GenericParamType:
			te, isType := args[i].(ast.TypeExpr)
			if !isType {
				c.err(diag.TypeMismatch, args[i].Tok(), "generic argument %d must be a type", i+1)
				ok = false
				continue
			}
			c.evalTypeExpr(te)
		case ast.GenericParamConst:
			ex, isExpr := args[i].(ast.Expression)
			if !isExpr {
				c.err(diag.TypeMismatch, args[i].Tok(), "generic argument %d must be a constant expression", i+1)
				ok = false
				continue
			}
			at := c.checkExpr(ex)
			if p.ConstraintType != nil && !types.IsPoison(at) {
				ct := c.evalTypeExpr(p.ConstraintType)
				if !types.ImplicitDirect(at, ct) {
					c.err(diag.TypeMismatch, ex.Tok(), "generic argument %d does not satisfy its constraint", i+1)
					ok = false
				}
			}
		}
	}
	return ok
}
