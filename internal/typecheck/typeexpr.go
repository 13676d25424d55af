package typecheck

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
)

// evalTypeExpr computes the interned Type a type-expression node names.
// DeclRefType defers to whatever registerSignatures already recorded
// for the declaration nameres resolved it to, so a forward reference to
// a struct declared later in the same scope still resolves correctly.
func (c *Checker) evalTypeExpr(t ast.TypeExpr) types.Type {
	switch te := t.(type) {
	case *ast.PrimType:
		return c.builder.Prim(te.Prim)
	case *ast.PtrType:
		pt, err := c.builder.BuildPtr(c.evalTypeExpr(te.Base))
		if err != nil {
			c.err(diag.TypeMismatch, te.Tok(), "%s", err)
			return c.builder.Poison()
		}
		return pt
	case *ast.RefType:
		rt, err := c.builder.BuildRef(c.evalTypeExpr(te.Base))
		if err != nil {
			c.err(diag.TypeMismatch, te.Tok(), "%s", err)
			return c.builder.Poison()
		}
		return rt
	case *ast.MutType:
		mt, err := c.builder.BuildMut(c.evalTypeExpr(te.Base))
		if err != nil {
			c.err(diag.TypeMismatch, te.Tok(), "%s", err)
			return c.builder.Poison()
		}
		return mt
	case *ast.OptType:
		ot, err := c.builder.BuildOpt(c.evalTypeExpr(te.Base))
		if err != nil {
			c.err(diag.TypeMismatch, te.Tok(), "%s", err)
			return c.builder.Poison()
		}
		return ot
	case *ast.ArrayType:
		base := c.evalTypeExpr(te.Base)
		return c.builder.BuildArray(base, c.constIntValue(te.Size))
	case *ast.VecType:
		base := c.evalTypeExpr(te.Base)
		return c.builder.BuildVec(base, c.constIntValue(te.Size))
	case *ast.MatType:
		base := c.evalTypeExpr(te.Base)
		return c.builder.BuildMat(base, c.constIntValue(te.Rows), c.constIntValue(te.Cols))
	case *ast.FunType:
		params := make([]types.Type, len(te.Params))
		for i, p := range te.Params {
			params[i] = c.evalTypeExpr(p)
		}
		ret := types.Type(c.builder.Prim(ast.PrimUnit))
		if te.Return != nil {
			ret = c.evalTypeExpr(te.Return)
		}
		return c.builder.BuildFun(params, ret)
	case *ast.MemberType:
		return c.resolveMemberType(c.evalTypeExpr(te.Base), te.Member)
	case *ast.DeclRefType:
		id := te.ResolvedDecl()
		if id == ast.InvalidID {
			return c.builder.Poison()
		}
		t, ok := c.table.Get(id)
		if !ok {
			return c.builder.Poison()
		}
		return t
	case *ast.GenericSpecType:
		return c.checkSpecType(te)
	case *ast.Poison:
		return c.builder.Poison()
	}
	return c.builder.Poison()
}

// resolveMemberType handles `Base.Member` written in type position.
// Modules are not themselves Type descriptors (spec §3's type universe
// has no module kind) — a module-nested type is always reached through
// a DeclRefType over a resolved PathAccess, which nameres already
// handles, so this form has no reachable base to resolve a member
// against and always reports a missing member.
func (c *Checker) resolveMemberType(baseT types.Type, member *ast.Identifier) types.Type {
	if types.IsPoison(baseT) {
		return c.builder.Poison()
	}
	c.err(diag.NoMember, member.Tok(), "%q has no nested type member", member.Value)
	return c.builder.Poison()
}

// constIntValue evaluates e as a compile-time integer constant, for use
// as an array/vector/matrix size. Only integer literals (optionally
// negated) are folded; anything else is type-checked for diagnostics
// but reported as not constant.
func (c *Checker) constIntValue(e ast.Expression) int64 {
	switch v := e.(type) {
	case *ast.IntLit:
		c.checkExpr(e)
		return v.Value
	case *ast.UnaryExpr:
		if v.Op == ast.UnaryNeg {
			return -c.constIntValue(v.Operand)
		}
	}
	c.checkExpr(e)
	c.err(diag.ExpectedInteger, e.Tok(), "array, vector and matrix sizes must be constant integer expressions")
	return 0
}
