package typecheck

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
)

func (c *Checker) checkBinary(n *ast.BinaryExpr) types.Type {
	switch {
	case n.Op == ast.BinAccess:
		return c.checkMemberAccess(n)
	case n.Op == ast.BinSubscript:
		return c.checkSubscript(n)
	case n.Op.IsAssign():
		return c.checkAssign(n)
	case n.Op.IsArithmetic():
		return c.checkArithmetic(n)
	case n.Op.IsBitwise():
		return c.checkBitwise(n)
	case n.Op.IsComparison():
		return c.checkComparison(n)
	case n.Op.IsLogical():
		return c.checkLogical(n)
	}
	return c.setType(n, c.builder.Poison())
}

func (c *Checker) checkArithmetic(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	if types.IsPoison(lt) || types.IsPoison(rt) {
		return c.setType(n, c.builder.Poison())
	}
	result, mixed, ok := c.builder.BuildPromotedArithmetic(lt, rt)
	if !ok {
		c.err(diag.ExpectedArithmetic, n.Tok(), "operator %s requires arithmetic operands", n.Op)
		return c.setType(n, c.builder.Poison())
	}
	if mixed {
		c.err(diag.MixedSignedness, n.Tok(), "mixed-signedness operands to %s", n.Op)
	}
	return c.setType(n, result)
}

func (c *Checker) checkBitwise(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	if types.IsPoison(lt) || types.IsPoison(rt) {
		return c.setType(n, c.builder.Poison())
	}
	lv := types.RemoveMut(types.RemoveRef(lt))
	rv := types.RemoveMut(types.RemoveRef(rt))
	if !types.IsInteger(lv) || !types.IsInteger(rv) {
		c.err(diag.ExpectedInteger, n.Tok(), "operator %s requires integer operands", n.Op)
		return c.setType(n, c.builder.Poison())
	}
	result, mixed, ok := c.builder.BuildPromotedArithmetic(lv, rv)
	if !ok {
		return c.setType(n, c.builder.Poison())
	}
	if mixed {
		c.err(diag.MixedSignedness, n.Tok(), "mixed-signedness operands to %s", n.Op)
	}
	return c.setType(n, result)
}

func (c *Checker) checkComparison(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	boolT := c.builder.Prim(ast.PrimBool)
	if types.IsPoison(lt) || types.IsPoison(rt) {
		return c.setType(n, c.builder.Poison())
	}
	lv := types.RemoveMut(types.RemoveRef(lt))
	rv := types.RemoveMut(types.RemoveRef(rt))
	if lvec, isVec := lv.(*types.Vec); isVec {
		rvec, isVec2 := rv.(*types.Vec)
		if !isVec2 || lvec.Size != rvec.Size || lvec.Base != rvec.Base {
			c.err(diag.ExpectedVector, n.Tok(), "vector comparison requires operands of equal shape")
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, boolT)
	}
	if !types.IsArithmetic(lv) || !types.IsArithmetic(rv) {
		c.err(diag.ExpectedArithmetic, n.Tok(), "comparison %s requires arithmetic or equal-shape vector operands", n.Op)
		return c.setType(n, c.builder.Poison())
	}
	return c.setType(n, boolT)
}

func (c *Checker) checkLogical(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	boolT := c.builder.Prim(ast.PrimBool)
	if types.IsPoison(lt) || types.IsPoison(rt) {
		return c.setType(n, c.builder.Poison())
	}
	lv := types.RemoveMut(types.RemoveRef(lt))
	rv := types.RemoveMut(types.RemoveRef(rt))
	if !c.isBool(lv) || !c.isBool(rv) {
		c.err(diag.ExpectedBool, n.Tok(), "operator %s requires bool operands", n.Op)
		return c.setType(n, c.builder.Poison())
	}
	return c.setType(n, boolT)
}

func (c *Checker) checkSubscript(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	it := c.checkExpr(n.Right)
	if types.IsPoison(lt) || types.IsPoison(it) {
		return c.setType(n, c.builder.Poison())
	}
	arr, ok := types.RemoveMut(types.RemoveRef(lt)).(*types.Array)
	if !ok {
		c.err(diag.ExpectedArray, n.Left.Tok(), "subscript requires an array operand")
		return c.setType(n, c.builder.Poison())
	}
	if !types.IsInteger(types.RemoveMut(types.RemoveRef(it))) {
		c.err(diag.ExpectedInteger, n.Right.Tok(), "array index must be an integer")
		return c.setType(n, c.builder.Poison())
	}
	ref, err := c.builder.BuildRef(arr.Base)
	if err != nil {
		return c.setType(n, c.builder.Poison())
	}
	return c.setType(n, ref)
}

func (c *Checker) checkAssign(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rt := c.checkExpr(n.Right)
	if !types.IsPoison(lt) && (!types.IsRef(lt) || !types.IsMut(types.RemoveRef(lt))) {
		c.err(diag.ExpectedMutable, n.Left.Tok(), "left-hand side of assignment must be a mutable reference")
		return c.setType(n, c.builder.Poison())
	}
	if types.IsPoison(lt) {
		return c.setType(n, c.builder.Poison())
	}
	target := types.RemoveMut(types.RemoveRef(lt))
	if types.IsPoison(rt) {
		return c.setType(n, lt)
	}
	rv := types.RemoveMut(types.RemoveRef(rt))

	switch n.Op {
	case ast.BinAssign:
		if !types.ImplicitDirect(rt, target) {
			c.err(diag.TypeMismatch, n.Right.Tok(), "right-hand side is not convertible to %s", target)
		}
	case ast.BinAddAssign, ast.BinSubAssign, ast.BinMulAssign, ast.BinDivAssign, ast.BinModAssign:
		if !types.IsArithmetic(target) || !types.IsArithmetic(rv) {
			c.err(diag.ExpectedArithmetic, n.Tok(), "compound assignment %s requires arithmetic operands", n.Op)
		} else if !types.ImplicitDirect(rt, target) {
			c.err(diag.TypeMismatch, n.Right.Tok(), "right-hand side is not convertible to %s", target)
		}
	case ast.BinAndAssign, ast.BinOrAssign, ast.BinXorAssign, ast.BinShlAssign, ast.BinShrAssign:
		if !types.IsInteger(target) || !types.IsInteger(rv) {
			c.err(diag.ExpectedInteger, n.Tok(), "compound assignment %s requires integer operands", n.Op)
		} else if !types.ImplicitDirect(rt, target) {
			c.err(diag.TypeMismatch, n.Right.Tok(), "right-hand side is not convertible to %s", target)
		}
	}
	return c.setType(n, lt)
}

// checkMemberAccess resolves the right side of `a.m` against a's type
// now that it is known — the one identifier/path resolution nameres
// deliberately leaves undone (spec §4.5/§4.6) — and types the whole
// expression as the member's type, ref-wrapped like any other lvalue,
// carrying mut through when a itself is a mutable reference.
func (c *Checker) checkMemberAccess(n *ast.BinaryExpr) types.Type {
	lt := c.checkExpr(n.Left)
	rhsIdent, ok := n.Right.(*ast.Identifier)
	if !ok || types.IsPoison(lt) {
		return c.setType(n, c.builder.Poison())
	}

	mutable := types.IsRef(lt) && types.IsMut(types.RemoveRef(lt))
	base := types.RemoveMut(types.RemoveRef(lt))

	if enumT, isEnum := base.(*types.Enum); isEnum {
		if enumDecl, ok := c.reg.Get(enumT.Node).(*ast.EnumDecl); ok {
			for _, ec := range enumDecl.Constants {
				if ec.Name.Value == rhsIdent.Value {
					rhsIdent.SetResolvedDecl(ec.ID())
					return c.setType(n, enumT)
				}
			}
		}
		c.err(diag.NoMember, n.Right.Tok(), "%s has no constant %q", enumT.Name, rhsIdent.Value)
		return c.setType(n, c.builder.Poison())
	}

	var declID ast.ID
	var fields []*ast.FieldDecl
	var ownerName string
	switch v := base.(type) {
	case *types.Struct:
		declID = v.Node
		if sd, ok := c.reg.Get(declID).(*ast.StructDecl); ok {
			fields, ownerName = sd.Fields, sd.Name.Value
		}
	case *types.Union:
		declID = v.Node
		if ud, ok := c.reg.Get(declID).(*ast.UnionDecl); ok {
			fields, ownerName = ud.Fields, ud.Name.Value
		}
	default:
		c.err(diag.ExpectedReference, n.Left.Tok(), "member access requires a struct, union or enum operand")
		return c.setType(n, c.builder.Poison())
	}

	for _, f := range fields {
		if f.Name.Value != rhsIdent.Value {
			continue
		}
		if !f.Pub && c.moduleOf[declID] != c.curModule {
			c.err(diag.PrivateMember, n.Right.Tok(), "%s.%s is private", ownerName, f.Name.Value)
			return c.setType(n, c.builder.Poison())
		}
		rhsIdent.SetResolvedDecl(f.ID())
		ft, _ := c.table.Get(f.ID())
		return c.setType(n, c.refOf(ft, mutable))
	}

	c.err(diag.NoMember, n.Right.Tok(), "%s has no member %q", ownerName, rhsIdent.Value)
	return c.setType(n, c.builder.Poison())
}
