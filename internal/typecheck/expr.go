package typecheck

import (
	"math"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
)

// checkExpr type-checks e, records its type in the table, and returns
// that type. Every branch except the Poison-node and unknown-kind
// fallbacks goes through setType so later passes can ask
// "has this node been typed" via TypeIndex without re-deriving it.
func (c *Checker) checkExpr(e ast.Expression) types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return c.setType(n, c.builder.Prim(smallestIntKind(n.Value)))
	case *ast.FloatLit:
		return c.setType(n, c.builder.Prim(smallestFloatKind(n.Value)))
	case *ast.StringLit:
		pt, _ := c.builder.BuildPtr(c.builder.Prim(ast.PrimU8))
		return c.setType(n, pt)
	case *ast.CharLit:
		return c.setType(n, c.builder.Prim(ast.PrimChar))
	case *ast.BoolLit:
		return c.setType(n, c.builder.Prim(ast.PrimBool))
	case *ast.NullLit:
		return c.setType(n, c.builder.Null())
	case *ast.VecLit:
		return c.checkVecLit(n)
	case *ast.MatLit:
		return c.checkMatLit(n)
	case *ast.Identifier:
		return c.checkIdentifier(n)
	case *ast.UnaryExpr:
		return c.checkUnary(n)
	case *ast.BinaryExpr:
		return c.checkBinary(n)
	case *ast.CallExpr:
		return c.checkCall(n)
	case *ast.SpecExpr:
		return c.checkSpec(n)
	case *ast.SizeofExpr:
		c.checkOperandNode(n.Operand)
		return c.setType(n, c.builder.Prim(ast.PrimUsize))
	case *ast.AlignofExpr:
		c.checkOperandNode(n.Operand)
		return c.setType(n, c.builder.Prim(ast.PrimUsize))
	case *ast.Poison:
		return c.builder.Poison()
	}
	return c.builder.Poison()
}

func (c *Checker) checkOperandNode(n ast.Node) {
	switch v := n.(type) {
	case ast.TypeExpr:
		c.evalTypeExpr(v)
	case ast.Expression:
		c.checkExpr(v)
	}
}

// smallestIntKind picks the narrowest signed integer primitive an
// int-literal's written value fits in; the original sources apply the
// same narrowest-fit rule when folding an integer constant's type.
func smallestIntKind(v int64) ast.PrimKind {
	switch {
	case v >= -128 && v <= 127:
		return ast.PrimI8
	case v >= -32768 && v <= 32767:
		return ast.PrimI16
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return ast.PrimI32
	default:
		return ast.PrimI64
	}
}

// smallestFloatKind picks f32 when the written value round-trips
// through a float32 without losing precision, f64 otherwise.
func smallestFloatKind(v float64) ast.PrimKind {
	if float64(float32(v)) == v {
		return ast.PrimF32
	}
	return ast.PrimF64
}

func (c *Checker) checkVecLit(n *ast.VecLit) types.Type {
	if len(n.Elements) == 0 {
		return c.setType(n, c.builder.Poison())
	}
	var common types.Type
	ok := true
	for i, el := range n.Elements {
		et := c.checkExpr(el)
		if types.IsPoison(et) {
			ok = false
			continue
		}
		if i == 0 {
			common = et
			continue
		}
		promoted, mixed, pok := c.builder.BuildPromotedArithmetic(common, et)
		if !pok {
			c.err(diag.ExpectedArithmetic, el.Tok(), "vector elements must be arithmetic")
			ok = false
			continue
		}
		if mixed {
			c.err(diag.MixedSignedness, el.Tok(), "mixed-signedness vector elements")
		}
		common = promoted
	}
	if !ok || common == nil {
		return c.setType(n, c.builder.Poison())
	}
	return c.setType(n, c.builder.BuildVec(common, int64(len(n.Elements))))
}

func (c *Checker) checkMatLit(n *ast.MatLit) types.Type {
	if len(n.Rows) == 0 {
		return c.setType(n, c.builder.Poison())
	}
	cols := len(n.Rows[0])
	var common types.Type
	ok := true
	for _, row := range n.Rows {
		if len(row) != cols {
			ok = false
		}
		for _, el := range row {
			et := c.checkExpr(el)
			if types.IsPoison(et) {
				ok = false
				continue
			}
			if common == nil {
				common = et
				continue
			}
			promoted, mixed, pok := c.builder.BuildPromotedArithmetic(common, et)
			if !pok {
				c.err(diag.ExpectedArithmetic, el.Tok(), "matrix elements must be arithmetic")
				ok = false
				continue
			}
			if mixed {
				c.err(diag.MixedSignedness, el.Tok(), "mixed-signedness matrix elements")
			}
			common = promoted
		}
	}
	if !ok || common == nil {
		return c.setType(n, c.builder.Poison())
	}
	return c.setType(n, c.builder.BuildMat(common, int64(len(n.Rows)), int64(cols)))
}

// checkIdentifier applies spec §4.6's `id` rule: a variable-like
// declaration (var, param, field) is typed `ref [mut] T`, where mut is
// present iff the declaration is mutable; a type- or namespace-like
// declaration (fun, struct, union, enum, mod, generic, enum constant)
// is typed as its own registered type directly, unwrapped.
func (c *Checker) checkIdentifier(n *ast.Identifier) types.Type {
	declID := n.ResolvedDecl()
	if declID == ast.InvalidID {
		return c.setType(n, c.builder.Poison())
	}
	declNode := c.reg.Get(declID)
	declType, ok := c.table.Get(declID)
	if !ok {
		return c.setType(n, c.builder.Poison())
	}

	switch dn := declNode.(type) {
	case *ast.FunDecl, *ast.StructDecl, *ast.UnionDecl, *ast.EnumDecl,
		*ast.ModDecl, *ast.GenericDecl, *ast.GenericParamDecl, *ast.EnumConstantDecl:
		return c.setType(n, declType)
	case *ast.VarDecl:
		return c.setType(n, c.refOf(declType, dn.Mut))
	case *ast.ParamDecl:
		return c.setType(n, c.refOf(declType, dn.Mut))
	case *ast.FieldDecl:
		return c.setType(n, c.refOf(declType, false))
	}
	return c.setType(n, declType)
}

func (c *Checker) refOf(base types.Type, mut bool) types.Type {
	if mut {
		if m, err := c.builder.BuildMut(base); err == nil {
			base = m
		}
	}
	ref, err := c.builder.BuildRef(base)
	if err != nil {
		return base
	}
	return ref
}

func (c *Checker) checkUnary(n *ast.UnaryExpr) types.Type {
	opT := c.checkExpr(n.Operand)
	if types.IsPoison(opT) {
		return c.setType(n, c.builder.Poison())
	}
	switch n.Op {
	case ast.UnaryPlus, ast.UnaryNeg:
		val := types.RemoveMut(types.RemoveRef(opT))
		if !types.IsArithmetic(val) {
			c.err(diag.ExpectedArithmetic, n.Operand.Tok(), "unary %s requires an arithmetic operand", n.Op)
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, val)
	case ast.UnaryNot:
		val := types.RemoveMut(types.RemoveRef(opT))
		if !c.isBool(val) {
			c.err(diag.ExpectedBool, n.Operand.Tok(), "logical ! requires a bool operand")
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, val)
	case ast.UnaryBNot:
		val := types.RemoveMut(types.RemoveRef(opT))
		if !types.IsInteger(val) {
			c.err(diag.ExpectedInteger, n.Operand.Tok(), "bitwise ~ requires an integer operand")
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, val)
	case ast.UnaryInc, ast.UnaryDec:
		if !types.IsRef(opT) || !types.IsMut(types.RemoveRef(opT)) {
			c.err(diag.ExpectedMutable, n.Operand.Tok(), "%s requires a mutable reference operand", n.Op)
			return c.setType(n, c.builder.Poison())
		}
		val := types.RemoveMut(types.RemoveRef(opT))
		if !types.IsArithmetic(val) {
			c.err(diag.ExpectedArithmetic, n.Operand.Tok(), "%s requires an arithmetic operand", n.Op)
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, val)
	case ast.UnaryDeref:
		base := types.RemoveMut(types.RemoveRef(opT))
		ptr, ok := base.(*types.Ptr)
		if !ok {
			c.err(diag.ExpectedPointer, n.Operand.Tok(), "unary * requires a pointer operand")
			return c.setType(n, c.builder.Poison())
		}
		ref, err := c.builder.BuildRef(ptr.Base)
		if err != nil {
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, ref)
	case ast.UnaryAddr:
		if !types.IsRef(opT) {
			c.err(diag.ExpectedReference, n.Operand.Tok(), "unary & requires a reference operand")
			return c.setType(n, c.builder.Poison())
		}
		ptr, err := c.builder.BuildPtr(opT.(*types.Ref).Base)
		if err != nil {
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, ptr)
	case ast.UnaryUnwrap:
		base := types.RemoveMut(types.RemoveRef(opT))
		opt, ok := base.(*types.Opt)
		if !ok {
			c.err(diag.ExpectedOptional, n.Operand.Tok(), "unsafe unwrap ?! requires an optional operand")
			return c.setType(n, c.builder.Poison())
		}
		return c.setType(n, opt.Base)
	}
	return c.setType(n, c.builder.Poison())
}

func calleeIdentifier(e ast.Expression) (*ast.Identifier, bool) {
	switch v := e.(type) {
	case *ast.Identifier:
		return v, true
	case *ast.BinaryExpr:
		if v.Op == ast.BinAccess {
			if id, ok := v.Right.(*ast.Identifier); ok {
				return id, true
			}
		}
	}
	return nil, false
}

func (c *Checker) checkCall(n *ast.CallExpr) types.Type {
	ct := c.checkExpr(n.Callee)
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = c.checkExpr(a)
	}
	if types.IsPoison(ct) {
		return c.setType(n, c.builder.Poison())
	}
	fn, ok := types.RemoveMut(types.RemoveRef(ct)).(*types.Fun)
	if !ok {
		c.err(diag.ExpectedCallable, n.Callee.Tok(), "call target is not a function")
		return c.setType(n, c.builder.Poison())
	}

	variadic := false
	if ident, ok := calleeIdentifier(n.Callee); ok {
		if fd, ok2 := c.reg.Get(ident.ResolvedDecl()).(*ast.FunDecl); ok2 {
			variadic = fd.Variadic
		}
	}
	if len(n.Args) < len(fn.Params) || (!variadic && len(n.Args) != len(fn.Params)) {
		c.err(diag.ArityMismatch, n.Tok(), "expected %d argument(s), got %d", len(fn.Params), len(n.Args))
		return c.setType(n, c.builder.Poison())
	}
	for i, pt := range fn.Params {
		if types.IsPoison(argTypes[i]) {
			continue
		}
		if !types.ImplicitDirect(argTypes[i], pt) {
			c.err(diag.TypeMismatch, n.Args[i].Tok(), "argument %d is not convertible to parameter type %s", i+1, pt)
		}
	}
	return c.setType(n, fn.Return)
}
