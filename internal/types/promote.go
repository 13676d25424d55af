package types

import "github.com/baleg00/tau/internal/ast"

// BuildPromotedArithmetic returns the canonical common type of two
// arithmetic operands per the promotion table: complex dominates float
// dominates integer, wider width wins within a category, and mixed
// integer signedness promotes to the signed side if it is strictly
// wider, else to unsigned. ok is false if either operand is not
// arithmetic. mixedSignedness is true only for the integer/integer
// case with differing signedness, the case that warrants a caller
// warning.
func (b *Builder) BuildPromotedArithmetic(a, c Type) (result Type, mixedSignedness bool, ok bool) {
	a = RemoveMut(RemoveRef(a))
	c = RemoveMut(RemoveRef(c))

	if !IsArithmetic(a) || !IsArithmetic(c) {
		return nil, false, false
	}
	pa, pc := a.(*Primitive), c.(*Primitive)

	if pa.Prim.IsComplex() || pc.Prim.IsComplex() {
		if promotionWidth(pa, true) <= 64 && promotionWidth(pc, true) <= 64 {
			return b.Prim(ast.PrimC64), false, true
		}
		return b.Prim(ast.PrimC128), false, true
	}

	if pa.Prim.IsFloat() || pc.Prim.IsFloat() {
		if promotionWidth(pa, false) <= 32 && promotionWidth(pc, false) <= 32 {
			return b.Prim(ast.PrimF32), false, true
		}
		return b.Prim(ast.PrimF64), false, true
	}

	// Both integer.
	if pa.Prim.IsSigned() == pc.Prim.IsSigned() {
		if IntegerBits(pa) >= IntegerBits(pc) {
			return a, false, true
		}
		return c, false, true
	}

	signed, unsigned := pa, pc
	if pc.Prim.IsSigned() {
		signed, unsigned = pc, pa
	}
	if IntegerBits(signed) > IntegerBits(unsigned) {
		return signed, true, true
	}
	return unsigned, true, true
}

// promotionWidth is the width an operand contributes when promoting
// toward float or complex: a float/complex operand contributes its own
// width, an integer operand contributes the nominal float width it
// would implicitly convert to (spec §4.4, mirroring the int-to-float
// thresholds in the implicit-direct rule for primitives).
func promotionWidth(p *Primitive, towardComplex bool) int {
	if p.Prim.IsFloat() || p.Prim.IsComplex() {
		return IntegerBits(p)
	}
	if IntegerBits(p) <= 16 {
		return 32
	}
	return 64
}
