package types

import "github.com/baleg00/tau/internal/ast"

// Primitive is one of the built-in scalar kinds. Every PrimKind has
// exactly one Primitive representative, built eagerly by NewBuilder.
type Primitive struct {
	Prim ast.PrimKind
}

func (p *Primitive) Kind() TypeKind  { return KindPrimitive }
func (p *Primitive) String() string  { return p.Prim.String() }

func (p *Primitive) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return p.implicitDirect(o.Base)
	}
	dst = RemoveMut(dst)

	if dp, ok := dst.(*Primitive); ok && dp == p {
		return true
	}

	if !IsArithmetic(p) || !IsArithmetic(dst) {
		return false
	}
	dp := dst.(*Primitive)

	if p.Prim.IsFloat() {
		switch {
		case dp.Prim.IsFloat():
			return !(p.Prim == ast.PrimF64 && dp.Prim == ast.PrimF32)
		case dp.Prim.IsInteger():
			return false
		case dp.Prim.IsComplex():
			return !(p.Prim == ast.PrimF64 && dp.Prim == ast.PrimC64)
		}
	}

	if p.Prim.IsInteger() {
		switch {
		case dp.Prim.IsInteger():
			if p.Prim.IsSigned() == dp.Prim.IsSigned() {
				return IntegerBits(p) <= IntegerBits(dp)
			}
			if p.Prim.IsSigned() && !dp.Prim.IsSigned() {
				return false
			}
			return IntegerBits(p) < IntegerBits(dp)
		case dp.Prim == ast.PrimF32:
			return IntegerBits(p) <= 16
		case dp.Prim == ast.PrimF64:
			return IntegerBits(p) <= 32
		case dp.Prim == ast.PrimC64:
			return IntegerBits(p) <= 16
		case dp.Prim == ast.PrimC128:
			return IntegerBits(p) <= 32
		}
	}

	return false
}

func (p *Primitive) implicitIndirect(dst Type) bool {
	dp, ok := dst.(*Primitive)
	return ok && dp == p
}

func (p *Primitive) explicit(dst Type) bool {
	return IsArithmetic(RemoveMut(dst))
}
