package types

import "github.com/baleg00/tau/internal/ast"

// IsPoison, IsMut, IsRef, IsOpt, IsPtr and IsArithmetic mirror the
// typedesc_is_X family in the original sources: cheap shape queries used
// throughout the convertibility rules below, so a rule can ask "is my
// counterpart a ref" without a type switch of its own.

func IsPoison(t Type) bool { _, ok := t.(*Poison); return ok }
func IsMut(t Type) bool    { _, ok := t.(*Mut); return ok }
func IsRef(t Type) bool    { _, ok := t.(*Ref); return ok }
func IsOpt(t Type) bool    { _, ok := t.(*Opt); return ok }
func IsPtr(t Type) bool    { _, ok := t.(*Ptr); return ok }

// IsArithmetic reports whether t is a primitive of an arithmetic kind
// (integer, float or complex).
func IsArithmetic(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Prim.IsArithmetic()
}

// IsInteger, IsFloat and IsComplex report whether t is a primitive of
// the named arithmetic sub-kind.
func IsInteger(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Prim.IsInteger()
}

func IsFloat(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Prim.IsFloat()
}

func IsComplex(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Prim.IsComplex()
}

// IsSigned reports whether t is a signed integer primitive.
func IsSigned(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Prim.IsSigned()
}

// integerBits is the nominal bit width the promotion and narrowing
// rules compare, indexed by ast.PrimKind.
var integerBits = map[ast.PrimKind]int{
	ast.PrimI8: 8, ast.PrimU8: 8,
	ast.PrimI16: 16, ast.PrimU16: 16,
	ast.PrimI32: 32, ast.PrimU32: 32, ast.PrimF32: 32,
	ast.PrimI64: 64, ast.PrimU64: 64, ast.PrimIsize: 64, ast.PrimUsize: 64, ast.PrimF64: 64,
	ast.PrimC64: 64, ast.PrimC128: 128,
	ast.PrimChar: 8, ast.PrimBool: 1, ast.PrimUnit: 0,
}

// IntegerBits returns the nominal width integerBits records for a
// primitive (integer, float, complex, char or bool), or 0 for unit or
// a non-primitive t.
func IntegerBits(t Type) int {
	p, ok := t.(*Primitive)
	if !ok {
		return 0
	}
	return integerBits[p.Prim]
}

// RemoveMut strips one mut layer, returning t unchanged if it is not a
// Mut.
func RemoveMut(t Type) Type {
	if m, ok := t.(*Mut); ok {
		return m.Base
	}
	return t
}

// RemoveRef strips one ref layer, returning t unchanged if it is not a
// Ref.
func RemoveRef(t Type) Type {
	if r, ok := t.(*Ref); ok {
		return r.Base
	}
	return t
}

// RemoveOpt strips one opt layer, returning t unchanged if it is not an
// Opt.
func RemoveOpt(t Type) Type {
	if o, ok := t.(*Opt); ok {
		return o.Base
	}
	return t
}
