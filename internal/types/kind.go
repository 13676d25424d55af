package types

import "fmt"

// TypeKind discriminates the concrete shape of a Type without a type
// assertion, for callers (mangle, codegen bridging) that only need to
// branch on shape rather than inspect fields.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindMut
	KindPtr
	KindRef
	KindOpt
	KindArray
	KindVec
	KindMat
	KindFun
	KindStruct
	KindUnion
	KindEnum
	KindNull
	KindPoison
	KindTypeVar
)

var kindNames = [...]string{
	"primitive", "mut", "ptr", "ref", "opt",
	"array", "vec", "mat", "fun",
	"struct", "union", "enum",
	"null", "poison", "type-var",
}

func (k TypeKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// Type is the common interface every interned descriptor satisfies.
// Convertibility is queried through the package-level ImplicitDirect,
// ImplicitIndirect and Explicit functions rather than these methods
// directly, since those functions also handle poison propagation
// (spec invariant 5) before dispatching to a descriptor's own rule.
type Type interface {
	Kind() TypeKind
	String() string

	implicitDirect(dst Type) bool
	implicitIndirect(dst Type) bool
	explicit(dst Type) bool
}

// ImplicitDirect reports whether src converts to dst the way an
// assignment, initialization or return does: widening arithmetic,
// adding opt, and identity, but never narrowing.
func ImplicitDirect(src, dst Type) bool {
	if IsPoison(src) || IsPoison(dst) {
		return true
	}
	return src.implicitDirect(dst)
}

// ImplicitIndirect reports whether src converts to dst the way a value
// reached through a reference does: the same base with the same or a
// narrower mut qualification.
func ImplicitIndirect(src, dst Type) bool {
	if IsPoison(src) || IsPoison(dst) {
		return true
	}
	return src.implicitIndirect(dst)
}

// Explicit reports whether a cast from src to dst is permitted.
func Explicit(src, dst Type) bool {
	if IsPoison(src) || IsPoison(dst) {
		return true
	}
	return src.explicit(dst)
}
