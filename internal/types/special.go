package types

// Null is the type of the `null` literal: convertible into any opt,
// never directly into a bare (non-optional) ptr. The sources are
// inconsistent on whether null reaches a non-optional pointer directly;
// the spec resolves that by requiring an explicit opt wrapper, so a
// nullable pointer must be spelled `opt ptr T`, not `ptr T`.
type Null struct{}

func (n *Null) Kind() TypeKind { return KindNull }
func (n *Null) String() string { return "null" }

func (n *Null) implicitDirect(dst Type) bool {
	_, ok := dst.(*Opt)
	return ok
}

func (n *Null) implicitIndirect(dst Type) bool { _, ok := dst.(*Null); return ok }
func (n *Null) explicit(dst Type) bool         { return n.implicitDirect(dst) }

// Poison is substituted for a node whose type could not be determined.
// Its own convertibility rules are never consulted: the package-level
// ImplicitDirect/ImplicitIndirect/Explicit functions special-case
// poison on either side before reaching these methods, so a poisoned
// operand never produces a secondary diagnostic (spec invariant 5).
type Poison struct{}

func (p *Poison) Kind() TypeKind { return KindPoison }
func (p *Poison) String() string { return "poison" }

func (p *Poison) implicitDirect(Type) bool   { return false }
func (p *Poison) implicitIndirect(Type) bool { return false }
func (p *Poison) explicit(Type) bool         { return false }

// TypeVar stands for an as-yet-unresolved generic parameter. It is
// unused by the current surface (no type inference over type
// variables is implemented) but kept so the universe matches spec §3's
// descriptor list and generic instantiation has somewhere to point
// before a parameter is substituted.
type TypeVar struct{ Name string }

func (v *TypeVar) Kind() TypeKind { return KindTypeVar }
func (v *TypeVar) String() string { return v.Name }

func (v *TypeVar) implicitDirect(Type) bool   { return false }
func (v *TypeVar) implicitIndirect(Type) bool { return false }
func (v *TypeVar) explicit(Type) bool         { return false }
