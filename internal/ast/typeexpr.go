package ast

import (
	"strings"

	"github.com/baleg00/tau/internal/token"
)

// PrimType names a primitive type.
type PrimType struct {
	base
	Prim PrimKind
}

func (t *PrimType) typeNode()     {}
func (t *PrimType) Kind() Kind    { return KindPrimType }
func (t *PrimType) String() string { return t.Prim.String() }

func NewPrimType(r *Registry, tok token.Token, prim PrimKind) *PrimType {
	return alloc(r, func(id ID) *PrimType { return &PrimType{base: newBase(id, tok), Prim: prim} })
}

// PtrType is `*Base`: a pointer to Base.
type PtrType struct {
	base
	Base TypeExpr
}

func (t *PtrType) typeNode()     {}
func (t *PtrType) Kind() Kind    { return KindPtrType }
func (t *PtrType) String() string { return "*" + t.Base.String() }

func NewPtrType(r *Registry, tok token.Token, base_ TypeExpr) *PtrType {
	return alloc(r, func(id ID) *PtrType { return &PtrType{base: newBase(id, tok), Base: base_} })
}

// RefType is `&Base`: a reference to Base.
type RefType struct {
	base
	Base TypeExpr
}

func (t *RefType) typeNode()     {}
func (t *RefType) Kind() Kind    { return KindRefType }
func (t *RefType) String() string { return "&" + t.Base.String() }

func NewRefType(r *Registry, tok token.Token, base_ TypeExpr) *RefType {
	return alloc(r, func(id ID) *RefType { return &RefType{base: newBase(id, tok), Base: base_} })
}

// MutType is `mut Base`: a mutable qualification of Base.
type MutType struct {
	base
	Base TypeExpr
}

func (t *MutType) typeNode()     {}
func (t *MutType) Kind() Kind    { return KindMutType }
func (t *MutType) String() string { return "mut " + t.Base.String() }

func NewMutType(r *Registry, tok token.Token, base_ TypeExpr) *MutType {
	return alloc(r, func(id ID) *MutType { return &MutType{base: newBase(id, tok), Base: base_} })
}

// OptType is `?Base`: an optional wrapping of Base.
type OptType struct {
	base
	Base TypeExpr
}

func (t *OptType) typeNode()     {}
func (t *OptType) Kind() Kind    { return KindOptType }
func (t *OptType) String() string { return "?" + t.Base.String() }

func NewOptType(r *Registry, tok token.Token, base_ TypeExpr) *OptType {
	return alloc(r, func(id ID) *OptType { return &OptType{base: newBase(id, tok), Base: base_} })
}

// ArrayType is `[Size]Base`: a fixed-length sequence of Base.
type ArrayType struct {
	base
	Base TypeExpr
	Size Expression // must be a constant, integer-valued expression
}

func (t *ArrayType) typeNode()     {}
func (t *ArrayType) Kind() Kind    { return KindArrayType }
func (t *ArrayType) String() string { return "[" + t.Size.String() + "]" + t.Base.String() }

func NewArrayType(r *Registry, tok token.Token, base_ TypeExpr, size Expression) *ArrayType {
	return alloc(r, func(id ID) *ArrayType { return &ArrayType{base: newBase(id, tok), Base: base_, Size: size} })
}

// VecType is a fixed-size SIMD-style vector of Base.
type VecType struct {
	base
	Base TypeExpr
	Size Expression
}

func (t *VecType) typeNode()     {}
func (t *VecType) Kind() Kind    { return KindVecType }
func (t *VecType) String() string { return "vec[" + t.Size.String() + "]" + t.Base.String() }

func NewVecType(r *Registry, tok token.Token, base_ TypeExpr, size Expression) *VecType {
	return alloc(r, func(id ID) *VecType { return &VecType{base: newBase(id, tok), Base: base_, Size: size} })
}

// MatType is a fixed Rows x Cols matrix of Base.
type MatType struct {
	base
	Base TypeExpr
	Rows Expression
	Cols Expression
}

func (t *MatType) typeNode()  {}
func (t *MatType) Kind() Kind { return KindMatType }
func (t *MatType) String() string {
	return "mat[" + t.Rows.String() + "," + t.Cols.String() + "]" + t.Base.String()
}

func NewMatType(r *Registry, tok token.Token, base_ TypeExpr, rows, cols Expression) *MatType {
	return alloc(r, func(id ID) *MatType { return &MatType{base: newBase(id, tok), Base: base_, Rows: rows, Cols: cols} })
}

// FunType is the type of a function value: a parameter-type list plus a
// return type.
type FunType struct {
	base
	Params []TypeExpr
	Return TypeExpr
}

func (t *FunType) typeNode()  {}
func (t *FunType) Kind() Kind { return KindFunType }
func (t *FunType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	ret := "unit"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return "fun(" + strings.Join(parts, ", ") + "): " + ret
}

func NewFunType(r *Registry, tok token.Token, params []TypeExpr, ret TypeExpr) *FunType {
	return alloc(r, func(id ID) *FunType { return &FunType{base: newBase(id, tok), Params: params, Return: ret} })
}

// MemberType is `Base.Member`: a nested type named within Base's scope
// (e.g. a struct nested inside a module type-path).
type MemberType struct {
	base
	Base   TypeExpr
	Member *Identifier
}

func (t *MemberType) typeNode()     {}
func (t *MemberType) Kind() Kind    { return KindMemberType }
func (t *MemberType) String() string { return t.Base.String() + "." + t.Member.String() }

func NewMemberType(r *Registry, tok token.Token, base_ TypeExpr, member *Identifier) *MemberType {
	return alloc(r, func(id ID) *MemberType { return &MemberType{base: newBase(id, tok), Base: base_, Member: member} })
}

// DeclRefType names a type by referring to the declaration (struct, union,
// enum, generic) a path resolves to; nameres sets ResolvedDecl.
type DeclRefType struct {
	base
	Path PathNode
}

func (t *DeclRefType) typeNode()     {}
func (t *DeclRefType) Kind() Kind    { return KindDeclRefType }
func (t *DeclRefType) String() string { return t.Path.String() }

func NewDeclRefType(r *Registry, tok token.Token, path PathNode) *DeclRefType {
	return alloc(r, func(id ID) *DeclRefType { return &DeclRefType{base: newBase(id, tok), Path: path} })
}

// GenericSpecType specializes a generic declaration at the type level
// (`List<i32>` used in a type position), one argument per generic
// parameter.
type GenericSpecType struct {
	base
	Base TypeExpr
	Args []Node
}

func (t *GenericSpecType) typeNode()  {}
func (t *GenericSpecType) Kind() Kind { return KindGenericSpecType }
func (t *GenericSpecType) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Base.String() + "<" + strings.Join(parts, ", ") + ">"
}

func NewGenericSpecType(r *Registry, tok token.Token, base_ TypeExpr, args []Node) *GenericSpecType {
	return alloc(r, func(id ID) *GenericSpecType { return &GenericSpecType{base: newBase(id, tok), Base: base_, Args: args} })
}
