package ast

import (
	"strings"

	"github.com/baleg00/tau/internal/token"
)

// Identifier names a declaration or refers to one in expression position.
// nameres sets ResolvedDecl (inherited from base) when it is used as an
// expression; when it is a declaration's Name child, insertion into the
// enclosing scope is what nameres does with it instead.
type Identifier struct {
	base
	Value string
}

func (i *Identifier) exprNode()    {}
func (i *Identifier) Kind() Kind   { return KindIdentifier }
func (i *Identifier) String() string { return i.Value }

// NewIdentifier allocates and registers an Identifier node.
func NewIdentifier(r *Registry, tok token.Token, value string) *Identifier {
	return alloc(r, func(id ID) *Identifier {
		return &Identifier{base: newBase(id, tok), Value: value}
	})
}

// VarDecl is a `var` declaration, local or module-level. Local scopes
// default a VarDecl to mutable unless explicitly marked otherwise by the
// parser (spec §4.6: "var : T = e" is "default mut in local scope").
type VarDecl struct {
	base
	Name  *Identifier
	Type  TypeExpr // nil if inferred from Init
	Init  Expression // nil for no-init form; control-flow defers init-before-use
	Mut   bool
	Pub   bool
}

func (d *VarDecl) stmtNode()             {}
func (d *VarDecl) declNode()             {}
func (d *VarDecl) Kind() Kind            { return KindVarDecl }
func (d *VarDecl) DeclName() *Identifier { return d.Name }
func (d *VarDecl) IsPub() bool           { return d.Pub }
func (d *VarDecl) String() string {
	var sb strings.Builder
	sb.WriteString("var ")
	sb.WriteString(d.Name.String())
	if d.Type != nil {
		sb.WriteString(": ")
		sb.WriteString(d.Type.String())
	}
	if d.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(d.Init.String())
	}
	return sb.String()
}

func NewVarDecl(r *Registry, tok token.Token, name *Identifier, typ TypeExpr, init Expression, mut, pub bool) *VarDecl {
	return alloc(r, func(id ID) *VarDecl {
		return &VarDecl{base: newBase(id, tok), Name: name, Type: typ, Init: init, Mut: mut, Pub: pub}
	})
}

// ParamDecl is a function parameter, optionally carrying a default value.
type ParamDecl struct {
	base
	Name    *Identifier
	Type    TypeExpr
	Default Expression // nil if no default
	Mut     bool
}

func (d *ParamDecl) stmtNode()             {}
func (d *ParamDecl) declNode()             {}
func (d *ParamDecl) Kind() Kind            { return KindParamDecl }
func (d *ParamDecl) DeclName() *Identifier { return d.Name }
func (d *ParamDecl) IsPub() bool           { return false }
func (d *ParamDecl) String() string {
	s := d.Name.String() + ": " + d.Type.String()
	if d.Default != nil {
		s += " = " + d.Default.String()
	}
	return s
}

func NewParamDecl(r *Registry, tok token.Token, name *Identifier, typ TypeExpr, def Expression, mut bool) *ParamDecl {
	return alloc(r, func(id ID) *ParamDecl {
		return &ParamDecl{base: newBase(id, tok), Name: name, Type: typ, Default: def, Mut: mut}
	})
}

// FunDecl is a function (or procedure-like, unit-returning function)
// declaration.
type FunDecl struct {
	base
	Name       *Identifier
	Params     []*ParamDecl
	Variadic   bool
	ReturnType TypeExpr // nil means unit
	Body       *BlockStmt // nil for an extern/forward declaration
	Pub        bool
}

func (d *FunDecl) stmtNode()             {}
func (d *FunDecl) declNode()             {}
func (d *FunDecl) Kind() Kind            { return KindFunDecl }
func (d *FunDecl) DeclName() *Identifier { return d.Name }
func (d *FunDecl) IsPub() bool           { return d.Pub }
func (d *FunDecl) String() string {
	var sb strings.Builder
	sb.WriteString("fun ")
	sb.WriteString(d.Name.String())
	sb.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	if d.Variadic {
		sb.WriteString(", ...")
	}
	sb.WriteString(")")
	if d.ReturnType != nil {
		sb.WriteString(": ")
		sb.WriteString(d.ReturnType.String())
	}
	return sb.String()
}

func NewFunDecl(r *Registry, tok token.Token, name *Identifier, params []*ParamDecl, variadic bool, ret TypeExpr, body *BlockStmt, pub bool) *FunDecl {
	return alloc(r, func(id ID) *FunDecl {
		return &FunDecl{base: newBase(id, tok), Name: name, Params: params, Variadic: variadic, ReturnType: ret, Body: body, Pub: pub}
	})
}

// FieldDecl is a member of a struct or union.
type FieldDecl struct {
	base
	Name *Identifier
	Type TypeExpr
	Pub  bool
}

func (d *FieldDecl) stmtNode()             {}
func (d *FieldDecl) declNode()             {}
func (d *FieldDecl) Kind() Kind            { return KindFieldDecl }
func (d *FieldDecl) DeclName() *Identifier { return d.Name }
func (d *FieldDecl) IsPub() bool           { return d.Pub }
func (d *FieldDecl) String() string        { return d.Name.String() + ": " + d.Type.String() }

func NewFieldDecl(r *Registry, tok token.Token, name *Identifier, typ TypeExpr, pub bool) *FieldDecl {
	return alloc(r, func(id ID) *FieldDecl {
		return &FieldDecl{base: newBase(id, tok), Name: name, Type: typ, Pub: pub}
	})
}

// StructDecl declares a struct type: an ordered, named aggregate whose
// fields are laid out in declaration order.
type StructDecl struct {
	base
	Name   *Identifier
	Fields []*FieldDecl
	Pub    bool
}

func (d *StructDecl) stmtNode()             {}
func (d *StructDecl) declNode()             {}
func (d *StructDecl) Kind() Kind            { return KindStructDecl }
func (d *StructDecl) DeclName() *Identifier { return d.Name }
func (d *StructDecl) IsPub() bool           { return d.Pub }
func (d *StructDecl) String() string        { return "struct " + d.Name.String() }

func NewStructDecl(r *Registry, tok token.Token, name *Identifier, fields []*FieldDecl, pub bool) *StructDecl {
	return alloc(r, func(id ID) *StructDecl {
		return &StructDecl{base: newBase(id, tok), Name: name, Fields: fields, Pub: pub}
	})
}

// UnionDecl declares a union type: an overlapping aggregate whose fields
// share the same storage.
type UnionDecl struct {
	base
	Name   *Identifier
	Fields []*FieldDecl
	Pub    bool
}

func (d *UnionDecl) stmtNode()             {}
func (d *UnionDecl) declNode()             {}
func (d *UnionDecl) Kind() Kind            { return KindUnionDecl }
func (d *UnionDecl) DeclName() *Identifier { return d.Name }
func (d *UnionDecl) IsPub() bool           { return d.Pub }
func (d *UnionDecl) String() string        { return "union " + d.Name.String() }

func NewUnionDecl(r *Registry, tok token.Token, name *Identifier, fields []*FieldDecl, pub bool) *UnionDecl {
	return alloc(r, func(id ID) *UnionDecl {
		return &UnionDecl{base: newBase(id, tok), Name: name, Fields: fields, Pub: pub}
	})
}

// EnumConstantDecl is one member of an enum, with an optional explicit
// initializer. typecheck types every constant as its enum and checks an
// explicit initializer's expression; it computes no numeric value for
// either form.
type EnumConstantDecl struct {
	base
	Name  *Identifier
	Value Expression // nil if implicit
}

func (d *EnumConstantDecl) stmtNode()             {}
func (d *EnumConstantDecl) declNode()             {}
func (d *EnumConstantDecl) Kind() Kind            { return KindEnumConstantDecl }
func (d *EnumConstantDecl) DeclName() *Identifier { return d.Name }
func (d *EnumConstantDecl) IsPub() bool           { return true }
func (d *EnumConstantDecl) String() string        { return d.Name.String() }

func NewEnumConstantDecl(r *Registry, tok token.Token, name *Identifier, value Expression) *EnumConstantDecl {
	return alloc(r, func(id ID) *EnumConstantDecl {
		return &EnumConstantDecl{base: newBase(id, tok), Name: name, Value: value}
	})
}

// EnumDecl declares an enum type and its ordered constants.
type EnumDecl struct {
	base
	Name      *Identifier
	Constants []*EnumConstantDecl
	Pub       bool
}

func (d *EnumDecl) stmtNode()             {}
func (d *EnumDecl) declNode()             {}
func (d *EnumDecl) Kind() Kind            { return KindEnumDecl }
func (d *EnumDecl) DeclName() *Identifier { return d.Name }
func (d *EnumDecl) IsPub() bool           { return d.Pub }
func (d *EnumDecl) String() string        { return "enum " + d.Name.String() }

func NewEnumDecl(r *Registry, tok token.Token, name *Identifier, constants []*EnumConstantDecl, pub bool) *EnumDecl {
	return alloc(r, func(id ID) *EnumDecl {
		return &EnumDecl{base: newBase(id, tok), Name: name, Constants: constants, Pub: pub}
	})
}

// ModDecl declares a module: a named, nested scope holding further
// declarations. Module-level declarations are hoisted (spec §4.5).
type ModDecl struct {
	base
	Name  *Identifier
	Decls []Decl
	Pub   bool
}

func (d *ModDecl) stmtNode()             {}
func (d *ModDecl) declNode()             {}
func (d *ModDecl) Kind() Kind            { return KindModDecl }
func (d *ModDecl) DeclName() *Identifier { return d.Name }
func (d *ModDecl) IsPub() bool           { return d.Pub }
func (d *ModDecl) String() string        { return "mod " + d.Name.String() }

func NewModDecl(r *Registry, tok token.Token, name *Identifier, decls []Decl, pub bool) *ModDecl {
	return alloc(r, func(id ID) *ModDecl {
		return &ModDecl{base: newBase(id, tok), Name: name, Decls: decls, Pub: pub}
	})
}

// GenericParamKind distinguishes a generic parameter that binds to a type
// from one that binds to a constant expression (e.g. an array length).
type GenericParamKind int

const (
	GenericParamType GenericParamKind = iota
	GenericParamConst
)

// GenericParamDecl is one parameter of a GenericDecl.
type GenericParamDecl struct {
	base
	Name           *Identifier
	ParamKind      GenericParamKind
	ConstraintType TypeExpr // for GenericParamConst: the type the constant must have
}

func (d *GenericParamDecl) stmtNode()             {}
func (d *GenericParamDecl) declNode()             {}
func (d *GenericParamDecl) Kind() Kind            { return KindGenericParamDecl }
func (d *GenericParamDecl) DeclName() *Identifier { return d.Name }
func (d *GenericParamDecl) IsPub() bool           { return false }
func (d *GenericParamDecl) String() string        { return d.Name.String() }

func NewGenericParamDecl(r *Registry, tok token.Token, name *Identifier, kind GenericParamKind, constraint TypeExpr) *GenericParamDecl {
	return alloc(r, func(id ID) *GenericParamDecl {
		return &GenericParamDecl{base: newBase(id, tok), Name: name, ParamKind: kind, ConstraintType: constraint}
	})
}

// GenericDecl wraps an inner declaration (fun, struct, union) with a list
// of generic parameters; specializing it is handled by package generics.
type GenericDecl struct {
	base
	Params []*GenericParamDecl
	Inner  Decl
	Pub    bool
}

func (d *GenericDecl) stmtNode()             {}
func (d *GenericDecl) declNode()             {}
func (d *GenericDecl) Kind() Kind            { return KindGenericDecl }
func (d *GenericDecl) DeclName() *Identifier { return d.Inner.DeclName() }
func (d *GenericDecl) IsPub() bool           { return d.Pub }
func (d *GenericDecl) String() string        { return "generic " + d.Inner.String() }

func NewGenericDecl(r *Registry, tok token.Token, params []*GenericParamDecl, inner Decl, pub bool) *GenericDecl {
	return alloc(r, func(id ID) *GenericDecl {
		return &GenericDecl{base: newBase(id, tok), Params: params, Inner: inner, Pub: pub}
	})
}
