package types

import "github.com/baleg00/tau/internal/ast"

// Struct is a nominal struct type: two structurally identical field
// lists declared by different ast.StructDecl nodes remain distinct
// types, so Node (not the field list) is part of the intern key.
type Struct struct {
	Node   ast.ID
	Name   string
	Fields []Type
}

func (s *Struct) Kind() TypeKind { return KindStruct }
func (s *Struct) String() string { return s.Name }

func (s *Struct) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return s.implicitDirect(o.Base)
	}
	return dst == Type(s)
}

func (s *Struct) implicitIndirect(dst Type) bool { return dst == Type(s) }
func (s *Struct) explicit(dst Type) bool         { return Type(s) == RemoveMut(dst) }

// Union is a nominal tagged-union type, keyed by its declaring node
// the same way Struct is.
type Union struct {
	Node   ast.ID
	Name   string
	Fields []Type
}

func (u *Union) Kind() TypeKind { return KindUnion }
func (u *Union) String() string { return u.Name }

func (u *Union) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return u.implicitDirect(o.Base)
	}
	return dst == Type(u)
}

func (u *Union) implicitIndirect(dst Type) bool { return dst == Type(u) }
func (u *Union) explicit(dst Type) bool         { return Type(u) == RemoveMut(dst) }

// Enum is a nominal enum type, keyed by its declaring node.
type Enum struct {
	Node ast.ID
	Name string
}

func (e *Enum) Kind() TypeKind { return KindEnum }
func (e *Enum) String() string { return e.Name }

func (e *Enum) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return e.implicitDirect(o.Base)
	}
	return dst == Type(e)
}

func (e *Enum) implicitIndirect(dst Type) bool { return dst == Type(e) }
func (e *Enum) explicit(dst Type) bool         { return Type(e) == RemoveMut(dst) }
