package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/baleg00/tau/internal/ast"
)

// Builder is the hash-cons interner: every composite descriptor it
// constructs is looked up by structural key first, so two calls with
// structurally equal arguments return the same representative (spec
// invariant 3).
type Builder struct {
	mu    sync.Mutex
	table map[string]Type
}

var allPrimKinds = []ast.PrimKind{
	ast.PrimI8, ast.PrimI16, ast.PrimI32, ast.PrimI64, ast.PrimIsize,
	ast.PrimU8, ast.PrimU16, ast.PrimU32, ast.PrimU64, ast.PrimUsize,
	ast.PrimF32, ast.PrimF64, ast.PrimC64, ast.PrimC128,
	ast.PrimChar, ast.PrimBool, ast.PrimUnit,
}

// NewBuilder returns a Builder with every primitive singleton and the
// null and poison specials already interned.
func NewBuilder() *Builder {
	b := &Builder{table: make(map[string]Type)}
	for _, pk := range allPrimKinds {
		p := &Primitive{Prim: pk}
		b.table[typeKey(p)] = p
	}
	b.table["null"] = &Null{}
	b.table["poison"] = &Poison{}
	return b
}

func typeKey(t Type) string {
	switch v := t.(type) {
	case *Primitive:
		return "prim:" + v.Prim.String()
	case *Mut:
		return "mut(" + typeKey(v.Base) + ")"
	case *Ptr:
		return "ptr(" + typeKey(v.Base) + ")"
	case *Ref:
		return "ref(" + typeKey(v.Base) + ")"
	case *Opt:
		return "opt(" + typeKey(v.Base) + ")"
	case *Array:
		return fmt.Sprintf("array(%s,%d)", typeKey(v.Base), v.Length)
	case *Vec:
		return fmt.Sprintf("vec(%s,%d)", typeKey(v.Base), v.Size)
	case *Mat:
		return fmt.Sprintf("mat(%s,%d,%d)", typeKey(v.Base), v.Rows, v.Cols)
	case *Fun:
		parts := make([]string, len(v.Params))
		for i, p := range v.Params {
			parts[i] = typeKey(p)
		}
		return "fun(" + strings.Join(parts, ",") + ")->" + typeKey(v.Return)
	case *Struct:
		return fmt.Sprintf("struct#%d", v.Node)
	case *Union:
		return fmt.Sprintf("union#%d", v.Node)
	case *Enum:
		return fmt.Sprintf("enum#%d", v.Node)
	case *Null:
		return "null"
	case *Poison:
		return "poison"
	case *TypeVar:
		return "var:" + v.Name
	default:
		return fmt.Sprintf("?%T", t)
	}
}

func (b *Builder) intern(key string, construct func() Type) Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.table[key]; ok {
		return t
	}
	t := construct()
	b.table[key] = t
	return t
}

// Prim returns the singleton descriptor for a primitive kind.
func (b *Builder) Prim(k ast.PrimKind) Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table[typeKey(&Primitive{Prim: k})]
}

// Null returns the singleton null descriptor.
func (b *Builder) Null() Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table["null"]
}

// Poison returns the singleton poison descriptor.
func (b *Builder) Poison() Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table["poison"]
}

// BuildMut wraps base in mut. base may not already be mut, ref or opt.
func (b *Builder) BuildMut(base Type) (Type, error) {
	if IsMut(base) || IsRef(base) || IsOpt(base) {
		return nil, fmt.Errorf("types: mut may not wrap %s", base.Kind())
	}
	return b.intern(typeKey(&Mut{Base: base}), func() Type { return &Mut{Base: base} }), nil
}

// BuildPtr wraps base in ptr. base may not be ref.
func (b *Builder) BuildPtr(base Type) (Type, error) {
	if IsRef(base) {
		return nil, fmt.Errorf("types: ptr may not wrap ref")
	}
	return b.intern(typeKey(&Ptr{Base: base}), func() Type { return &Ptr{Base: base} }), nil
}

// BuildRef wraps base in ref. base may be mut but not another ref.
func (b *Builder) BuildRef(base Type) (Type, error) {
	if IsRef(base) {
		return nil, fmt.Errorf("types: ref may not wrap ref")
	}
	return b.intern(typeKey(&Ref{Base: base}), func() Type { return &Ref{Base: base} }), nil
}

// BuildOpt wraps base in opt. base may be mut but not another opt.
func (b *Builder) BuildOpt(base Type) (Type, error) {
	if IsOpt(base) {
		return nil, fmt.Errorf("types: opt may not wrap opt")
	}
	return b.intern(typeKey(&Opt{Base: base}), func() Type { return &Opt{Base: base} }), nil
}

// BuildArray interns array(base, length).
func (b *Builder) BuildArray(base Type, length int64) Type {
	return b.intern(typeKey(&Array{Base: base, Length: length}), func() Type {
		return &Array{Base: base, Length: length}
	})
}

// BuildVec interns vec(base, size).
func (b *Builder) BuildVec(base Type, size int64) Type {
	return b.intern(typeKey(&Vec{Base: base, Size: size}), func() Type {
		return &Vec{Base: base, Size: size}
	})
}

// BuildMat interns mat(base, rows, cols).
func (b *Builder) BuildMat(base Type, rows, cols int64) Type {
	return b.intern(typeKey(&Mat{Base: base, Rows: rows, Cols: cols}), func() Type {
		return &Mat{Base: base, Rows: rows, Cols: cols}
	})
}

// BuildFun interns fun(params, return).
func (b *Builder) BuildFun(params []Type, ret Type) Type {
	return b.intern(typeKey(&Fun{Params: params, Return: ret}), func() Type {
		return &Fun{Params: params, Return: ret}
	})
}

// BuildStruct interns the nominal type for a struct declaration. Two
// calls with the same node always return the same representative even
// if Fields differs between calls (a generic instantiation rebuilding
// the same node); the first call's Fields wins.
func (b *Builder) BuildStruct(node ast.ID, name string, fields []Type) Type {
	return b.intern(fmt.Sprintf("struct#%d", node), func() Type {
		return &Struct{Node: node, Name: name, Fields: fields}
	})
}

// BuildUnion interns the nominal type for a union declaration.
func (b *Builder) BuildUnion(node ast.ID, name string, fields []Type) Type {
	return b.intern(fmt.Sprintf("union#%d", node), func() Type {
		return &Union{Node: node, Name: name, Fields: fields}
	})
}

// BuildEnum interns the nominal type for an enum declaration.
func (b *Builder) BuildEnum(node ast.ID, name string) Type {
	return b.intern(fmt.Sprintf("enum#%d", node), func() Type {
		return &Enum{Node: node, Name: name}
	})
}
