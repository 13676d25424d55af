package mangle

import (
	"strings"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/types"
	"github.com/baleg00/tau/internal/typetable"
)

// Mangler walks a fully analyzed program and assigns every function,
// struct, union, and enum a linkage name unique across the whole
// translation unit.
type Mangler struct {
	table *typetable.Table
	out   *Table
}

// New creates a Mangler that reads registered types back out of table
// (populated by an earlier typecheck.Check call).
func New(table *typetable.Table) *Mangler {
	return &Mangler{table: table, out: newTable()}
}

// Mangle computes linkage names for every declaration in prog and
// returns the populated Table.
func (m *Mangler) Mangle(prog *ast.Program) *Table {
	m.walkDecls(prog.Decls, nil)
	return m.out
}

func (m *Mangler) walkDecls(decls []ast.Decl, path []string) {
	for _, d := range decls {
		m.walkDecl(d, path)
	}
}

func (m *Mangler) walkDecl(d ast.Decl, path []string) {
	switch n := d.(type) {
	case *ast.ModDecl:
		m.walkDecls(n.Decls, append(path, n.Name.Value))
	case *ast.FunDecl:
		var params []types.Type
		if sig, ok := m.table.Get(n.ID()); ok {
			if fn, ok := sig.(*types.Fun); ok {
				params = fn.Params
			}
		}
		m.out.names[n.ID()] = MangleFunc(path, n.Name.Value, params)
	case *ast.StructDecl:
		m.out.names[n.ID()] = MangleType(path, n.Name.Value)
	case *ast.UnionDecl:
		m.out.names[n.ID()] = MangleType(path, n.Name.Value)
	case *ast.EnumDecl:
		m.out.names[n.ID()] = MangleType(path, n.Name.Value)
	case *ast.GenericDecl:
		// Left unnamed here: a generic declaration has no linkage
		// identity of its own. Its specializations are clones that
		// package generics keeps out of prog.Decls, so they get no
		// entry in this table either.
	}
}

// MangleType builds the linkage name for a nominal type declared at
// path with the given name: the enclosing module path joined with '$'
// followed by the name itself. Structurally identical names in
// different modules never collide since the module path is part of
// the key.
func MangleType(path []string, name string) string {
	return buildPrefix(path) + name
}

// MangleFunc builds the linkage name for a function declared at path
// with the given name and parameter types: the same module-qualified
// prefix as MangleType, followed by a '$'-joined parameter type
// signature so functions that differ in module path, name or parameter
// types never collide.
func MangleFunc(path []string, name string, params []types.Type) string {
	s := buildPrefix(path) + name
	if len(params) == 0 {
		return s
	}
	sig := make([]string, len(params))
	for i, p := range params {
		sig[i] = p.String()
	}
	return s + "$" + strings.Join(sig, "$")
}

func buildPrefix(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, "$") + "$"
}
