package mangle

import "github.com/baleg00/tau/internal/ast"

// Table maps a declaration node to the linkage name mangle computed
// for it. Only FunDecl, StructDecl, UnionDecl, and EnumDecl nodes get
// an entry — the other declaration kinds (var, param, field, module,
// generic parameter) have no linkage identity of their own for
// codegen to emit.
type Table struct {
	names map[ast.ID]string
}

func newTable() *Table {
	return &Table{names: make(map[ast.ID]string)}
}

// Get returns the mangled name recorded for node, if any.
func (t *Table) Get(node ast.ID) (string, bool) {
	name, ok := t.names[node]
	return name, ok
}

// Len returns the number of mangled names recorded.
func (t *Table) Len() int { return len(t.names) }
