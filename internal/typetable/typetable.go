// Package typetable maps AST-node identity to its interned type,
// populated by typecheck and queried by every later pass (spec §3 Type
// table).
package typetable

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/types"
)

// Table is the AST-node-ID to type-descriptor map. The zero value is
// not usable; construct with New.
type Table struct {
	entries map[ast.ID]types.Type
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[ast.ID]types.Type)}
}

// Set records t as the type of node. A node already present is
// overwritten: the later Set wins (spec §3 Type table).
func (tbl *Table) Set(node ast.ID, t types.Type) {
	tbl.entries[node] = t
}

// Get returns the type recorded for node, or (nil, false) if typecheck
// has not visited it yet.
func (tbl *Table) Get(node ast.ID) (types.Type, bool) {
	t, ok := tbl.entries[node]
	return t, ok
}

// MustGet returns the type recorded for node, or the poison type if
// none was recorded — useful for later passes that, per spec invariant
// 5, should treat a missing entry the same as an already-poisoned one
// rather than panicking.
func (tbl *Table) MustGet(node ast.ID, poison types.Type) types.Type {
	if t, ok := tbl.entries[node]; ok {
		return t
	}
	return poison
}

// Len returns the number of nodes with a recorded type.
func (tbl *Table) Len() int { return len(tbl.entries) }
