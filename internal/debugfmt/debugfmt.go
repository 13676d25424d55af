// Package debugfmt pretty-prints the compiler's internal structures —
// symbol-table trees and interned type descriptors — for the CLI's
// --debug flag. It exists purely as a development aid; nothing in the
// analysis passes depends on it.
package debugfmt

import (
	"github.com/kr/pretty"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/symtab"
	"github.com/baleg00/tau/internal/types"
	"github.com/baleg00/tau/internal/typetable"
)

// scopeView is an exported snapshot of a symtab.Scope tree. Scope itself
// keeps its lookup map and insertion-order slice unexported, so there is
// nothing for kr/pretty to walk into directly; this rebuilds the same
// tree shape out of its public accessors (Kind, Symbols, Children).
type scopeView struct {
	Kind     string
	Symbols  []symbolView
	Children []scopeView
}

type symbolView struct {
	Name string
	Decl ast.ID
}

func snapshotScope(s *symtab.Scope) scopeView {
	if s == nil {
		return scopeView{}
	}
	syms := s.Symbols()
	symViews := make([]symbolView, len(syms))
	for i, sym := range syms {
		symViews[i] = symbolView{Name: sym.Name, Decl: sym.Decl}
	}
	children := s.Children()
	childViews := make([]scopeView, len(children))
	for i, c := range children {
		childViews[i] = snapshotScope(c)
	}
	return scopeView{Kind: s.Kind.String(), Symbols: symViews, Children: childViews}
}

// Scope renders s's entire subtree.
func Scope(s *symtab.Scope) string {
	return pretty.Sprint(snapshotScope(s))
}

// Type renders a single interned type descriptor, field by field — every
// concrete descriptor in package types (Primitive, Struct, Opt, ...) keeps
// its fields exported for exactly this purpose.
func Type(t types.Type) string {
	return pretty.Sprint(t)
}

// Types renders a slice of descriptors, e.g. a generic specialization's
// argument list.
func Types(ts []types.Type) string {
	return pretty.Sprint(ts)
}

// tableEntry pairs a node ID with its recorded type for a stable,
// printable view of a typetable.Table — the table itself exposes its
// entries only through Get/Set, keyed by ID one at a time.
type tableEntry struct {
	Node ast.ID
	Type string
}

// TypeTable renders every entry currently recorded in tbl for the given
// node IDs, in the order supplied (callers typically pass declaration IDs
// in source order so the listing reads top-to-bottom like the program).
func TypeTable(tbl *typetable.Table, ids []ast.ID) string {
	entries := make([]tableEntry, 0, len(ids))
	for _, id := range ids {
		if t, ok := tbl.Get(id); ok {
			entries = append(entries, tableEntry{Node: id, Type: t.String()})
		}
	}
	return pretty.Sprint(entries)
}
