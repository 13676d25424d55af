package ast

import (
	"strings"

	"github.com/baleg00/tau/internal/token"
)

// UseDecl imports symbols named by Path into the scope it appears in
// (spec §4.5). It is a Decl so it can sit in a Program's or ModDecl's
// declaration list, though it never introduces a name of its own — its
// DeclName is the synthetic name of the import target for diagnostics.
type UseDecl struct {
	base
	Path PathNode
}

func (d *UseDecl) stmtNode()  {}
func (d *UseDecl) declNode()  {}
func (d *UseDecl) Kind() Kind { return KindUseDecl }
func (d *UseDecl) DeclName() *Identifier {
	return &Identifier{base: newBase(InvalidID, d.tok), Value: d.Path.String()}
}
func (d *UseDecl) IsPub() bool   { return false }
func (d *UseDecl) String() string { return "use " + d.Path.String() }

func NewUseDecl(r *Registry, tok token.Token, path PathNode) *UseDecl {
	return alloc(r, func(id ID) *UseDecl { return &UseDecl{base: newBase(id, tok), Path: path} })
}

// Program is the root node: the merged declaration list of every source
// file in one compilation, plus the top-level scope nameres builds for it.
// Scope is an opaque slot (type *symtab.Scope) so this package does not
// need to import the symtab package; nameres sets it to the root scope
// it builds, and no other pass reads it.
type Program struct {
	base
	Decls []Decl
	Scope any
}

func (p *Program) Kind() Kind { return KindProgram }
func (p *Program) String() string {
	parts := make([]string, len(p.Decls))
	for i, d := range p.Decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

func NewProgram(r *Registry, tok token.Token, decls []Decl) *Program {
	return alloc(r, func(id ID) *Program { return &Program{base: newBase(id, tok), Decls: decls} })
}

// Poison is the sentinel node substituted for a construct a pass could not
// analyze; any pass encountering a Poison child stops emitting diagnostics
// for that subtree (spec invariant 5).
type Poison struct {
	base
	Reason string
}

func (p *Poison) exprNode()     {}
func (p *Poison) stmtNode()     {}
func (p *Poison) typeNode()     {}
func (p *Poison) pathNode()     {}
func (p *Poison) Kind() Kind    { return KindPoison }
func (p *Poison) String() string { return "<poison:" + p.Reason + ">" }

func NewPoison(r *Registry, tok token.Token, reason string) *Poison {
	return alloc(r, func(id ID) *Poison { return &Poison{base: newBase(id, tok), Reason: reason} })
}
