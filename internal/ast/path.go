package ast

import (
	"strings"

	"github.com/baleg00/tau/internal/token"
)

// PathSegment is one bare name in a path (`foo` in `foo.bar`).
type PathSegment struct {
	base
	Name *Identifier
}

func (p *PathSegment) pathNode()     {}
func (p *PathSegment) Kind() Kind    { return KindPathSegment }
func (p *PathSegment) String() string { return p.Name.String() }

func NewPathSegment(r *Registry, tok token.Token, name *Identifier) *PathSegment {
	return alloc(r, func(id ID) *PathSegment { return &PathSegment{base: newBase(id, tok), Name: name} })
}

// PathAccess is `Lhs.Rhs`: Rhs is looked up within the scope Lhs's
// resolved declaration owns (spec §4.5).
type PathAccess struct {
	base
	Lhs PathNode
	Rhs PathNode
}

func (p *PathAccess) pathNode()     {}
func (p *PathAccess) Kind() Kind    { return KindPathAccess }
func (p *PathAccess) String() string { return p.Lhs.String() + "." + p.Rhs.String() }

func NewPathAccess(r *Registry, tok token.Token, lhs, rhs PathNode) *PathAccess {
	return alloc(r, func(id ID) *PathAccess { return &PathAccess{base: newBase(id, tok), Lhs: lhs, Rhs: rhs} })
}

// PathAlias renames Inner to Alias for the purposes of a `use` import.
type PathAlias struct {
	base
	Inner PathNode
	Alias *Identifier
}

func (p *PathAlias) pathNode()     {}
func (p *PathAlias) Kind() Kind    { return KindPathAlias }
func (p *PathAlias) String() string { return p.Inner.String() + " as " + p.Alias.String() }

func NewPathAlias(r *Registry, tok token.Token, inner PathNode, alias *Identifier) *PathAlias {
	return alloc(r, func(id ID) *PathAlias { return &PathAlias{base: newBase(id, tok), Inner: inner, Alias: alias} })
}

// PathWildcard imports every public member of Base's scope.
type PathWildcard struct {
	base
	Base PathNode
}

func (p *PathWildcard) pathNode()     {}
func (p *PathWildcard) Kind() Kind    { return KindPathWildcard }
func (p *PathWildcard) String() string { return p.Base.String() + ".*" }

func NewPathWildcard(r *Registry, tok token.Token, base_ PathNode) *PathWildcard {
	return alloc(r, func(id ID) *PathWildcard { return &PathWildcard{base: newBase(id, tok), Base: base_} })
}

// PathList expands into independent imports sharing a common root prefix
// (`use mod.{a, b, c}`).
type PathList struct {
	base
	Root  PathNode // nil for a list of fully independent paths
	Paths []PathNode
}

func (p *PathList) pathNode()  {}
func (p *PathList) Kind() Kind { return KindPathList }
func (p *PathList) String() string {
	parts := make([]string, len(p.Paths))
	for i, sub := range p.Paths {
		parts[i] = sub.String()
	}
	prefix := ""
	if p.Root != nil {
		prefix = p.Root.String() + "."
	}
	return prefix + "{" + strings.Join(parts, ", ") + "}"
}

func NewPathList(r *Registry, tok token.Token, root PathNode, paths []PathNode) *PathList {
	return alloc(r, func(id ID) *PathList { return &PathList{base: newBase(id, tok), Root: root, Paths: paths} })
}
