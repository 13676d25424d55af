package nameres

import (
	"fmt"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/symtab"
	"github.com/baleg00/tau/internal/token"
)

// resolveSegment looks seg up in scope — climbing the parent chain
// when local is false, staying within scope alone when local is true —
// and records the result on both the segment and its inner identifier.
func (r *Resolver) resolveSegment(scope *symtab.Scope, seg *ast.PathSegment, local bool) (ast.ID, *symtab.Scope, bool) {
	var sym *symtab.Symbol
	var ok bool
	if local {
		sym, ok = scope.Get(seg.Name.Value)
	} else {
		sym, ok = scope.Lookup(seg.Name.Value)
	}
	if !ok {
		r.undefinedPath(seg.Tok(), seg.Name.Value)
		return ast.InvalidID, nil, false
	}
	seg.SetResolvedDecl(sym.Decl)
	seg.Name.SetResolvedDecl(sym.Decl)
	return sym.Decl, r.scopeOf[sym.Decl], true
}

// resolvePathNode walks p left to right, resolving the first segment
// against scope (local or hierarchical, per local) and every following
// access's right side strictly within the left side's own declaration
// scope (spec §4.5: "each subsequent segment looks up locally in the
// previous segment's declaration scope"). It returns the final
// declaration's ID and, if that declaration owns a nested scope
// (struct, union, enum, mod), that scope too.
func (r *Resolver) resolvePathNode(scope *symtab.Scope, p ast.PathNode, local bool) (ast.ID, *symtab.Scope, bool) {
	switch n := p.(type) {
	case *ast.PathSegment:
		return r.resolveSegment(scope, n, local)
	case *ast.PathAccess:
		_, lhsScope, ok := r.resolvePathNode(scope, n.Lhs, local)
		if !ok {
			return ast.InvalidID, nil, false
		}
		if lhsScope == nil {
			r.bag.Add(diag.Entry{
				Kind:    diag.WildcardOnNonScope,
				Message: fmt.Sprintf("%q has no nested members to access", n.Lhs.String()),
				Primary: n.Tok(),
			})
			return ast.InvalidID, nil, false
		}
		id, scp, ok := r.resolvePathNode(lhsScope, n.Rhs, true)
		if ok {
			n.SetResolvedDecl(id)
		}
		return id, scp, ok
	default:
		// Alias/wildcard/list only make sense directly under a `use`
		// directive, handled separately by applyUse/importPath.
		return ast.InvalidID, nil, false
	}
}

func (r *Resolver) undefinedPath(tok token.Token, name string) {
	r.bag.Add(diag.Entry{
		Kind:    diag.UsePathNotFound,
		Message: fmt.Sprintf("undefined path segment %q", name),
		Primary: tok,
	})
}

// applyUse imports whatever d.Path names into scope — the scope the
// `use` directive itself appears in.
func (r *Resolver) applyUse(scope *symtab.Scope, d *ast.UseDecl) {
	r.importPath(scope, scope, d.Path, false)
}

// importPath binds one or more names into dst from p, looked up
// starting at lookupScope. local mirrors resolvePathNode's meaning:
// false for the outermost segment of a `use` path, true once inside a
// PathList's shared root (spec §4.5: plain path, alias, wildcard, and
// list import forms).
func (r *Resolver) importPath(lookupScope, dst *symtab.Scope, p ast.PathNode, local bool) {
	switch n := p.(type) {
	case *ast.PathSegment:
		id, _, ok := r.resolveSegment(lookupScope, n, local)
		if !ok {
			return
		}
		r.importOne(dst, n.Name.Value, id, n.Tok())
	case *ast.PathAccess:
		id, _, ok := r.resolvePathNode(lookupScope, n, local)
		if !ok {
			return
		}
		r.importOne(dst, tailName(n.Rhs), id, n.Tok())
	case *ast.PathAlias:
		id, _, ok := r.resolvePathNode(lookupScope, n.Inner, local)
		if !ok {
			return
		}
		r.importOne(dst, n.Alias.Value, id, n.Tok())
	case *ast.PathWildcard:
		_, scp, ok := r.resolvePathNode(lookupScope, n.Base, local)
		if !ok {
			return
		}
		if scp == nil {
			r.bag.Add(diag.Entry{
				Kind:    diag.WildcardOnNonScope,
				Message: fmt.Sprintf("%q has no members to import", n.Base.String()),
				Primary: n.Tok(),
			})
			return
		}
		for _, sym := range scp.Symbols() {
			if decl, ok := r.reg.Get(sym.Decl).(ast.Decl); ok && !decl.IsPub() {
				continue
			}
			r.importOne(dst, sym.Name, sym.Decl, n.Tok())
		}
	case *ast.PathList:
		if n.Root != nil {
			_, rootScope, ok := r.resolvePathNode(lookupScope, n.Root, local)
			if !ok {
				return
			}
			if rootScope == nil {
				r.bag.Add(diag.Entry{
					Kind:    diag.WildcardOnNonScope,
					Message: fmt.Sprintf("%q has no members to import", n.Root.String()),
					Primary: n.Tok(),
				})
				return
			}
			for _, sub := range n.Paths {
				r.importPath(rootScope, dst, sub, true)
			}
		} else {
			for _, sub := range n.Paths {
				r.importPath(lookupScope, dst, sub, local)
			}
		}
	}
}

func (r *Resolver) importOne(dst *symtab.Scope, name string, id ast.ID, tok token.Token) {
	sym := &symtab.Symbol{Name: name, Decl: id}
	if prior := dst.Insert(sym); prior != nil {
		r.bag.Add(diag.Entry{
			Kind:      diag.SymbolCollision,
			Message:   fmt.Sprintf("import of %q collides with an existing declaration", name),
			Primary:   tok,
			Secondary: []token.Token{r.tokOf(prior.Decl)},
		})
	}
}

// tailName picks the binding name a plain (non-aliased) import uses:
// the last segment of the path.
func tailName(p ast.PathNode) string {
	switch n := p.(type) {
	case *ast.PathSegment:
		return n.Name.Value
	case *ast.PathAccess:
		return tailName(n.Rhs)
	case *ast.PathAlias:
		return n.Alias.Value
	default:
		return p.String()
	}
}
