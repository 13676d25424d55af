package nameres

import (
	"fmt"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/symtab"
	"github.com/baleg00/tau/internal/token"
)

// Resolver runs the name-resolution pass over one program. It owns no
// state beyond the current compilation's registry, diagnostic bag, and
// the map from a composite declaration's ID to the scope it opened —
// needed so a later path segment (`mod.Field`) can look a name up
// inside a sibling declaration's scope instead of the current one.
type Resolver struct {
	reg     *ast.Registry
	bag     *diag.Bag
	scopeOf map[ast.ID]*symtab.Scope
}

// New creates a Resolver that reports into bag and reads nodes back out
// of reg (needed to look up a resolved declaration's own token for
// collision diagnostics, and to check IsPub on wildcard-imported
// members).
func New(reg *ast.Registry, bag *diag.Bag) *Resolver {
	return &Resolver{reg: reg, bag: bag, scopeOf: make(map[ast.ID]*symtab.Scope)}
}

// Resolve binds every identifier and path in prog and returns the root
// scope it built. Each call builds a fresh root scope, so running it
// twice on the same program re-binds every node and reports every
// diagnostic a second time; callers must not call it more than once per
// Registry (spec invariant on pass idempotence is the analysis
// pipeline's responsibility to uphold, not this pass's).
func (r *Resolver) Resolve(prog *ast.Program) *symtab.Scope {
	root := symtab.NewRoot(symtab.KindModule)
	prog.Scope = root
	r.scopeOf[prog.ID()] = root

	r.buildSkeleton(root, prog.Decls)
	r.resolveUses(root, prog.Decls)
	r.resolveBodies(root, prog.Decls)

	return root
}

// buildSkeleton inserts every declaration's name into its owning scope
// and, for composite declarations, opens the child scope they own and
// recurses into their member lists. This runs to completion for the
// whole tree before anything else so that a `use` directive or a
// forward-referencing declaration anywhere in the program can already
// see every name and every nested scope it might need — member types,
// initializers and statement bodies are left untouched here and are
// filled in later by resolveBodies.
func (r *Resolver) buildSkeleton(scope *symtab.Scope, decls []ast.Decl) {
	for _, d := range decls {
		if _, ok := d.(*ast.UseDecl); ok {
			continue
		}
		r.declare(scope, d)
	}

	for _, d := range decls {
		switch n := d.(type) {
		case *ast.StructDecl:
			child := r.openChild(scope, n.ID(), symtab.KindComposite)
			r.buildSkeleton(child, fieldDecls(n.Fields))
		case *ast.UnionDecl:
			child := r.openChild(scope, n.ID(), symtab.KindComposite)
			r.buildSkeleton(child, fieldDecls(n.Fields))
		case *ast.EnumDecl:
			child := r.openChild(scope, n.ID(), symtab.KindComposite)
			r.buildSkeleton(child, enumConstDecls(n.Constants))
		case *ast.ModDecl:
			child := r.openChild(scope, n.ID(), symtab.KindModule)
			r.buildSkeleton(child, n.Decls)
		case *ast.FunDecl:
			child := r.openChild(scope, n.ID(), symtab.KindFunction)
			r.buildSkeleton(child, paramDecls(n.Params))
		case *ast.GenericDecl:
			child := r.openChild(scope, n.ID(), symtab.KindGeneric)
			r.buildSkeleton(child, genericParamDecls(n.Params))
			r.buildSkeleton(child, []ast.Decl{n.Inner})
		}
	}
}

// ResolveDecl binds a single declaration that was not part of the
// program Resolve already walked, using scope as its home — typically
// a fresh child of the root scope Resolve returned, so the new
// declaration's own name cannot collide with one Resolve already
// declared there. Package generics uses this to bind a specialization
// clone against the definition-site scope tree without re-declaring
// every sibling Resolve already bound, which would double-insert them
// and re-report every diagnostic they produced the first time.
func (r *Resolver) ResolveDecl(scope *symtab.Scope, d ast.Decl) {
	decls := []ast.Decl{d}
	r.buildSkeleton(scope, decls)
	r.resolveUses(scope, decls)
	r.resolveBodies(scope, decls)
}

func (r *Resolver) openChild(scope *symtab.Scope, id ast.ID, kind symtab.Kind) *symtab.Scope {
	child := scope.NewChild(kind)
	r.scopeOf[id] = child
	return child
}

// resolveUses applies every `use` directive in decls, then recurses
// into the same composite declarations buildSkeleton opened. It runs
// as its own full pass, after buildSkeleton and before resolveBodies,
// so an import can name any declaration or nested module anywhere in
// the program regardless of where the `use` line sits relative to it.
func (r *Resolver) resolveUses(scope *symtab.Scope, decls []ast.Decl) {
	for _, d := range decls {
		if u, ok := d.(*ast.UseDecl); ok {
			r.applyUse(scope, u)
		}
	}

	for _, d := range decls {
		switch n := d.(type) {
		case *ast.StructDecl:
			r.resolveUses(r.scopeOf[n.ID()], fieldDecls(n.Fields))
		case *ast.UnionDecl:
			r.resolveUses(r.scopeOf[n.ID()], fieldDecls(n.Fields))
		case *ast.EnumDecl:
			r.resolveUses(r.scopeOf[n.ID()], enumConstDecls(n.Constants))
		case *ast.ModDecl:
			r.resolveUses(r.scopeOf[n.ID()], n.Decls)
		case *ast.FunDecl:
			r.resolveUses(r.scopeOf[n.ID()], paramDecls(n.Params))
		case *ast.GenericDecl:
			r.resolveUses(r.scopeOf[n.ID()], genericParamDecls(n.Params))
			r.resolveUses(r.scopeOf[n.ID()], []ast.Decl{n.Inner})
		}
	}
}

// resolveBodies fills in everything buildSkeleton left untouched: field
// and parameter types, initializers, default values, and function
// bodies (which, unlike their enclosing declaration, get strict lexical
// ordering with no hoisting — spec §4.5's Ordering note applies only to
// hoisted declaration scopes, not to the statement list inside one).
func (r *Resolver) resolveBodies(scope *symtab.Scope, decls []ast.Decl) {
	for _, d := range decls {
		r.resolveBody(scope, d)
	}
}

func (r *Resolver) resolveBody(scope *symtab.Scope, d ast.Decl) {
	switch n := d.(type) {
	case *ast.UseDecl:
		// fully handled by resolveUses
	case *ast.VarDecl:
		if n.Type != nil {
			r.resolveTypeExpr(scope, n.Type)
		}
		if n.Init != nil {
			r.resolveExpr(scope, n.Init)
		}
	case *ast.ParamDecl:
		r.resolveTypeExpr(scope, n.Type)
		if n.Default != nil {
			r.resolveExpr(scope, n.Default)
		}
	case *ast.FieldDecl:
		r.resolveTypeExpr(scope, n.Type)
	case *ast.EnumConstantDecl:
		if n.Value != nil {
			r.resolveExpr(scope, n.Value)
		}
	case *ast.StructDecl:
		r.resolveBodies(r.scopeOf[n.ID()], fieldDecls(n.Fields))
	case *ast.UnionDecl:
		r.resolveBodies(r.scopeOf[n.ID()], fieldDecls(n.Fields))
	case *ast.EnumDecl:
		r.resolveBodies(r.scopeOf[n.ID()], enumConstDecls(n.Constants))
	case *ast.ModDecl:
		r.resolveBodies(r.scopeOf[n.ID()], n.Decls)
	case *ast.FunDecl:
		fnScope := r.scopeOf[n.ID()]
		r.resolveBodies(fnScope, paramDecls(n.Params))
		if n.ReturnType != nil {
			r.resolveTypeExpr(fnScope, n.ReturnType)
		}
		if n.Body != nil {
			r.resolveBlock(fnScope, n.Body)
		}
	case *ast.GenericParamDecl:
		if n.ConstraintType != nil {
			r.resolveTypeExpr(scope, n.ConstraintType)
		}
	case *ast.GenericDecl:
		genScope := r.scopeOf[n.ID()]
		r.resolveBodies(genScope, genericParamDecls(n.Params))
		r.resolveBody(genScope, n.Inner)
	}
}

// declare inserts d's own name into scope, reporting a collision
// against whatever declaration already holds that name.
func (r *Resolver) declare(scope *symtab.Scope, d ast.Decl) {
	name := d.DeclName()
	sym := &symtab.Symbol{Name: name.Value, Decl: d.ID()}
	if prior := scope.Insert(sym); prior != nil {
		r.bag.Add(diag.Entry{
			Kind:      diag.SymbolCollision,
			Message:   fmt.Sprintf("%q is already declared in this scope", name.Value),
			Primary:   name.Tok(),
			Secondary: []token.Token{r.tokOf(prior.Decl)},
		})
	}
}

// tokOf returns the token of the node id names, or a zero Token if id
// is unset or dangling — callers only use this for diagnostic context,
// never for correctness, so a zero Token degrades to an unlocated
// secondary reference rather than a panic.
func (r *Resolver) tokOf(id ast.ID) token.Token {
	if n := r.reg.Get(id); n != nil {
		return n.Tok()
	}
	return token.Token{}
}

func fieldDecls(fields []*ast.FieldDecl) []ast.Decl {
	out := make([]ast.Decl, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func enumConstDecls(consts []*ast.EnumConstantDecl) []ast.Decl {
	out := make([]ast.Decl, len(consts))
	for i, c := range consts {
		out[i] = c
	}
	return out
}

func paramDecls(params []*ast.ParamDecl) []ast.Decl {
	out := make([]ast.Decl, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

func genericParamDecls(params []*ast.GenericParamDecl) []ast.Decl {
	out := make([]ast.Decl, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}
