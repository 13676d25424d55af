// Package generics implements generic-declaration specialization (spec
// §4.8): binding a GenericDecl's parameters to concrete arguments,
// cloning its inner declaration with every parameter reference
// substituted for the bound argument, running nameres and typecheck
// over the clone, and memoizing the result keyed by (declaration,
// canonical argument tuple) so repeated specializations with the same
// arguments are free.
package generics

import (
	"strconv"
	"strings"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/nameres"
	"github.com/baleg00/tau/internal/symtab"
	"github.com/baleg00/tau/internal/typecheck"
	"github.com/baleg00/tau/internal/types"
)

// Instantiator implements typecheck.Instantiator.
type Instantiator struct {
	reg     *ast.Registry
	bag     *diag.Bag
	builder *types.Builder

	// resolver, root, and checker are the very collaborators driving the
	// whole compilation, handed over once every other top-level
	// declaration is already bound and signed. A specialization clone
	// extends their state — its own scope, its own table entries — it
	// never asks either pass to redo another declaration's work, which
	// is what double-inserted every sibling and re-reported its
	// diagnostics a second time.
	resolver *nameres.Resolver
	root     *symtab.Scope
	checker  *typecheck.Checker

	cache map[string]types.Type

	// pending guards against the re-entrancy a recursive generic causes:
	// resolving or checking one specialization's clone can itself reach
	// a spec expression for the exact same (generic, arguments) pair
	// (e.g. a generic struct whose own field specializes itself), which
	// would recurse into instantiate for the same key before the
	// outermost call ever gets to cache it. A pending key's nested
	// occurrence is harmless to short-circuit to failure — its result is
	// discarded by the caller that re-triggered it; only the outermost
	// call's result (for the clone it built) is ever read back out.
	pending map[string]bool
}

// New creates an Instantiator. SetContext must be called once, before
// the first Instantiate/InstantiateType call.
func New(reg *ast.Registry, bag *diag.Bag, builder *types.Builder) *Instantiator {
	return &Instantiator{reg: reg, bag: bag, builder: builder, cache: make(map[string]types.Type), pending: make(map[string]bool)}
}

// SetContext records the collaborators every specialization clone
// resolves and checks against: resolver and root are the Resolver and
// root scope nameres's main pass already built over the whole program,
// and checker is the Checker driving the whole compilation. An
// Instantiate call can arrive while checker's signature pass is still
// running (a declared type naming a specialization is evaluated there),
// so its table then holds only the signatures registered so far. A clone is resolved
// into a fresh child of root (so its name can never collide with the
// generic it specializes, which root already holds) and then checked
// directly against checker's own table — never a rebuilt copy of
// either, which is what let a clone's name collide with its own
// generic and let every sibling's diagnostics be re-reported per
// specialization.
func (g *Instantiator) SetContext(resolver *nameres.Resolver, root *symtab.Scope, checker *typecheck.Checker) {
	g.resolver = resolver
	g.root = root
	g.checker = checker
}

func (g *Instantiator) Instantiate(spec *ast.SpecExpr, gen *ast.GenericDecl) (types.Type, bool) {
	return g.instantiate(gen, spec.Args)
}

func (g *Instantiator) InstantiateType(spec *ast.GenericSpecType, gen *ast.GenericDecl) (types.Type, bool) {
	return g.instantiate(gen, spec.Args)
}

func (g *Instantiator) instantiate(gen *ast.GenericDecl, args []ast.Node) (types.Type, bool) {
	if len(args) != len(gen.Params) {
		return nil, false
	}

	key, ok := g.canonicalKey(gen, args)
	if !ok {
		return nil, false
	}
	if t, hit := g.cache[key]; hit {
		return t, true
	}
	if g.pending[key] {
		return nil, false
	}
	g.pending[key] = true
	defer delete(g.pending, key)

	subst := make(map[string]ast.Node, len(args))
	for i, p := range gen.Params {
		subst[p.Name.Value] = args[i]
	}

	cl := &cloner{reg: g.reg, subst: subst}
	clone := cl.cloneInner(gen.Inner)

	// defScope is a fresh child of root: clone's own name (identical to
	// gen's, per cloneStructDecl/cloneFunDecl) lands here instead of in
	// root, so it shadows rather than collides with the generic it
	// specializes. Any name the clone's body doesn't itself define —
	// every true sibling — still resolves by climbing from defScope up
	// into the already-built root scope.
	defScope := g.root.NewChild(symtab.KindModule)

	before := len(g.bag.Entries())
	g.resolver.ResolveDecl(defScope, clone)
	g.checker.CheckDecl(clone, ast.InvalidID)

	failed := false
	for _, e := range g.bag.Entries()[before:] {
		if !e.Kind.IsWarning() {
			failed = true
			break
		}
	}
	if failed {
		return nil, false
	}

	t, ok := g.checker.Table().Get(clone.ID())
	if !ok {
		return nil, false
	}

	g.cache[key] = t
	return t, true
}

// canonicalKey builds the memoization key for a (generic, argument
// tuple) pair: a type argument contributes its own syntactic rendering
// (two occurrences of the identical written type always specialize
// identically within one compilation, which is all spec's memoization
// requirement asks for); a constant argument is folded to its integer
// value via the same narrow int-literal rule typecheck's own array/vec
// size folding uses, since a specialization argument — unlike a local
// array size — must be self-contained at the definition site and can
// never reach a call-site-only local to fold through.
func (g *Instantiator) canonicalKey(gen *ast.GenericDecl, args []ast.Node) (string, bool) {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(gen.ID())))
	for i, p := range gen.Params {
		sb.WriteByte('|')
		switch p.ParamKind {
		case ast.GenericParamType:
			te, ok := args[i].(ast.TypeExpr)
			if !ok {
				return "", false
			}
			sb.WriteString(te.String())
		case ast.GenericParamConst:
			ex, ok := args[i].(ast.Expression)
			if !ok {
				return "", false
			}
			v, ok := foldConstInt(ex)
			if !ok {
				g.bag.Add(diag.Entry{
					Kind:    diag.ExpectedInteger,
					Message: "generic constant argument must be a foldable integer literal",
					Primary: ex.Tok(),
				})
				return "", false
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
	}
	return sb.String(), true
}

// foldConstInt recognizes the same narrow integer-literal shapes
// typecheck's own array/vec/mat size folding does: a bare IntLit, or a
// unary-minus IntLit.
func foldConstInt(e ast.Expression) (int64, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return n.Value, true
	case *ast.UnaryExpr:
		if n.Op == ast.UnaryNeg {
			if lit, ok := n.Operand.(*ast.IntLit); ok {
				return -lit.Value, true
			}
		}
	}
	return 0, false
}
