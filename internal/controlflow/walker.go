package controlflow

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
	"github.com/baleg00/tau/internal/typetable"
)

// Walker runs the control-flow pass over a program nameres and
// typecheck have already processed. It carries the tiny bit of state
// spec's own description of this pass calls for: the stack of
// enclosing loops (for break/continue targets), the current
// function's declared return type (for missing-return), and nothing
// else — unlike nameres/typecheck it never needs a scope tree of its
// own, since every name it cares about (loop targets) nests
// syntactically rather than lexically.
type Walker struct {
	bag        *diag.Bag
	table      *typetable.Table
	loopStack  []ast.ID
	curReturn  types.Type
	hasReturnT bool
}

// New creates a Walker that reports into bag and reads function return
// types back out of table.
func New(bag *diag.Bag, table *typetable.Table) *Walker {
	return &Walker{bag: bag, table: table}
}

// Walk runs the pass over every declaration in prog.
func (w *Walker) Walk(prog *ast.Program) {
	w.walkDecls(prog.Decls)
}

func (w *Walker) walkDecls(decls []ast.Decl) {
	for _, d := range decls {
		w.walkDecl(d)
	}
}

func (w *Walker) walkDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.ModDecl:
		w.walkDecls(n.Decls)
	case *ast.GenericDecl:
		w.walkDecl(n.Inner)
	case *ast.FunDecl:
		w.walkFunDecl(n)
	}
}

func (w *Walker) walkFunDecl(n *ast.FunDecl) {
	if n.Body == nil {
		return
	}

	prevReturn, prevHas := w.curReturn, w.hasReturnT
	sig, ok := w.table.Get(n.ID())
	if fn, isFun := sig.(*types.Fun); ok && isFun {
		w.curReturn = fn.Return
		w.hasReturnT = true
	} else {
		w.hasReturnT = false
	}

	terminates := w.walkBlock(n.Body)
	if w.hasReturnT && !isUnit(w.curReturn) && !terminates {
		w.bag.Add(diag.Entry{
			Kind:    diag.MissingReturn,
			Message: "function " + n.Name.Value + " does not return a value on every path",
			Primary: n.Tok(),
		})
	}

	w.curReturn, w.hasReturnT = prevReturn, prevHas
}

func isUnit(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return ok && p.Prim == ast.PrimUnit
}

// walkBlock walks every statement of b in order, in a position where
// statements sit directly in a BlockStmt.Statements slot (inBlock
// true for every statement here, by construction). It reports
// unreachable_code for anything after the first statement that is
// itself guaranteed to divert control away from falling through, and
// returns whether the block as a whole is guaranteed to divert control
// that way rather than fall through its end.
func (w *Walker) walkBlock(b *ast.BlockStmt) bool {
	terminated := false
	for _, s := range b.Statements {
		if terminated {
			w.bag.Add(diag.Entry{Kind: diag.UnreachableCode, Message: "unreachable statement", Primary: s.Tok()})
			continue
		}
		if w.walkStmt(s, true) {
			terminated = true
		}
	}
	return terminated
}

// walkStmt visits s and reports break_outside_loop/continue_outside_
// loop/defer_outside_block as it finds them. inBlock is true when s
// sits directly in a BlockStmt's Statements list; it is false for a
// statement reached through a "bare" single-statement slot (IfStmt.Else
// without braces, ForStmt.Init/Post) — defer is only valid in the
// former position. The return value reports whether s is guaranteed to
// divert control away from falling through to the statement after it.
func (w *Walker) walkStmt(s ast.Statement, inBlock bool) bool {
	switch n := s.(type) {
	case *ast.VarDecl:
		return false
	case *ast.ExprStmt:
		return false
	case *ast.BlockStmt:
		return w.walkBlock(n)
	case *ast.IfStmt:
		thenTerm := w.walkBlock(n.Then)
		if n.Else == nil {
			return false
		}
		elseTerm := w.walkStmt(n.Else, false)
		return thenTerm && elseTerm
	case *ast.ForStmt:
		if n.Init != nil {
			w.walkStmt(n.Init, false)
		}
		if n.Post != nil {
			w.walkStmt(n.Post, false)
		}
		w.loopStack = append(w.loopStack, n.ID())
		w.walkBlock(n.Body)
		w.loopStack = w.loopStack[:len(w.loopStack)-1]
		return false
	case *ast.WhileStmt:
		w.loopStack = append(w.loopStack, n.ID())
		w.walkBlock(n.Body)
		w.loopStack = w.loopStack[:len(w.loopStack)-1]
		return false
	case *ast.DoWhileStmt:
		w.loopStack = append(w.loopStack, n.ID())
		bodyTerm := w.walkBlock(n.Body)
		w.loopStack = w.loopStack[:len(w.loopStack)-1]
		// do-while always runs its body at least once, so a body that
		// unconditionally terminates makes the whole loop terminate too.
		return bodyTerm
	case *ast.LoopStmt:
		w.loopStack = append(w.loopStack, n.ID())
		bodyTerm := w.walkLoopBody(n.Body)
		w.loopStack = w.loopStack[:len(w.loopStack)-1]
		// A bare `loop {}` with no break inside only exits via return
		// (or diverges forever), so it terminates fall-through too.
		return !bodyTerm
	case *ast.BreakStmt:
		if len(w.loopStack) == 0 {
			w.bag.Add(diag.Entry{Kind: diag.BreakOutsideLoop, Message: "break outside of a loop", Primary: n.Tok()})
		} else {
			n.Target = w.loopStack[len(w.loopStack)-1]
		}
		return true
	case *ast.ContinueStmt:
		if len(w.loopStack) == 0 {
			w.bag.Add(diag.Entry{Kind: diag.ContinueOutsideLoop, Message: "continue outside of a loop", Primary: n.Tok()})
		} else {
			n.Target = w.loopStack[len(w.loopStack)-1]
		}
		return true
	case *ast.ReturnStmt:
		return true
	case *ast.DeferStmt:
		if !inBlock {
			w.bag.Add(diag.Entry{Kind: diag.DeferOutsideBlock, Message: "defer must be a direct statement of its enclosing block", Primary: n.Tok()})
		}
		return false
	}
	return false
}

// walkLoopBody walks a `loop` body and reports whether any break
// targeting this exact loop is reachable from it, which is what
// decides whether the loop can fall through at all (spec's `loop`
// construct has no condition of its own — the only way out is an
// internal break or an enclosing return).
func (w *Walker) walkLoopBody(b *ast.BlockStmt) bool {
	found := false
	var visit func(ast.Statement)
	visit = func(s ast.Statement) {
		switch n := s.(type) {
		case *ast.BreakStmt:
			found = true
		case *ast.BlockStmt:
			for _, st := range n.Statements {
				visit(st)
			}
		case *ast.IfStmt:
			for _, st := range n.Then.Statements {
				visit(st)
			}
			if n.Else != nil {
				visit(n.Else)
			}
		}
	}
	for _, s := range b.Statements {
		visit(s)
	}
	w.walkBlock(b)
	return found
}
