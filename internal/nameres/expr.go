package nameres

import (
	"fmt"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/symtab"
)

// resolveBlock opens a fresh block scope under parent and resolves
// statements in strict lexical order: no hoisting, so a `var` is only
// visible to statements after it (spec §4.5 Ordering).
func (r *Resolver) resolveBlock(parent *symtab.Scope, block *ast.BlockStmt) {
	scope := parent.NewChild(symtab.KindBlock)
	for _, stmt := range block.Statements {
		r.resolveStmt(scope, stmt)
	}
}

func (r *Resolver) resolveStmt(scope *symtab.Scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		r.declare(scope, s)
		if s.Type != nil {
			r.resolveTypeExpr(scope, s.Type)
		}
		if s.Init != nil {
			r.resolveExpr(scope, s.Init)
		}
	case *ast.ExprStmt:
		r.resolveExpr(scope, s.Expr)
	case *ast.BlockStmt:
		r.resolveBlock(scope, s)
	case *ast.IfStmt:
		r.resolveExpr(scope, s.Cond)
		r.resolveBlock(scope, s.Then)
		if s.Else != nil {
			r.resolveStmt(scope, s.Else)
		}
	case *ast.ForStmt:
		loop := scope.NewChild(symtab.KindBlock)
		if s.Init != nil {
			r.resolveStmt(loop, s.Init)
		}
		if s.Cond != nil {
			r.resolveExpr(loop, s.Cond)
		}
		if s.Post != nil {
			r.resolveStmt(loop, s.Post)
		}
		r.resolveBlock(loop, s.Body)
	case *ast.WhileStmt:
		r.resolveExpr(scope, s.Cond)
		r.resolveBlock(scope, s.Body)
	case *ast.DoWhileStmt:
		r.resolveBlock(scope, s.Body)
		r.resolveExpr(scope, s.Cond)
	case *ast.LoopStmt:
		r.resolveBlock(scope, s.Body)
	case *ast.BreakStmt, *ast.ContinueStmt:
		// Target is filled in by the control-flow pass, not nameres.
	case *ast.ReturnStmt:
		if s.Value != nil {
			r.resolveExpr(scope, s.Value)
		}
	case *ast.DeferStmt:
		r.resolveExpr(scope, s.Call)
	}
}

func (r *Resolver) resolveExpr(scope *symtab.Scope, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if sym, ok := scope.Lookup(e.Value); ok {
			e.SetResolvedDecl(sym.Decl)
		} else {
			r.bag.Add(diag.Entry{
				Kind:    diag.UndefinedSymbol,
				Message: fmt.Sprintf("undefined symbol %q", e.Value),
				Primary: e.Tok(),
			})
			// Left unresolved (ResolvedDecl stays InvalidID): typecheck
			// treats a node with no resolved declaration as poisoned
			// rather than this pass splicing in a *ast.Poison node,
			// since an Expression field here is not an addressable
			// slot this visitor could overwrite in place.
		}
	case *ast.VecLit:
		for _, el := range e.Elements {
			r.resolveExpr(scope, el)
		}
	case *ast.MatLit:
		for _, row := range e.Rows {
			for _, el := range row {
				r.resolveExpr(scope, el)
			}
		}
	case *ast.UnaryExpr:
		r.resolveExpr(scope, e.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(scope, e.Left)
		if e.Op == ast.BinAccess {
			// `a.m`: member names live in a's *type*, not in any
			// lexical scope, so the right side is left for typecheck
			// to resolve once a's type is known (spec §4.6).
			return
		}
		r.resolveExpr(scope, e.Right)
	case *ast.CallExpr:
		r.resolveExpr(scope, e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(scope, a)
		}
	case *ast.SpecExpr:
		r.resolveExpr(scope, e.Callee)
		for _, a := range e.Args {
			r.resolveNode(scope, a)
		}
	case *ast.SizeofExpr:
		r.resolveNode(scope, e.Operand)
	case *ast.AlignofExpr:
		r.resolveNode(scope, e.Operand)
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.CharLit, *ast.BoolLit, *ast.NullLit, *ast.Poison:
		// leaves, nothing to resolve
	}
}

// resolveNode dispatches a generic Node (used for sizeof/alignof
// operands and generic-spec arguments, which may be either an
// Expression or a TypeExpr) to the matching resolver.
func (r *Resolver) resolveNode(scope *symtab.Scope, n ast.Node) {
	switch v := n.(type) {
	case ast.TypeExpr:
		r.resolveTypeExpr(scope, v)
	case ast.Expression:
		r.resolveExpr(scope, v)
	}
}
