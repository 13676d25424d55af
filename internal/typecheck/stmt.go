package typecheck

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/diag"
	"github.com/baleg00/tau/internal/types"
)

func (c *Checker) checkBlock(b *ast.BlockStmt) {
	for _, s := range b.Statements {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.VarDecl:
		if n.Type != nil {
			c.setType(n, c.evalTypeExpr(n.Type))
		}
		c.checkVarDeclBody(n)
	case *ast.ExprStmt:
		c.checkExpr(n.Expr)
	case *ast.BlockStmt:
		c.checkBlock(n)
	case *ast.IfStmt:
		ct := c.checkExpr(n.Cond)
		if !types.IsPoison(ct) && !c.isBool(types.RemoveMut(types.RemoveRef(ct))) {
			c.err(diag.ExpectedBool, n.Cond.Tok(), "if condition must be bool")
		}
		c.checkBlock(n.Then)
		if n.Else != nil {
			c.checkStmt(n.Else)
		}
	case *ast.ForStmt:
		if n.Init != nil {
			c.checkStmt(n.Init)
		}
		if n.Cond != nil {
			ct := c.checkExpr(n.Cond)
			if !types.IsPoison(ct) && !c.isBool(types.RemoveMut(types.RemoveRef(ct))) {
				c.err(diag.ExpectedBool, n.Cond.Tok(), "for condition must be bool")
			}
		}
		if n.Post != nil {
			c.checkStmt(n.Post)
		}
		c.checkBlock(n.Body)
	case *ast.WhileStmt:
		ct := c.checkExpr(n.Cond)
		if !types.IsPoison(ct) && !c.isBool(types.RemoveMut(types.RemoveRef(ct))) {
			c.err(diag.ExpectedBool, n.Cond.Tok(), "while condition must be bool")
		}
		c.checkBlock(n.Body)
	case *ast.DoWhileStmt:
		c.checkBlock(n.Body)
		ct := c.checkExpr(n.Cond)
		if !types.IsPoison(ct) && !c.isBool(types.RemoveMut(types.RemoveRef(ct))) {
			c.err(diag.ExpectedBool, n.Cond.Tok(), "do-while condition must be bool")
		}
	case *ast.LoopStmt:
		c.checkBlock(n.Body)
	case *ast.BreakStmt, *ast.ContinueStmt:
		// target validation is control-flow's job, not typecheck's.
	case *ast.ReturnStmt:
		if n.Value == nil {
			if c.curReturn != nil && !c.isUnit(c.curReturn) {
				c.err(diag.TypeMismatch, n.Tok(), "missing return value for non-unit return type %s", c.curReturn)
			}
			return
		}
		vt := c.checkExpr(n.Value)
		if c.curReturn != nil && !types.IsPoison(vt) && !types.ImplicitDirect(vt, c.curReturn) {
			c.err(diag.TypeMismatch, n.Value.Tok(), "return value is not convertible to %s", c.curReturn)
		}
	case *ast.DeferStmt:
		c.checkExpr(n.Call)
	case *ast.Poison:
		// nothing to check.
	}
}
