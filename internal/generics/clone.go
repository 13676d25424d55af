package generics

import "github.com/baleg00/tau/internal/ast"

// cloner deep-copies the AST subtree under a GenericDecl.Inner so each
// specialization gets its own declaration, param, field, statement and
// expression nodes with fresh IDs and annotation slots — per spec, clones
// share token references with the original but never its resolved-decl,
// type-index or codegen slots, since those belong to this specific
// instantiation alone.
type cloner struct {
	reg *ast.Registry

	// subst maps a generic parameter's name to the concrete argument node
	// bound to it for this specialization: a TypeExpr for a
	// GenericParamType parameter, an Expression for a GenericParamConst
	// one. Every Identifier or single-segment DeclRefType the cloner
	// walks that names one of these keys is replaced by a fresh clone of
	// the bound argument instead of a clone of the generic-parameter
	// reference itself.
	subst map[string]ast.Node
}

func newCloner(reg *ast.Registry) *cloner {
	return &cloner{reg: reg}
}

// cloneInner clones a GenericDecl's wrapped declaration: a FunDecl,
// StructDecl, or UnionDecl (the only three kinds the AST's own doc comment
// allows there).
func (c *cloner) cloneInner(d ast.Decl) ast.Decl {
	switch n := d.(type) {
	case *ast.FunDecl:
		return c.cloneFunDecl(n)
	case *ast.StructDecl:
		return c.cloneStructDecl(n)
	case *ast.UnionDecl:
		return c.cloneUnionDecl(n)
	default:
		return d
	}
}

func (c *cloner) cloneIdent(n *ast.Identifier) *ast.Identifier {
	if n == nil {
		return nil
	}
	return ast.NewIdentifier(c.reg, n.Tok(), n.Value)
}

func (c *cloner) cloneFunDecl(n *ast.FunDecl) *ast.FunDecl {
	params := make([]*ast.ParamDecl, len(n.Params))
	for i, p := range n.Params {
		params[i] = c.cloneParamDecl(p)
	}
	var ret ast.TypeExpr
	if n.ReturnType != nil {
		ret = c.cloneType(n.ReturnType)
	}
	var body *ast.BlockStmt
	if n.Body != nil {
		body = c.cloneBlock(n.Body)
	}
	return ast.NewFunDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), params, n.Variadic, ret, body, n.Pub)
}

func (c *cloner) cloneParamDecl(n *ast.ParamDecl) *ast.ParamDecl {
	var def ast.Expression
	if n.Default != nil {
		def = c.cloneExpr(n.Default)
	}
	return ast.NewParamDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), c.cloneType(n.Type), def, n.Mut)
}

func (c *cloner) cloneFieldDecl(n *ast.FieldDecl) *ast.FieldDecl {
	return ast.NewFieldDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), c.cloneType(n.Type), n.Pub)
}

func (c *cloner) cloneStructDecl(n *ast.StructDecl) *ast.StructDecl {
	fields := make([]*ast.FieldDecl, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = c.cloneFieldDecl(f)
	}
	return ast.NewStructDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), fields, n.Pub)
}

func (c *cloner) cloneUnionDecl(n *ast.UnionDecl) *ast.UnionDecl {
	fields := make([]*ast.FieldDecl, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = c.cloneFieldDecl(f)
	}
	return ast.NewUnionDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), fields, n.Pub)
}

func (c *cloner) cloneBlock(n *ast.BlockStmt) *ast.BlockStmt {
	stmts := make([]ast.Statement, len(n.Statements))
	for i, s := range n.Statements {
		stmts[i] = c.cloneStmt(s)
	}
	return ast.NewBlockStmt(c.reg, n.Tok(), stmts)
}

func (c *cloner) cloneStmt(s ast.Statement) ast.Statement {
	switch n := s.(type) {
	case *ast.VarDecl:
		var typ ast.TypeExpr
		if n.Type != nil {
			typ = c.cloneType(n.Type)
		}
		var init ast.Expression
		if n.Init != nil {
			init = c.cloneExpr(n.Init)
		}
		return ast.NewVarDecl(c.reg, n.Tok(), c.cloneIdent(n.Name), typ, init, n.Mut, n.Pub)
	case *ast.ExprStmt:
		return ast.NewExprStmt(c.reg, n.Tok(), c.cloneExpr(n.Expr))
	case *ast.BlockStmt:
		return c.cloneBlock(n)
	case *ast.IfStmt:
		var els ast.Statement
		if n.Else != nil {
			els = c.cloneStmt(n.Else)
		}
		return ast.NewIfStmt(c.reg, n.Tok(), c.cloneExpr(n.Cond), c.cloneBlock(n.Then), els)
	case *ast.ForStmt:
		var init, post ast.Statement
		if n.Init != nil {
			init = c.cloneStmt(n.Init)
		}
		if n.Post != nil {
			post = c.cloneStmt(n.Post)
		}
		var cond ast.Expression
		if n.Cond != nil {
			cond = c.cloneExpr(n.Cond)
		}
		return ast.NewForStmt(c.reg, n.Tok(), init, cond, post, c.cloneBlock(n.Body))
	case *ast.WhileStmt:
		return ast.NewWhileStmt(c.reg, n.Tok(), c.cloneExpr(n.Cond), c.cloneBlock(n.Body))
	case *ast.DoWhileStmt:
		return ast.NewDoWhileStmt(c.reg, n.Tok(), c.cloneBlock(n.Body), c.cloneExpr(n.Cond))
	case *ast.LoopStmt:
		return ast.NewLoopStmt(c.reg, n.Tok(), c.cloneBlock(n.Body))
	case *ast.BreakStmt:
		return ast.NewBreakStmt(c.reg, n.Tok())
	case *ast.ContinueStmt:
		return ast.NewContinueStmt(c.reg, n.Tok())
	case *ast.ReturnStmt:
		var val ast.Expression
		if n.Value != nil {
			val = c.cloneExpr(n.Value)
		}
		return ast.NewReturnStmt(c.reg, n.Tok(), val)
	case *ast.DeferStmt:
		return ast.NewDeferStmt(c.reg, n.Tok(), c.cloneExpr(n.Call))
	default:
		// Declarations nested inside a function body (struct/union/enum/
		// fun/mod/generic locals) are not part of spec's surface for Tau
		// function bodies; cloning them verbatim would share their IDs
		// across every specialization, which is never correct, but no
		// retrieved grammar allows them here in the first place.
		return s
	}
}

func (c *cloner) cloneExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.Identifier:
		if bound, ok := c.subst[n.Value]; ok {
			if be, isExpr := bound.(ast.Expression); isExpr {
				return c.cloneExpr(be)
			}
		}
		return c.cloneIdent(n)
	case *ast.IntLit:
		return ast.NewIntLit(c.reg, n.Tok(), n.Value)
	case *ast.FloatLit:
		return ast.NewFloatLit(c.reg, n.Tok(), n.Value)
	case *ast.StringLit:
		return ast.NewStringLit(c.reg, n.Tok(), n.Value)
	case *ast.CharLit:
		return ast.NewCharLit(c.reg, n.Tok(), n.Value)
	case *ast.BoolLit:
		return ast.NewBoolLit(c.reg, n.Tok(), n.Value)
	case *ast.NullLit:
		return ast.NewNullLit(c.reg, n.Tok())
	case *ast.VecLit:
		elems := make([]ast.Expression, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = c.cloneExpr(el)
		}
		return ast.NewVecLit(c.reg, n.Tok(), elems)
	case *ast.MatLit:
		rows := make([][]ast.Expression, len(n.Rows))
		for i, row := range n.Rows {
			r := make([]ast.Expression, len(row))
			for j, el := range row {
				r[j] = c.cloneExpr(el)
			}
			rows[i] = r
		}
		return ast.NewMatLit(c.reg, n.Tok(), rows)
	case *ast.UnaryExpr:
		return ast.NewUnaryExpr(c.reg, n.Tok(), n.Op, c.cloneExpr(n.Operand), n.Postfix)
	case *ast.BinaryExpr:
		return ast.NewBinaryExpr(c.reg, n.Tok(), n.Op, c.cloneExpr(n.Left), c.cloneExpr(n.Right))
	case *ast.CallExpr:
		args := make([]ast.Expression, len(n.Args))
		for i, a := range n.Args {
			args[i] = c.cloneExpr(a)
		}
		return ast.NewCallExpr(c.reg, n.Tok(), c.cloneExpr(n.Callee), args)
	case *ast.SpecExpr:
		args := make([]ast.Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = c.cloneNode(a)
		}
		return ast.NewSpecExpr(c.reg, n.Tok(), c.cloneExpr(n.Callee), args)
	case *ast.SizeofExpr:
		return ast.NewSizeofExpr(c.reg, n.Tok(), c.cloneNode(n.Operand))
	case *ast.AlignofExpr:
		return ast.NewAlignofExpr(c.reg, n.Tok(), c.cloneNode(n.Operand))
	default:
		return e
	}
}

// cloneNode clones an ast.Node that is statically known to be either a
// TypeExpr or an Expression (SpecExpr/SizeofExpr/AlignofExpr operands).
func (c *cloner) cloneNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case ast.TypeExpr:
		return c.cloneType(v)
	case ast.Expression:
		return c.cloneExpr(v)
	default:
		return n
	}
}

func (c *cloner) cloneType(t ast.TypeExpr) ast.TypeExpr {
	switch n := t.(type) {
	case *ast.PrimType:
		return ast.NewPrimType(c.reg, n.Tok(), n.Prim)
	case *ast.PtrType:
		return ast.NewPtrType(c.reg, n.Tok(), c.cloneType(n.Base))
	case *ast.RefType:
		return ast.NewRefType(c.reg, n.Tok(), c.cloneType(n.Base))
	case *ast.MutType:
		return ast.NewMutType(c.reg, n.Tok(), c.cloneType(n.Base))
	case *ast.OptType:
		return ast.NewOptType(c.reg, n.Tok(), c.cloneType(n.Base))
	case *ast.ArrayType:
		return ast.NewArrayType(c.reg, n.Tok(), c.cloneType(n.Base), c.cloneExpr(n.Size))
	case *ast.VecType:
		return ast.NewVecType(c.reg, n.Tok(), c.cloneType(n.Base), c.cloneExpr(n.Size))
	case *ast.MatType:
		return ast.NewMatType(c.reg, n.Tok(), c.cloneType(n.Base), c.cloneExpr(n.Rows), c.cloneExpr(n.Cols))
	case *ast.FunType:
		params := make([]ast.TypeExpr, len(n.Params))
		for i, p := range n.Params {
			params[i] = c.cloneType(p)
		}
		var ret ast.TypeExpr
		if n.Return != nil {
			ret = c.cloneType(n.Return)
		}
		return ast.NewFunType(c.reg, n.Tok(), params, ret)
	case *ast.MemberType:
		return ast.NewMemberType(c.reg, n.Tok(), c.cloneType(n.Base), c.cloneIdent(n.Member))
	case *ast.DeclRefType:
		if seg, isSeg := n.Path.(*ast.PathSegment); isSeg {
			if bound, ok := c.subst[seg.Name.Value]; ok {
				if bt, isType := bound.(ast.TypeExpr); isType {
					return c.cloneType(bt)
				}
			}
		}
		return ast.NewDeclRefType(c.reg, n.Tok(), c.clonePath(n.Path))
	case *ast.GenericSpecType:
		args := make([]ast.Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = c.cloneNode(a)
		}
		return ast.NewGenericSpecType(c.reg, n.Tok(), c.cloneType(n.Base), args)
	default:
		return t
	}
}

func (c *cloner) clonePath(p ast.PathNode) ast.PathNode {
	switch n := p.(type) {
	case *ast.PathSegment:
		return ast.NewPathSegment(c.reg, n.Tok(), c.cloneIdent(n.Name))
	case *ast.PathAccess:
		return ast.NewPathAccess(c.reg, n.Tok(), c.clonePath(n.Lhs), c.clonePath(n.Rhs))
	case *ast.PathAlias:
		return ast.NewPathAlias(c.reg, n.Tok(), c.clonePath(n.Inner), c.cloneIdent(n.Alias))
	case *ast.PathWildcard:
		return ast.NewPathWildcard(c.reg, n.Tok(), c.clonePath(n.Base))
	case *ast.PathList:
		var root ast.PathNode
		if n.Root != nil {
			root = c.clonePath(n.Root)
		}
		paths := make([]ast.PathNode, len(n.Paths))
		for i, sub := range n.Paths {
			paths[i] = c.clonePath(sub)
		}
		return ast.NewPathList(c.reg, n.Tok(), root, paths)
	default:
		return p
	}
}
