package astdump

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/token"
)

// Load parses a JSON AST dump (as produced by Dump/DumpCompact) back into
// a live tree rooted at a Program, allocating every node against r. It is
// the inverse half of the round-trip the out-of-scope parser would
// otherwise be needed for: the CLI driver (and the round-trip test) build
// a program this way instead of lexing and parsing source text.
//
// Reconstructed nodes carry synthetic tokens (token.Synthetic) rather than
// real source positions, since positions are deliberately not part of the
// dump format — the round-trip only promises structural equality of kind
// and fields, not annotation slots or source locations.
func Load(r *ast.Registry, data []byte) (*ast.Program, error) {
	root := gjson.ParseBytes(data)
	if !root.Exists() || !root.IsObject() {
		return nil, fmt.Errorf("astdump: input is not a JSON object")
	}
	node, err := loadNode(r, root)
	if err != nil {
		return nil, err
	}
	prog, ok := node.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("astdump: root node has kind %q, want %q", root.Get("kind").String(), ast.KindProgram.String())
	}
	return prog, nil
}

func synthTok(kind string) token.Token {
	return token.Synthetic(token.IDENT, kind)
}

func str(v gjson.Result, field string) string { return v.Get(field).String() }
func boolean(v gjson.Result, field string) bool { return v.Get(field).Bool() }

func loadOpt(r *ast.Registry, v gjson.Result, field string) (ast.Node, error) {
	f := v.Get(field)
	if !f.Exists() || f.Type == gjson.Null {
		return nil, nil
	}
	return loadNode(r, f)
}

func loadChild(r *ast.Registry, v gjson.Result, field string) (ast.Node, error) {
	f := v.Get(field)
	if !f.Exists() || f.Type == gjson.Null {
		return nil, fmt.Errorf("astdump: missing required field %q", field)
	}
	return loadNode(r, f)
}

func loadArray[T any](r *ast.Registry, v gjson.Result, field string, conv func(ast.Node) (T, error)) ([]T, error) {
	items := v.Get(field).Array()
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(items))
	for i, it := range items {
		n, err := loadNode(r, it)
		if err != nil {
			return nil, fmt.Errorf("astdump: %s[%d]: %w", field, i, err)
		}
		t, err := conv(n)
		if err != nil {
			return nil, fmt.Errorf("astdump: %s[%d]: %w", field, i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func asNode(n ast.Node) (ast.Node, error) { return n, nil }

func asDecl(n ast.Node) (ast.Decl, error) {
	d, ok := n.(ast.Decl)
	if !ok {
		return nil, fmt.Errorf("expected a declaration, got %T", n)
	}
	return d, nil
}

func asStatement(n ast.Node) (ast.Statement, error) {
	s, ok := n.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("expected a statement, got %T", n)
	}
	return s, nil
}

func asExpression(n ast.Node) (ast.Expression, error) {
	e, ok := n.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("expected an expression, got %T", n)
	}
	return e, nil
}

func asTypeExpr(n ast.Node) (ast.TypeExpr, error) {
	t, ok := n.(ast.TypeExpr)
	if !ok {
		return nil, fmt.Errorf("expected a type expression, got %T", n)
	}
	return t, nil
}

func asPathNode(n ast.Node) (ast.PathNode, error) {
	p, ok := n.(ast.PathNode)
	if !ok {
		return nil, fmt.Errorf("expected a path node, got %T", n)
	}
	return p, nil
}

func asParamDecl(n ast.Node) (*ast.ParamDecl, error) {
	p, ok := n.(*ast.ParamDecl)
	if !ok {
		return nil, fmt.Errorf("expected a param decl, got %T", n)
	}
	return p, nil
}

func asFieldDecl(n ast.Node) (*ast.FieldDecl, error) {
	f, ok := n.(*ast.FieldDecl)
	if !ok {
		return nil, fmt.Errorf("expected a field decl, got %T", n)
	}
	return f, nil
}

func asEnumConstantDecl(n ast.Node) (*ast.EnumConstantDecl, error) {
	c, ok := n.(*ast.EnumConstantDecl)
	if !ok {
		return nil, fmt.Errorf("expected an enum constant decl, got %T", n)
	}
	return c, nil
}

func asGenericParamDecl(n ast.Node) (*ast.GenericParamDecl, error) {
	p, ok := n.(*ast.GenericParamDecl)
	if !ok {
		return nil, fmt.Errorf("expected a generic param decl, got %T", n)
	}
	return p, nil
}

func asIdentifier(n ast.Node) (*ast.Identifier, error) {
	id, ok := n.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("expected an identifier, got %T", n)
	}
	return id, nil
}

func requireIdentifier(r *ast.Registry, v gjson.Result, field string) (*ast.Identifier, error) {
	n, err := loadChild(r, v, field)
	if err != nil {
		return nil, err
	}
	return asIdentifier(n)
}

var primByName map[string]ast.PrimKind
var unaryOpByName map[string]ast.UnaryOp
var binaryOpByName map[string]ast.BinaryOp

func init() {
	primByName = make(map[string]ast.PrimKind)
	for k := ast.PrimI8; k <= ast.PrimUnit; k++ {
		primByName[k.String()] = k
	}
	unaryOpByName = make(map[string]ast.UnaryOp)
	for op := ast.UnaryPlus; op <= ast.UnaryUnwrap; op++ {
		unaryOpByName[op.String()] = op
	}
	binaryOpByName = make(map[string]ast.BinaryOp)
	for op := ast.BinAdd; op <= ast.BinShrAssign; op++ {
		binaryOpByName[op.String()] = op
	}
}

func loadNode(r *ast.Registry, v gjson.Result) (ast.Node, error) {
	kind := v.Get("kind").String()

	switch kind {

	case "id":
		return ast.NewIdentifier(r, synthTok(kind), str(v, "value")), nil

	case "lit-int":
		return ast.NewIntLit(r, synthTok(kind), v.Get("value").Int()), nil

	case "lit-flt":
		return ast.NewFloatLit(r, synthTok(kind), v.Get("value").Float()), nil

	case "lit-str":
		return ast.NewStringLit(r, synthTok(kind), str(v, "value")), nil

	case "lit-char":
		return ast.NewCharLit(r, synthTok(kind), rune(v.Get("value").Int())), nil

	case "lit-bool":
		return ast.NewBoolLit(r, synthTok(kind), boolean(v, "value")), nil

	case "lit-null":
		return ast.NewNullLit(r, synthTok(kind)), nil

	case "lit-vec":
		elems, err := loadArray(r, v, "elements", asExpression)
		if err != nil {
			return nil, err
		}
		return ast.NewVecLit(r, synthTok(kind), elems), nil

	case "lit-mat":
		rowsJSON := v.Get("rows").Array()
		rows := make([][]ast.Expression, 0, len(rowsJSON))
		for i, rowJSON := range rowsJSON {
			row := make([]ast.Expression, 0, len(rowJSON.Array()))
			for j, el := range rowJSON.Array() {
				n, err := loadNode(r, el)
				if err != nil {
					return nil, fmt.Errorf("astdump: rows[%d][%d]: %w", i, j, err)
				}
				e, err := asExpression(n)
				if err != nil {
					return nil, fmt.Errorf("astdump: rows[%d][%d]: %w", i, j, err)
				}
				row = append(row, e)
			}
			rows = append(rows, row)
		}
		return ast.NewMatLit(r, synthTok(kind), rows), nil

	case "unary-op":
		operand, err := loadChild(r, v, "operand")
		if err != nil {
			return nil, err
		}
		operandExpr, err := asExpression(operand)
		if err != nil {
			return nil, err
		}
		op, ok := unaryOpByName[str(v, "op_kind")]
		if !ok {
			return nil, fmt.Errorf("astdump: unknown unary op %q", str(v, "op_kind"))
		}
		return ast.NewUnaryExpr(r, synthTok(kind), op, operandExpr, boolean(v, "postfix")), nil

	case "binary-op":
		left, err := loadChild(r, v, "left")
		if err != nil {
			return nil, err
		}
		leftExpr, err := asExpression(left)
		if err != nil {
			return nil, err
		}
		right, err := loadChild(r, v, "right")
		if err != nil {
			return nil, err
		}
		rightExpr, err := asExpression(right)
		if err != nil {
			return nil, err
		}
		op, ok := binaryOpByName[str(v, "op_kind")]
		if !ok {
			return nil, fmt.Errorf("astdump: unknown binary op %q", str(v, "op_kind"))
		}
		return ast.NewBinaryExpr(r, synthTok(kind), op, leftExpr, rightExpr), nil

	case "call":
		callee, err := loadChild(r, v, "callee")
		if err != nil {
			return nil, err
		}
		calleeExpr, err := asExpression(callee)
		if err != nil {
			return nil, err
		}
		args, err := loadArray(r, v, "args", asExpression)
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpr(r, synthTok(kind), calleeExpr, args), nil

	case "generic-spec":
		callee, err := loadChild(r, v, "callee")
		if err != nil {
			return nil, err
		}
		calleeExpr, err := asExpression(callee)
		if err != nil {
			return nil, err
		}
		args, err := loadArray(r, v, "args", asNode)
		if err != nil {
			return nil, err
		}
		return ast.NewSpecExpr(r, synthTok(kind), calleeExpr, args), nil

	case "sizeof":
		operand, err := loadChild(r, v, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewSizeofExpr(r, synthTok(kind), operand), nil

	case "alignof":
		operand, err := loadChild(r, v, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewAlignofExpr(r, synthTok(kind), operand), nil

	case "var":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		typeNode, err := loadOpt(r, v, "type")
		if err != nil {
			return nil, err
		}
		var typ ast.TypeExpr
		if typeNode != nil {
			if typ, err = asTypeExpr(typeNode); err != nil {
				return nil, err
			}
		}
		initNode, err := loadOpt(r, v, "init")
		if err != nil {
			return nil, err
		}
		var init ast.Expression
		if initNode != nil {
			if init, err = asExpression(initNode); err != nil {
				return nil, err
			}
		}
		return ast.NewVarDecl(r, synthTok(kind), name, typ, init, boolean(v, "mut"), boolean(v, "pub")), nil

	case "param":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		typeNode, err := loadChild(r, v, "type")
		if err != nil {
			return nil, err
		}
		typ, err := asTypeExpr(typeNode)
		if err != nil {
			return nil, err
		}
		defNode, err := loadOpt(r, v, "default")
		if err != nil {
			return nil, err
		}
		var def ast.Expression
		if defNode != nil {
			if def, err = asExpression(defNode); err != nil {
				return nil, err
			}
		}
		return ast.NewParamDecl(r, synthTok(kind), name, typ, def, boolean(v, "mut")), nil

	case "fun":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		params, err := loadArray(r, v, "params", asParamDecl)
		if err != nil {
			return nil, err
		}
		retNode, err := loadOpt(r, v, "return_type")
		if err != nil {
			return nil, err
		}
		var ret ast.TypeExpr
		if retNode != nil {
			if ret, err = asTypeExpr(retNode); err != nil {
				return nil, err
			}
		}
		bodyNode, err := loadOpt(r, v, "body")
		if err != nil {
			return nil, err
		}
		var body *ast.BlockStmt
		if bodyNode != nil {
			b, ok := bodyNode.(*ast.BlockStmt)
			if !ok {
				return nil, fmt.Errorf("astdump: fun body has kind %T, want *ast.BlockStmt", bodyNode)
			}
			body = b
		}
		return ast.NewFunDecl(r, synthTok(kind), name, params, boolean(v, "variadic"), ret, body, boolean(v, "pub")), nil

	case "field":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		typeNode, err := loadChild(r, v, "type")
		if err != nil {
			return nil, err
		}
		typ, err := asTypeExpr(typeNode)
		if err != nil {
			return nil, err
		}
		return ast.NewFieldDecl(r, synthTok(kind), name, typ, boolean(v, "pub")), nil

	case "struct":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		fields, err := loadArray(r, v, "fields", asFieldDecl)
		if err != nil {
			return nil, err
		}
		return ast.NewStructDecl(r, synthTok(kind), name, fields, boolean(v, "pub")), nil

	case "union":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		fields, err := loadArray(r, v, "fields", asFieldDecl)
		if err != nil {
			return nil, err
		}
		return ast.NewUnionDecl(r, synthTok(kind), name, fields, boolean(v, "pub")), nil

	case "enum-constant":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		valNode, err := loadOpt(r, v, "value")
		if err != nil {
			return nil, err
		}
		var val ast.Expression
		if valNode != nil {
			if val, err = asExpression(valNode); err != nil {
				return nil, err
			}
		}
		return ast.NewEnumConstantDecl(r, synthTok(kind), name, val), nil

	case "enum":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		consts, err := loadArray(r, v, "constants", asEnumConstantDecl)
		if err != nil {
			return nil, err
		}
		return ast.NewEnumDecl(r, synthTok(kind), name, consts, boolean(v, "pub")), nil

	case "mod":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		decls, err := loadArray(r, v, "decls", asDecl)
		if err != nil {
			return nil, err
		}
		return ast.NewModDecl(r, synthTok(kind), name, decls, boolean(v, "pub")), nil

	case "generic-param":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		pk := ast.GenericParamType
		if str(v, "param_kind") == "const" {
			pk = ast.GenericParamConst
		}
		constraintNode, err := loadOpt(r, v, "constraint_type")
		if err != nil {
			return nil, err
		}
		var constraint ast.TypeExpr
		if constraintNode != nil {
			if constraint, err = asTypeExpr(constraintNode); err != nil {
				return nil, err
			}
		}
		return ast.NewGenericParamDecl(r, synthTok(kind), name, pk, constraint), nil

	case "generic":
		params, err := loadArray(r, v, "params", asGenericParamDecl)
		if err != nil {
			return nil, err
		}
		innerNode, err := loadChild(r, v, "inner")
		if err != nil {
			return nil, err
		}
		inner, err := asDecl(innerNode)
		if err != nil {
			return nil, err
		}
		return ast.NewGenericDecl(r, synthTok(kind), params, inner, boolean(v, "pub")), nil

	case "block":
		stmts, err := loadArray(r, v, "statements", asStatement)
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStmt(r, synthTok(kind), stmts), nil

	case "expr":
		exprNode, err := loadChild(r, v, "expr")
		if err != nil {
			return nil, err
		}
		expr, err := asExpression(exprNode)
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(r, synthTok(kind), expr), nil

	case "if":
		condNode, err := loadChild(r, v, "cond")
		if err != nil {
			return nil, err
		}
		cond, err := asExpression(condNode)
		if err != nil {
			return nil, err
		}
		thenNode, err := loadChild(r, v, "then")
		if err != nil {
			return nil, err
		}
		then, ok := thenNode.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("astdump: if-then has kind %T, want *ast.BlockStmt", thenNode)
		}
		elseNode, err := loadOpt(r, v, "else")
		if err != nil {
			return nil, err
		}
		var els ast.Statement
		if elseNode != nil {
			if els, err = asStatement(elseNode); err != nil {
				return nil, err
			}
		}
		return ast.NewIfStmt(r, synthTok(kind), cond, then, els), nil

	case "for":
		initNode, err := loadOpt(r, v, "init")
		if err != nil {
			return nil, err
		}
		var init ast.Statement
		if initNode != nil {
			if init, err = asStatement(initNode); err != nil {
				return nil, err
			}
		}
		condNode, err := loadOpt(r, v, "cond")
		if err != nil {
			return nil, err
		}
		var cond ast.Expression
		if condNode != nil {
			if cond, err = asExpression(condNode); err != nil {
				return nil, err
			}
		}
		postNode, err := loadOpt(r, v, "post")
		if err != nil {
			return nil, err
		}
		var post ast.Statement
		if postNode != nil {
			if post, err = asStatement(postNode); err != nil {
				return nil, err
			}
		}
		bodyNode, err := loadChild(r, v, "body")
		if err != nil {
			return nil, err
		}
		body, ok := bodyNode.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("astdump: for-body has kind %T, want *ast.BlockStmt", bodyNode)
		}
		return ast.NewForStmt(r, synthTok(kind), init, cond, post, body), nil

	case "while":
		condNode, err := loadChild(r, v, "cond")
		if err != nil {
			return nil, err
		}
		cond, err := asExpression(condNode)
		if err != nil {
			return nil, err
		}
		bodyNode, err := loadChild(r, v, "body")
		if err != nil {
			return nil, err
		}
		body, ok := bodyNode.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("astdump: while-body has kind %T, want *ast.BlockStmt", bodyNode)
		}
		return ast.NewWhileStmt(r, synthTok(kind), cond, body), nil

	case "do-while":
		bodyNode, err := loadChild(r, v, "body")
		if err != nil {
			return nil, err
		}
		body, ok := bodyNode.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("astdump: do-while body has kind %T, want *ast.BlockStmt", bodyNode)
		}
		condNode, err := loadChild(r, v, "cond")
		if err != nil {
			return nil, err
		}
		cond, err := asExpression(condNode)
		if err != nil {
			return nil, err
		}
		return ast.NewDoWhileStmt(r, synthTok(kind), body, cond), nil

	case "loop":
		bodyNode, err := loadChild(r, v, "body")
		if err != nil {
			return nil, err
		}
		body, ok := bodyNode.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("astdump: loop body has kind %T, want *ast.BlockStmt", bodyNode)
		}
		return ast.NewLoopStmt(r, synthTok(kind), body), nil

	case "break":
		return ast.NewBreakStmt(r, synthTok(kind)), nil

	case "continue":
		return ast.NewContinueStmt(r, synthTok(kind)), nil

	case "return":
		valNode, err := loadOpt(r, v, "value")
		if err != nil {
			return nil, err
		}
		var val ast.Expression
		if valNode != nil {
			if val, err = asExpression(valNode); err != nil {
				return nil, err
			}
		}
		return ast.NewReturnStmt(r, synthTok(kind), val), nil

	case "defer":
		callNode, err := loadChild(r, v, "call")
		if err != nil {
			return nil, err
		}
		call, err := asExpression(callNode)
		if err != nil {
			return nil, err
		}
		return ast.NewDeferStmt(r, synthTok(kind), call), nil

	case "prim":
		p, ok := primByName[str(v, "prim")]
		if !ok {
			return nil, fmt.Errorf("astdump: unknown primitive kind %q", str(v, "prim"))
		}
		return ast.NewPrimType(r, synthTok(kind), p), nil

	case "ptr":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		return ast.NewPtrType(r, synthTok(kind), baseType), nil

	case "ref":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		return ast.NewRefType(r, synthTok(kind), baseType), nil

	case "mut":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		return ast.NewMutType(r, synthTok(kind), baseType), nil

	case "opt":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		return ast.NewOptType(r, synthTok(kind), baseType), nil

	case "array":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		sizeNode, err := loadChild(r, v, "size")
		if err != nil {
			return nil, err
		}
		size, err := asExpression(sizeNode)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(r, synthTok(kind), baseType, size), nil

	case "vec":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		sizeNode, err := loadChild(r, v, "size")
		if err != nil {
			return nil, err
		}
		size, err := asExpression(sizeNode)
		if err != nil {
			return nil, err
		}
		return ast.NewVecType(r, synthTok(kind), baseType, size), nil

	case "mat":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		rowsNode, err := loadChild(r, v, "rows")
		if err != nil {
			return nil, err
		}
		rows, err := asExpression(rowsNode)
		if err != nil {
			return nil, err
		}
		colsNode, err := loadChild(r, v, "cols")
		if err != nil {
			return nil, err
		}
		cols, err := asExpression(colsNode)
		if err != nil {
			return nil, err
		}
		return ast.NewMatType(r, synthTok(kind), baseType, rows, cols), nil

	case "fun-type":
		params, err := loadArray(r, v, "params", asTypeExpr)
		if err != nil {
			return nil, err
		}
		retNode, err := loadOpt(r, v, "return")
		if err != nil {
			return nil, err
		}
		var ret ast.TypeExpr
		if retNode != nil {
			if ret, err = asTypeExpr(retNode); err != nil {
				return nil, err
			}
		}
		return ast.NewFunType(r, synthTok(kind), params, ret), nil

	case "member":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		member, err := requireIdentifier(r, v, "member")
		if err != nil {
			return nil, err
		}
		return ast.NewMemberType(r, synthTok(kind), baseType, member), nil

	case "decl-ref":
		pathNode, err := loadChild(r, v, "path")
		if err != nil {
			return nil, err
		}
		path, err := asPathNode(pathNode)
		if err != nil {
			return nil, err
		}
		return ast.NewDeclRefType(r, synthTok(kind), path), nil

	case "generic-spec-type":
		base, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		baseType, err := asTypeExpr(base)
		if err != nil {
			return nil, err
		}
		args, err := loadArray(r, v, "args", asNode)
		if err != nil {
			return nil, err
		}
		return ast.NewGenericSpecType(r, synthTok(kind), baseType, args), nil

	case "path-segment":
		name, err := requireIdentifier(r, v, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewPathSegment(r, synthTok(kind), name), nil

	case "path-access":
		lhsNode, err := loadChild(r, v, "lhs")
		if err != nil {
			return nil, err
		}
		lhs, err := asPathNode(lhsNode)
		if err != nil {
			return nil, err
		}
		rhsNode, err := loadChild(r, v, "rhs")
		if err != nil {
			return nil, err
		}
		rhs, err := asPathNode(rhsNode)
		if err != nil {
			return nil, err
		}
		return ast.NewPathAccess(r, synthTok(kind), lhs, rhs), nil

	case "path-alias":
		innerNode, err := loadChild(r, v, "inner")
		if err != nil {
			return nil, err
		}
		inner, err := asPathNode(innerNode)
		if err != nil {
			return nil, err
		}
		alias, err := requireIdentifier(r, v, "alias")
		if err != nil {
			return nil, err
		}
		return ast.NewPathAlias(r, synthTok(kind), inner, alias), nil

	case "path-wildcard":
		baseNode, err := loadChild(r, v, "base")
		if err != nil {
			return nil, err
		}
		base, err := asPathNode(baseNode)
		if err != nil {
			return nil, err
		}
		return ast.NewPathWildcard(r, synthTok(kind), base), nil

	case "path-list":
		rootNode, err := loadOpt(r, v, "root")
		if err != nil {
			return nil, err
		}
		var root ast.PathNode
		if rootNode != nil {
			if root, err = asPathNode(rootNode); err != nil {
				return nil, err
			}
		}
		paths, err := loadArray(r, v, "paths", asPathNode)
		if err != nil {
			return nil, err
		}
		return ast.NewPathList(r, synthTok(kind), root, paths), nil

	case "use":
		pathNode, err := loadChild(r, v, "path")
		if err != nil {
			return nil, err
		}
		path, err := asPathNode(pathNode)
		if err != nil {
			return nil, err
		}
		return ast.NewUseDecl(r, synthTok(kind), path), nil

	case "prog":
		decls, err := loadArray(r, v, "decls", asDecl)
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(r, synthTok(kind), decls), nil

	case "poison":
		return ast.NewPoison(r, synthTok(kind), str(v, "reason")), nil

	default:
		return nil, fmt.Errorf("astdump: unknown node kind %q", kind)
	}
}
