// Package astdump renders an AST subtree as JSON, one object per node with
// a "kind" discriminator matching ast.Kind.String() and a field per child
// (or child vector), following the shape the original sources' per-kind
// *_dump_json functions already emit. It exists for the `dump` CLI
// subcommand and for tests that want to assert on a parsed tree's shape
// without hand-building comparison structs.
package astdump

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/baleg00/tau/internal/ast"
)

// Dump renders node and its entire subtree as indented JSON.
func Dump(node ast.Node) string {
	return string(pretty.Pretty([]byte(dumpNode(node))))
}

// DumpCompact is Dump without indentation, for snapshotting or further
// machine processing (e.g. with gjson).
func DumpCompact(node ast.Node) string {
	return dumpNode(node)
}

// Query is a thin wrapper over gjson.Get for pulling a single field back
// out of a Dump/DumpCompact result, e.g. Query(out, "decls.0.kind").
func Query(json, path string) gjson.Result {
	return gjson.Get(json, path)
}

func set(json, path string, value any) string {
	out, err := sjson.Set(json, path, value)
	if err != nil {
		panic(fmt.Sprintf("astdump: set %s: %v", path, err))
	}
	return out
}

func setRaw(json, path, raw string) string {
	out, err := sjson.SetRaw(json, path, raw)
	if err != nil {
		panic(fmt.Sprintf("astdump: setRaw %s: %v", path, err))
	}
	return out
}

func obj(kind ast.Kind) string {
	return set("{}", "kind", kind.String())
}

func appendElem(arr, raw string) string {
	return setRaw(arr, "-1", raw)
}

// dumpArray renders nodes as a JSON array, the shared vector helper every
// per-kind case below reaches for instead of repeating the append loop.
func dumpArray[T ast.Node](nodes []T) string {
	out := "[]"
	for _, n := range nodes {
		out = appendElem(out, dumpNode(n))
	}
	return out
}

// dumpOpt renders n, or the JSON null literal if n is nil. Safe to call
// with any interface-typed optional child field (Expression, TypeExpr,
// Statement, PathNode); fields declared as a concrete *T pointer must be
// nil-checked by the caller before conversion to ast.Node, since a nil *T
// boxed into an interface is not itself a nil interface.
func dumpOpt(n ast.Node) string {
	if n == nil {
		return "null"
	}
	return dumpNode(n)
}

func dumpNode(node ast.Node) string {
	switch n := node.(type) {

	case *ast.Identifier:
		j := obj(n.Kind())
		return set(j, "value", n.Value)

	case *ast.IntLit:
		j := obj(n.Kind())
		return set(j, "value", n.Value)

	case *ast.FloatLit:
		j := obj(n.Kind())
		return set(j, "value", n.Value)

	case *ast.StringLit:
		j := obj(n.Kind())
		return set(j, "value", n.Value)

	case *ast.CharLit:
		j := obj(n.Kind())
		return set(j, "value", int64(n.Value))

	case *ast.BoolLit:
		j := obj(n.Kind())
		return set(j, "value", n.Value)

	case *ast.NullLit:
		return obj(n.Kind())

	case *ast.VecLit:
		j := obj(n.Kind())
		return setRaw(j, "elements", dumpArray(n.Elements))

	case *ast.MatLit:
		j := obj(n.Kind())
		rows := "[]"
		for _, row := range n.Rows {
			rows = appendElem(rows, dumpArray(row))
		}
		return setRaw(j, "rows", rows)

	case *ast.UnaryExpr:
		j := obj(n.Kind())
		j = set(j, "op_kind", n.Op.String())
		j = setRaw(j, "operand", dumpNode(n.Operand))
		return set(j, "postfix", n.Postfix)

	case *ast.BinaryExpr:
		j := obj(n.Kind())
		j = set(j, "op_kind", n.Op.String())
		j = setRaw(j, "left", dumpNode(n.Left))
		return setRaw(j, "right", dumpNode(n.Right))

	case *ast.CallExpr:
		j := obj(n.Kind())
		j = setRaw(j, "callee", dumpNode(n.Callee))
		return setRaw(j, "args", dumpArray(n.Args))

	case *ast.SpecExpr:
		j := obj(n.Kind())
		j = setRaw(j, "callee", dumpNode(n.Callee))
		return setRaw(j, "args", dumpArray(n.Args))

	case *ast.SizeofExpr:
		j := obj(n.Kind())
		return setRaw(j, "operand", dumpNode(n.Operand))

	case *ast.AlignofExpr:
		j := obj(n.Kind())
		return setRaw(j, "operand", dumpNode(n.Operand))

	case *ast.VarDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "type", dumpOpt(n.Type))
		j = setRaw(j, "init", dumpOpt(n.Init))
		j = set(j, "mut", n.Mut)
		return set(j, "pub", n.Pub)

	case *ast.ParamDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "type", dumpNode(n.Type))
		j = setRaw(j, "default", dumpOpt(n.Default))
		return set(j, "mut", n.Mut)

	case *ast.FunDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "params", dumpArray(n.Params))
		j = set(j, "variadic", n.Variadic)
		j = setRaw(j, "return_type", dumpOpt(n.ReturnType))
		body := "null"
		if n.Body != nil {
			body = dumpNode(n.Body)
		}
		j = setRaw(j, "body", body)
		return set(j, "pub", n.Pub)

	case *ast.FieldDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "type", dumpNode(n.Type))
		return set(j, "pub", n.Pub)

	case *ast.StructDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "fields", dumpArray(n.Fields))
		return set(j, "pub", n.Pub)

	case *ast.UnionDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "fields", dumpArray(n.Fields))
		return set(j, "pub", n.Pub)

	case *ast.EnumConstantDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		return setRaw(j, "value", dumpOpt(n.Value))

	case *ast.EnumDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "constants", dumpArray(n.Constants))
		return set(j, "pub", n.Pub)

	case *ast.ModDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		j = setRaw(j, "decls", dumpArray(n.Decls))
		return set(j, "pub", n.Pub)

	case *ast.GenericParamDecl:
		j := obj(n.Kind())
		j = setRaw(j, "name", dumpNode(n.Name))
		paramKind := "type"
		if n.ParamKind == ast.GenericParamConst {
			paramKind = "const"
		}
		j = set(j, "param_kind", paramKind)
		return setRaw(j, "constraint_type", dumpOpt(n.ConstraintType))

	case *ast.GenericDecl:
		j := obj(n.Kind())
		j = setRaw(j, "params", dumpArray(n.Params))
		j = setRaw(j, "inner", dumpNode(n.Inner))
		return set(j, "pub", n.Pub)

	case *ast.BlockStmt:
		j := obj(n.Kind())
		return setRaw(j, "statements", dumpArray(n.Statements))

	case *ast.ExprStmt:
		j := obj(n.Kind())
		return setRaw(j, "expr", dumpNode(n.Expr))

	case *ast.IfStmt:
		j := obj(n.Kind())
		j = setRaw(j, "cond", dumpNode(n.Cond))
		j = setRaw(j, "then", dumpNode(n.Then))
		return setRaw(j, "else", dumpOpt(n.Else))

	case *ast.ForStmt:
		j := obj(n.Kind())
		j = setRaw(j, "init", dumpOpt(n.Init))
		j = setRaw(j, "cond", dumpOpt(n.Cond))
		j = setRaw(j, "post", dumpOpt(n.Post))
		return setRaw(j, "body", dumpNode(n.Body))

	case *ast.WhileStmt:
		j := obj(n.Kind())
		j = setRaw(j, "cond", dumpNode(n.Cond))
		return setRaw(j, "body", dumpNode(n.Body))

	case *ast.DoWhileStmt:
		j := obj(n.Kind())
		j = setRaw(j, "body", dumpNode(n.Body))
		return setRaw(j, "cond", dumpNode(n.Cond))

	case *ast.LoopStmt:
		j := obj(n.Kind())
		return setRaw(j, "body", dumpNode(n.Body))

	case *ast.BreakStmt:
		return obj(n.Kind())

	case *ast.ContinueStmt:
		return obj(n.Kind())

	case *ast.ReturnStmt:
		j := obj(n.Kind())
		return setRaw(j, "value", dumpOpt(n.Value))

	case *ast.DeferStmt:
		j := obj(n.Kind())
		return setRaw(j, "call", dumpNode(n.Call))

	case *ast.PrimType:
		j := obj(n.Kind())
		return set(j, "prim", n.Prim.String())

	case *ast.PtrType:
		j := obj(n.Kind())
		return setRaw(j, "base", dumpNode(n.Base))

	case *ast.RefType:
		j := obj(n.Kind())
		return setRaw(j, "base", dumpNode(n.Base))

	case *ast.MutType:
		j := obj(n.Kind())
		return setRaw(j, "base", dumpNode(n.Base))

	case *ast.OptType:
		j := obj(n.Kind())
		return setRaw(j, "base", dumpNode(n.Base))

	case *ast.ArrayType:
		j := obj(n.Kind())
		j = setRaw(j, "base", dumpNode(n.Base))
		return setRaw(j, "size", dumpNode(n.Size))

	case *ast.VecType:
		j := obj(n.Kind())
		j = setRaw(j, "base", dumpNode(n.Base))
		return setRaw(j, "size", dumpNode(n.Size))

	case *ast.MatType:
		j := obj(n.Kind())
		j = setRaw(j, "base", dumpNode(n.Base))
		j = setRaw(j, "rows", dumpNode(n.Rows))
		return setRaw(j, "cols", dumpNode(n.Cols))

	case *ast.FunType:
		j := obj(n.Kind())
		j = setRaw(j, "params", dumpArray(n.Params))
		return setRaw(j, "return", dumpOpt(n.Return))

	case *ast.MemberType:
		j := obj(n.Kind())
		j = setRaw(j, "base", dumpNode(n.Base))
		return setRaw(j, "member", dumpNode(n.Member))

	case *ast.DeclRefType:
		j := obj(n.Kind())
		return setRaw(j, "path", dumpNode(n.Path))

	case *ast.GenericSpecType:
		j := obj(n.Kind())
		j = setRaw(j, "base", dumpNode(n.Base))
		return setRaw(j, "args", dumpArray(n.Args))

	case *ast.PathSegment:
		j := obj(n.Kind())
		return setRaw(j, "name", dumpNode(n.Name))

	case *ast.PathAccess:
		j := obj(n.Kind())
		j = setRaw(j, "lhs", dumpNode(n.Lhs))
		return setRaw(j, "rhs", dumpNode(n.Rhs))

	case *ast.PathAlias:
		j := obj(n.Kind())
		j = setRaw(j, "inner", dumpNode(n.Inner))
		return setRaw(j, "alias", dumpNode(n.Alias))

	case *ast.PathWildcard:
		j := obj(n.Kind())
		return setRaw(j, "base", dumpNode(n.Base))

	case *ast.PathList:
		j := obj(n.Kind())
		j = setRaw(j, "root", dumpOpt(n.Root))
		return setRaw(j, "paths", dumpArray(n.Paths))

	case *ast.UseDecl:
		j := obj(n.Kind())
		return setRaw(j, "path", dumpNode(n.Path))

	case *ast.Program:
		j := obj(n.Kind())
		return setRaw(j, "decls", dumpArray(n.Decls))

	case *ast.Poison:
		j := obj(n.Kind())
		return set(j, "reason", n.Reason)

	default:
		panic(fmt.Sprintf("astdump: unhandled node type %T", node))
	}
}
