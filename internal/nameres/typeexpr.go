package nameres

import (
	"github.com/baleg00/tau/internal/ast"
	"github.com/baleg00/tau/internal/symtab"
)

func (r *Resolver) resolveTypeExpr(scope *symtab.Scope, t ast.TypeExpr) {
	switch te := t.(type) {
	case *ast.PrimType:
		// no reference out
	case *ast.PtrType:
		r.resolveTypeExpr(scope, te.Base)
	case *ast.RefType:
		r.resolveTypeExpr(scope, te.Base)
	case *ast.MutType:
		r.resolveTypeExpr(scope, te.Base)
	case *ast.OptType:
		r.resolveTypeExpr(scope, te.Base)
	case *ast.ArrayType:
		r.resolveTypeExpr(scope, te.Base)
		r.resolveExpr(scope, te.Size)
	case *ast.VecType:
		r.resolveTypeExpr(scope, te.Base)
		r.resolveExpr(scope, te.Size)
	case *ast.MatType:
		r.resolveTypeExpr(scope, te.Base)
		r.resolveExpr(scope, te.Rows)
		r.resolveExpr(scope, te.Cols)
	case *ast.FunType:
		for _, p := range te.Params {
			r.resolveTypeExpr(scope, p)
		}
		if te.Return != nil {
			r.resolveTypeExpr(scope, te.Return)
		}
	case *ast.MemberType:
		// Member, like BinAccess's right side, names something in
		// Base's resolved type rather than a lexical scope; typecheck
		// resolves it once Base's declaration is known.
		r.resolveTypeExpr(scope, te.Base)
	case *ast.DeclRefType:
		id, _, _ := r.resolvePathNode(scope, te.Path, false)
		te.SetResolvedDecl(id)
	case *ast.GenericSpecType:
		r.resolveTypeExpr(scope, te.Base)
		for _, a := range te.Args {
			r.resolveNode(scope, a)
		}
	case *ast.Poison:
		// already poisoned, no further resolution
	}
}
