package ast

import (
	"fmt"

	"github.com/baleg00/tau/internal/token"
)

// Kind discriminates the concrete shape of a Node. It plays the role the
// AST_NODE_HEADER macro's hand-rolled type tag plays in the original C
// sources: every concrete node reports one of these from Kind().
type Kind int

const (
	// Declarations
	KindVarDecl Kind = iota
	KindParamDecl
	KindFunDecl
	KindFieldDecl
	KindStructDecl
	KindUnionDecl
	KindEnumDecl
	KindEnumConstantDecl
	KindModDecl
	KindGenericDecl
	KindGenericParamDecl

	// Expressions
	KindIdentifier
	KindIntLit
	KindFloatLit
	KindStringLit
	KindCharLit
	KindBoolLit
	KindNullLit
	KindVecLit
	KindMatLit
	KindUnaryExpr
	KindBinaryExpr
	KindCallExpr
	KindSpecExpr
	KindSizeofExpr
	KindAlignofExpr

	// Statements
	KindIfStmt
	KindForStmt
	KindWhileStmt
	KindDoWhileStmt
	KindLoopStmt
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindDeferStmt
	KindBlockStmt
	KindExprStmt

	// Type expressions
	KindPrimType
	KindPtrType
	KindRefType
	KindMutType
	KindOptType
	KindArrayType
	KindVecType
	KindMatType
	KindFunType
	KindMemberType
	KindDeclRefType
	KindGenericSpecType

	// Paths
	KindPathSegment
	KindPathAccess
	KindPathAlias
	KindPathWildcard
	KindPathList

	// Misc
	KindUseDecl
	KindProgram
	KindPoison
)

var kindNames = [...]string{
	"var", "param", "fun", "field", "struct", "union", "enum", "enum-constant", "mod", "generic", "generic-param",
	"id", "lit-int", "lit-flt", "lit-str", "lit-char", "lit-bool", "lit-null", "lit-vec", "lit-mat",
	"unary-op", "binary-op", "call", "generic-spec", "sizeof", "alignof",
	"if", "for", "while", "do-while", "loop", "break", "continue", "return", "defer", "block", "expr",
	"prim", "ptr", "ref", "mut", "opt", "array", "vec", "mat", "fun-type", "member", "decl-ref", "generic-spec-type",
	"path-segment", "path-access", "path-alias", "path-wildcard", "path-list",
	"use", "prog", "poison",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ID is the index a Node is known by in its owning Registry. Lateral and
// backward references between nodes (a resolved declaration, a break/
// continue loop target) are stored as IDs rather than pointers: this keeps
// such edges expressible even when they form cycles, and makes teardown of
// the whole tree a matter of dropping the Registry's slice.
type ID int

// InvalidID marks an unset back-reference slot.
const InvalidID ID = -1

// Node is the common interface every AST node satisfies.
type Node interface {
	ID() ID
	Kind() Kind
	Tok() token.Token
	Pos() token.Position
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is any node that performs an action within a block.
type Statement interface {
	Node
	stmtNode()
}

// Decl is any declaration node. Declarations double as statements so they
// can appear directly in a block's statement list.
type Decl interface {
	Statement
	declNode()
	DeclName() *Identifier
	IsPub() bool
}

// TypeExpr is any node in the type-expression sub-tree.
type TypeExpr interface {
	Node
	typeNode()
}

// PathNode is any node in the path sub-tree (`use` targets and qualified
// member access chains).
type PathNode interface {
	Node
	pathNode()
}

// base holds the fields every node shares, mirroring the shared header the
// original C sources expand via AST_NODE_HEADER into every node struct.
// Embedding it in each concrete type keeps those fields in one place
// instead of duplicating them per kind.
type base struct {
	id  ID
	tok token.Token

	resolved ID  // nameres: resolved declaration, InvalidID until bound
	typeIdx  int // typecheck: always stored as 0; the node's type lives in typecheck's table, keyed by ID
	hasType  bool
	codegen  any // opaque payload the external codegen collaborator may set
}

func (b *base) ID() ID              { return b.id }
func (b *base) Tok() token.Token    { return b.tok }
func (b *base) Pos() token.Position { return b.tok.Pos() }

// ResolvedDecl returns the ID of the declaration nameres bound this node
// to, or InvalidID if unresolved (or not applicable to this kind).
func (b *base) ResolvedDecl() ID { return b.resolved }

// SetResolvedDecl records the declaration nameres bound this node to.
func (b *base) SetResolvedDecl(id ID) { b.resolved = id }

// TypeIndex returns the value typecheck stored for this node, and whether
// typecheck has typed the node yet. typecheck always stores 0: the value
// is no index into any descriptor list, and only the boolean carries
// information; the type itself is looked up in typecheck's table by ID.
func (b *base) TypeIndex() (int, bool) { return b.typeIdx, b.hasType }

// SetTypeIndex records idx and marks the node as typed.
func (b *base) SetTypeIndex(idx int) {
	b.typeIdx = idx
	b.hasType = true
}

// CodegenValue returns the opaque backend value codegen attached, if any.
func (b *base) CodegenValue() any { return b.codegen }

// SetCodegenValue lets the external codegen collaborator stash its backend
// value on this node; the core never reads it back.
func (b *base) SetCodegenValue(v any) { b.codegen = v }

func newBase(id ID, tok token.Token) base {
	return base{id: id, tok: tok, resolved: InvalidID}
}
