package ast

import (
	"strconv"
	"strings"

	"github.com/baleg00/tau/internal/token"
)

type IntLit struct {
	base
	Value int64
}

func (e *IntLit) exprNode()  {}
func (e *IntLit) Kind() Kind { return KindIntLit }
func (e *IntLit) String() string { return strconv.FormatInt(e.Value, 10) }

func NewIntLit(r *Registry, tok token.Token, value int64) *IntLit {
	return alloc(r, func(id ID) *IntLit { return &IntLit{base: newBase(id, tok), Value: value} })
}

type FloatLit struct {
	base
	Value float64
}

func (e *FloatLit) exprNode()  {}
func (e *FloatLit) Kind() Kind { return KindFloatLit }
func (e *FloatLit) String() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }

func NewFloatLit(r *Registry, tok token.Token, value float64) *FloatLit {
	return alloc(r, func(id ID) *FloatLit { return &FloatLit{base: newBase(id, tok), Value: value} })
}

type StringLit struct {
	base
	Value string
}

func (e *StringLit) exprNode()  {}
func (e *StringLit) Kind() Kind { return KindStringLit }
func (e *StringLit) String() string { return strconv.Quote(e.Value) }

func NewStringLit(r *Registry, tok token.Token, value string) *StringLit {
	return alloc(r, func(id ID) *StringLit { return &StringLit{base: newBase(id, tok), Value: value} })
}

type CharLit struct {
	base
	Value rune
}

func (e *CharLit) exprNode()  {}
func (e *CharLit) Kind() Kind { return KindCharLit }
func (e *CharLit) String() string { return "'" + string(e.Value) + "'" }

func NewCharLit(r *Registry, tok token.Token, value rune) *CharLit {
	return alloc(r, func(id ID) *CharLit { return &CharLit{base: newBase(id, tok), Value: value} })
}

type BoolLit struct {
	base
	Value bool
}

func (e *BoolLit) exprNode()  {}
func (e *BoolLit) Kind() Kind { return KindBoolLit }
func (e *BoolLit) String() string { return strconv.FormatBool(e.Value) }

func NewBoolLit(r *Registry, tok token.Token, value bool) *BoolLit {
	return alloc(r, func(id ID) *BoolLit { return &BoolLit{base: newBase(id, tok), Value: value} })
}

type NullLit struct {
	base
}

func (e *NullLit) exprNode()     {}
func (e *NullLit) Kind() Kind    { return KindNullLit }
func (e *NullLit) String() string { return "null" }

func NewNullLit(r *Registry, tok token.Token) *NullLit {
	return alloc(r, func(id ID) *NullLit { return &NullLit{base: newBase(id, tok)} })
}

// VecLit is a fixed-size vector literal; every element must be arithmetic
// and the literal's base type is the promoted common type of all elements.
type VecLit struct {
	base
	Elements []Expression
}

func (e *VecLit) exprNode()  {}
func (e *VecLit) Kind() Kind { return KindVecLit }
func (e *VecLit) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func NewVecLit(r *Registry, tok token.Token, elements []Expression) *VecLit {
	return alloc(r, func(id ID) *VecLit { return &VecLit{base: newBase(id, tok), Elements: elements} })
}

// MatLit is a fixed-shape (rows x cols) matrix literal.
type MatLit struct {
	base
	Rows [][]Expression
}

func (e *MatLit) exprNode()  {}
func (e *MatLit) Kind() Kind { return KindMatLit }
func (e *MatLit) String() string {
	rows := make([]string, len(e.Rows))
	for i, row := range e.Rows {
		parts := make([]string, len(row))
		for j, el := range row {
			parts[j] = el.String()
		}
		rows[i] = "[" + strings.Join(parts, ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func NewMatLit(r *Registry, tok token.Token, rows [][]Expression) *MatLit {
	return alloc(r, func(id ID) *MatLit { return &MatLit{base: newBase(id, tok), Rows: rows} })
}

// UnaryExpr is a prefix or postfix unary operation. Postfix is only
// meaningful for UnaryInc/UnaryDec.
type UnaryExpr struct {
	base
	Op      UnaryOp
	Operand Expression
	Postfix bool
}

func (e *UnaryExpr) exprNode()  {}
func (e *UnaryExpr) Kind() Kind { return KindUnaryExpr }
func (e *UnaryExpr) String() string {
	if e.Postfix {
		return e.Operand.String() + e.Op.String()
	}
	return e.Op.String() + e.Operand.String()
}

func NewUnaryExpr(r *Registry, tok token.Token, op UnaryOp, operand Expression, postfix bool) *UnaryExpr {
	return alloc(r, func(id ID) *UnaryExpr {
		return &UnaryExpr{base: newBase(id, tok), Op: op, Operand: operand, Postfix: postfix}
	})
}

// BinaryExpr covers arithmetic, bitwise, comparison, logical, subscript,
// member-access and assignment operators; which rule applies is chosen by
// Op's classification helpers (IsArithmetic, IsAssign, ...).
type BinaryExpr struct {
	base
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) exprNode()  {}
func (e *BinaryExpr) Kind() Kind { return KindBinaryExpr }
func (e *BinaryExpr) String() string {
	switch e.Op {
	case BinSubscript:
		return e.Left.String() + "[" + e.Right.String() + "]"
	case BinAccess:
		return e.Left.String() + "." + e.Right.String()
	default:
		return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
	}
}

func NewBinaryExpr(r *Registry, tok token.Token, op BinaryOp, left, right Expression) *BinaryExpr {
	return alloc(r, func(id ID) *BinaryExpr {
		return &BinaryExpr{base: newBase(id, tok), Op: op, Left: left, Right: right}
	})
}

// CallExpr applies Callee (which must type-check to a function type) to
// Args.
type CallExpr struct {
	base
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) exprNode()  {}
func (e *CallExpr) Kind() Kind { return KindCallExpr }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

func NewCallExpr(r *Registry, tok token.Token, callee Expression, args []Expression) *CallExpr {
	return alloc(r, func(id ID) *CallExpr {
		return &CallExpr{base: newBase(id, tok), Callee: callee, Args: args}
	})
}

// SpecExpr specializes a generic declaration with explicit arguments
// (`Box<i32>`); each argument is either a TypeExpr or a constant
// Expression depending on the matching generic parameter's kind.
type SpecExpr struct {
	base
	Callee Expression
	Args   []Node
}

func (e *SpecExpr) exprNode()  {}
func (e *SpecExpr) Kind() Kind { return KindSpecExpr }
func (e *SpecExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Callee.String() + "<" + strings.Join(parts, ", ") + ">"
}

func NewSpecExpr(r *Registry, tok token.Token, callee Expression, args []Node) *SpecExpr {
	return alloc(r, func(id ID) *SpecExpr {
		return &SpecExpr{base: newBase(id, tok), Callee: callee, Args: args}
	})
}

// SizeofExpr computes the byte size of a type or the type of an expression;
// Operand is either a TypeExpr or an Expression.
type SizeofExpr struct {
	base
	Operand Node
}

func (e *SizeofExpr) exprNode()     {}
func (e *SizeofExpr) Kind() Kind    { return KindSizeofExpr }
func (e *SizeofExpr) String() string { return "sizeof(" + e.Operand.String() + ")" }

func NewSizeofExpr(r *Registry, tok token.Token, operand Node) *SizeofExpr {
	return alloc(r, func(id ID) *SizeofExpr { return &SizeofExpr{base: newBase(id, tok), Operand: operand} })
}

// AlignofExpr computes the alignment of a type or the type of an expression.
type AlignofExpr struct {
	base
	Operand Node
}

func (e *AlignofExpr) exprNode()     {}
func (e *AlignofExpr) Kind() Kind    { return KindAlignofExpr }
func (e *AlignofExpr) String() string { return "alignof(" + e.Operand.String() + ")" }

func NewAlignofExpr(r *Registry, tok token.Token, operand Node) *AlignofExpr {
	return alloc(r, func(id ID) *AlignofExpr { return &AlignofExpr{base: newBase(id, tok), Operand: operand} })
}
