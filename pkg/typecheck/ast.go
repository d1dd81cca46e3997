package typecheck

import (
	"fmt"

	"github.com/grafana/exprtype/pkg/exprtype"
)

// Expr is a scalar expression of a query.
type Expr interface {
	fmt.Stringer
	__expr()
}

// **********************
// Leaves
// **********************

// Literal is a constant with the type the parser assigned to it. NULL has
// type exprtype.TypeUnknown.
type Literal struct {
	Type exprtype.Type
	Text string
}

func NewLiteral(t exprtype.Type, text string) Literal {
	return Literal{
		Type: t,
		Text: text,
	}
}

func Null() Literal {
	return NewLiteral(exprtype.TypeUnknown, "NULL")
}

// nolint: revive
func (Literal) __expr() {}

// Column is a reference to a column of known type.
type Column struct {
	Name string
	Type exprtype.Type
}

func NewColumn(name string, t exprtype.Type) Column {
	return Column{
		Name: name,
		Type: t,
	}
}

// nolint: revive
func (Column) __expr() {}

// **********************
// Operations
// **********************

type BinaryOperation struct {
	Op  Operator
	LHS Expr
	RHS Expr
}

func NewBinaryOperation(op Operator, lhs Expr, rhs Expr) BinaryOperation {
	return BinaryOperation{
		Op:  op,
		LHS: lhs,
		RHS: rhs,
	}
}

// nolint: revive
func (BinaryOperation) __expr() {}

type UnaryOperation struct {
	Op         Operator
	Expression Expr
}

func NewUnaryOperation(op Operator, e Expr) UnaryOperation {
	return UnaryOperation{
		Op:         op,
		Expression: e,
	}
}

// nolint: revive
func (UnaryOperation) __expr() {}

type FunctionCall struct {
	Name string
	Args []Expr
}

func NewFunctionCall(name string, args ...Expr) FunctionCall {
	return FunctionCall{
		Name: name,
		Args: args,
	}
}

// nolint: revive
func (FunctionCall) __expr() {}

// ImplicitCast converts Expression to To. It is inserted by Checker.Rewrite
// and only ever widens.
type ImplicitCast struct {
	Expression Expr
	To         exprtype.Type
}

func NewImplicitCast(e Expr, to exprtype.Type) ImplicitCast {
	return ImplicitCast{
		Expression: e,
		To:         to,
	}
}

// nolint: revive
func (ImplicitCast) __expr() {}
