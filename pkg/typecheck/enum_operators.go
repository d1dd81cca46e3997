package typecheck

import (
	"fmt"
	"strings"

	"github.com/grafana/exprtype/pkg/exprtype"
)

type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMult
	OpDiv
	OpMod
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpAnd
	OpOr
	OpNot
	OpLike

	numOperators
)

// ParseOperator returns the operator written as s, e.g. "+" or "and".
func ParseOperator(s string) (Operator, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for op := OpAdd; op < numOperators; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("unknown operator %q", s)
}

func (op Operator) isBoolean() bool {
	return op == OpEqual ||
		op == OpNotEqual ||
		op == OpGreater ||
		op == OpGreaterEqual ||
		op == OpLess ||
		op == OpLessEqual ||
		op == OpAnd ||
		op == OpOr ||
		op == OpNot ||
		op == OpLike
}

func (op Operator) isArithmetic() bool {
	return op == OpAdd ||
		op == OpSub ||
		op == OpMult ||
		op == OpDiv ||
		op == OpMod
}

func (op Operator) isComparison() bool {
	return op == OpEqual ||
		op == OpNotEqual ||
		op == OpGreater ||
		op == OpGreaterEqual ||
		op == OpLess ||
		op == OpLessEqual
}

// binaryTypeValid reports whether op accepts two operands that were widened to
// the common type t.
func binaryTypeValid(op Operator, t exprtype.Type) bool {
	// NULL operands are accepted by every operator
	if t == exprtype.TypeUnknown {
		return op != OpNone && op != OpNot
	}

	switch {
	case t == exprtype.TypeBoolean:
		return op == OpAnd ||
			op == OpOr ||
			op == OpEqual ||
			op == OpNotEqual
	case t.IsNumeric():
		return op.isArithmetic() || op.isComparison()
	case t == exprtype.TypeString:
		return op.isComparison() || op == OpLike
	case t.IsTemporal():
		return op.isComparison()
	case t == exprtype.TypeIP:
		return op == OpEqual || op == OpNotEqual
	}

	return false
}

// unaryResultType returns the type of op applied to an operand of type t.
func unaryResultType(op Operator, t exprtype.Type) (exprtype.Type, bool) {
	switch op {
	case OpSub:
		if t.IsNumeric() || t == exprtype.TypeUnknown {
			return t, true
		}
	case OpNot:
		if t.WidensTo(exprtype.TypeBoolean) {
			return exprtype.TypeBoolean, true
		}
	}
	return exprtype.TypeUnknown, false
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpNot:
		return "NOT"
	case OpLike:
		return "LIKE"
	}

	return fmt.Sprintf("operator(%d)", op)
}
