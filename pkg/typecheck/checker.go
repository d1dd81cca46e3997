package typecheck

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/grafana/exprtype/pkg/exprtype"
	"github.com/grafana/exprtype/pkg/overload"
)

var errNoRegistry = errors.New("no function registry configured")

// OperatorError is returned when an operator does not accept the types of its
// operands.
type OperatorError struct {
	Op    Operator
	Types []exprtype.Type
}

func (e *OperatorError) Error() string {
	if len(e.Types) == 1 {
		return fmt.Sprintf("operator %s cannot be applied to %s", e.Op, e.Types[0])
	}
	return fmt.Sprintf("operator %s cannot be applied to %s and %s", e.Op, e.Types[0], e.Types[1])
}

// Checker computes the result type of expressions. Function calls are resolved
// against the registry.
type Checker struct {
	functions *overload.Registry
}

func NewChecker(functions *overload.Registry) *Checker {
	return &Checker{
		functions: functions,
	}
}

// TypeOf returns the type e evaluates to.
func (c *Checker) TypeOf(e Expr) (exprtype.Type, error) {
	_, t, err := c.check(e, false)
	return t, err
}

// check types e. With rewrite set it also returns e with an ImplicitCast
// around every operand whose type differs from the type it is widened to.
func (c *Checker) check(e Expr, rewrite bool) (Expr, exprtype.Type, error) {
	switch e := e.(type) {
	case Literal:
		if !e.Type.IsValid() {
			return nil, exprtype.TypeUnknown, errors.Errorf("literal %s has invalid type %s", e, e.Type)
		}
		return e, e.Type, nil

	case Column:
		if !e.Type.IsValid() {
			return nil, exprtype.TypeUnknown, errors.Errorf("column %s has invalid type %s", e, e.Type)
		}
		return e, e.Type, nil

	case ImplicitCast:
		inner, t, err := c.check(e.Expression, rewrite)
		if err != nil {
			return nil, exprtype.TypeUnknown, err
		}
		if !t.WidensTo(e.To) {
			return nil, exprtype.TypeUnknown, errors.Errorf("%s cannot be implicitly cast to %s", t, e.To)
		}
		return NewImplicitCast(inner, e.To), e.To, nil

	case BinaryOperation:
		return c.checkBinary(e, rewrite)

	case UnaryOperation:
		inner, t, err := c.check(e.Expression, rewrite)
		if err != nil {
			return nil, exprtype.TypeUnknown, err
		}
		result, ok := unaryResultType(e.Op, t)
		if !ok {
			return nil, exprtype.TypeUnknown, &OperatorError{Op: e.Op, Types: []exprtype.Type{t}}
		}
		if rewrite && e.Op == OpNot {
			inner = widen(inner, t, exprtype.TypeBoolean)
		}
		return NewUnaryOperation(e.Op, inner), result, nil

	case FunctionCall:
		return c.checkCall(e, rewrite)
	}

	return nil, exprtype.TypeUnknown, errors.Errorf("unsupported expression %T", e)
}

func (c *Checker) checkBinary(o BinaryOperation, rewrite bool) (Expr, exprtype.Type, error) {
	lhs, lt, err := c.check(o.LHS, rewrite)
	if err != nil {
		return nil, exprtype.TypeUnknown, err
	}
	rhs, rt, err := c.check(o.RHS, rewrite)
	if err != nil {
		return nil, exprtype.TypeUnknown, err
	}

	common, err := exprtype.Max(lt, rt)
	if err != nil {
		return nil, exprtype.TypeUnknown, errors.Wrapf(err, "invalid expression %s", o)
	}

	if !binaryTypeValid(o.Op, common) {
		return nil, exprtype.TypeUnknown, &OperatorError{Op: o.Op, Types: []exprtype.Type{lt, rt}}
	}

	if rewrite {
		lhs = widen(lhs, lt, common)
		rhs = widen(rhs, rt, common)
	}

	if o.Op.isBoolean() {
		return NewBinaryOperation(o.Op, lhs, rhs), exprtype.TypeBoolean, nil
	}
	return NewBinaryOperation(o.Op, lhs, rhs), common, nil
}

func (c *Checker) checkCall(f FunctionCall, rewrite bool) (Expr, exprtype.Type, error) {
	if c.functions == nil {
		return nil, exprtype.TypeUnknown, errors.Wrapf(errNoRegistry, "cannot resolve %s", f.Name)
	}

	args := make([]Expr, 0, len(f.Args))
	types := make([]exprtype.Type, 0, len(f.Args))
	for _, a := range f.Args {
		arg, t, err := c.check(a, rewrite)
		if err != nil {
			return nil, exprtype.TypeUnknown, err
		}
		args = append(args, arg)
		types = append(types, t)
	}

	m, err := c.functions.Resolve(f.Name, types)
	if err != nil {
		return nil, exprtype.TypeUnknown, err
	}

	if rewrite {
		for i := range args {
			args[i] = widen(args[i], types[i], m.Casts[i])
		}
	}

	return NewFunctionCall(f.Name, args...), m.Signature.Return, nil
}

// widen wraps e in an ImplicitCast if its type differs from to. Nothing is cast
// to UNKNOWN, which is only the common type of two NULL operands.
func widen(e Expr, from, to exprtype.Type) Expr {
	if from == to || to == exprtype.TypeUnknown {
		return e
	}
	return NewImplicitCast(e, to)
}
