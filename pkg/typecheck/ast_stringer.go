package typecheck

import "strings"

func (l Literal) String() string {
	return l.Text
}

func (c Column) String() string {
	return c.Name
}

func (o BinaryOperation) String() string {
	return wrapExpr(o.LHS) + " " + o.Op.String() + " " + wrapExpr(o.RHS)
}

func (o UnaryOperation) String() string {
	if o.Op == OpNot {
		return o.Op.String() + " " + wrapExpr(o.Expression)
	}
	return o.Op.String() + wrapExpr(o.Expression)
}

func (f FunctionCall) String() string {
	args := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		args = append(args, a.String())
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

func (c ImplicitCast) String() string {
	return "CAST(" + c.Expression.String() + " AS " + c.To.String() + ")"
}

func wrapExpr(e Expr) string {
	switch e.(type) {
	case Literal, Column, FunctionCall, ImplicitCast:
		return e.String()
	}
	return "(" + e.String() + ")"
}
