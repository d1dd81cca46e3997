package typecheck

// Rewrite returns an equivalent expression in which every implicit conversion
// is explicit: each operand or argument whose type differs from the type the
// operator or chosen overload needs is wrapped in an ImplicitCast. The input
// is not modified.
func (c *Checker) Rewrite(e Expr) (Expr, error) {
	rewritten, _, err := c.check(e, true)
	if err != nil {
		return nil, err
	}
	return rewritten, nil
}

// CountCasts returns the number of ImplicitCast nodes in e.
func CountCasts(e Expr) int {
	switch e := e.(type) {
	case ImplicitCast:
		return 1 + CountCasts(e.Expression)
	case BinaryOperation:
		return CountCasts(e.LHS) + CountCasts(e.RHS)
	case UnaryOperation:
		return CountCasts(e.Expression)
	case FunctionCall:
		n := 0
		for _, a := range e.Args {
			n += CountCasts(a)
		}
		return n
	}
	return 0
}
