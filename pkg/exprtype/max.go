package exprtype

import "fmt"

// TypeResolutionError is returned by Max when two types have no common
// widened type.
type TypeResolutionError struct {
	A Type
	B Type
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("no max type of %s and %s", e.A, e.B)
}

// Max returns the widest of two types, i.e. the type the other one widens to.
// TypeUnknown is the bottom element: Max(TypeUnknown, t) is always t.
func Max(a, b Type) (Type, error) {
	if a == b {
		return a, nil
	}
	if _, ok := lookup(a, b); ok {
		return b, nil
	}
	if _, ok := lookup(b, a); ok {
		return a, nil
	}
	return TypeUnknown, &TypeResolutionError{A: a, B: b}
}
