package overload

import (
	"strings"

	"github.com/grafana/exprtype/pkg/exprtype"
)

// Signature is one declared overload of a function.
type Signature struct {
	Name   string
	Params []exprtype.Type
	Return exprtype.Type
}

func NewSignature(name string, ret exprtype.Type, params ...exprtype.Type) Signature {
	return Signature{
		Name:   name,
		Params: params,
		Return: ret,
	}
}

func (s Signature) String() string {
	return s.Name + "(" + joinTypes(s.Params) + ") -> " + s.Return.String()
}

// conflicts reports whether s and other accept exactly the same calls. The
// return type is not compared: two overloads that only differ in it could
// never be told apart.
func (s Signature) conflicts(other Signature) bool {
	if !strings.EqualFold(s.Name, other.Name) || len(s.Params) != len(other.Params) {
		return false
	}
	for i := range s.Params {
		if s.Params[i] != other.Params[i] {
			return false
		}
	}
	return true
}

// distance scores a call with the given argument types. The result is
// Impossible if the arity differs or any argument cannot be widened.
func (s Signature) distance(args []exprtype.Type) exprtype.Distance {
	if len(args) != len(s.Params) {
		return exprtype.Impossible
	}

	total := exprtype.Identical
	for i, arg := range args {
		total = total.Add(arg.DistanceTo(s.Params[i]))
		if total.IsImpossible() {
			break
		}
	}
	return total
}

func joinTypes(types []exprtype.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
