package overload

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/grafana/exprtype/pkg/exprtype"
)

var ErrFunctionNotFound = errors.New("function not found")

// NoMatchError is returned when no overload of a function accepts the
// argument types.
type NoMatchError struct {
	Name string
	Args []exprtype.Type
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no overload of %s accepts (%s)", e.Name, joinTypes(e.Args))
}

// AmbiguousError is returned when several overloads share the smallest total
// distance and the registry is configured to reject ties.
type AmbiguousError struct {
	Name       string
	Args       []exprtype.Type
	Candidates []Signature
}

func (e *AmbiguousError) Error() string {
	candidates := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		candidates = append(candidates, c.String())
	}
	return fmt.Sprintf("call %s(%s) is ambiguous between %s", e.Name, joinTypes(e.Args), strings.Join(candidates, " and "))
}
