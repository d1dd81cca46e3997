package main

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/grafana/exprtype/pkg/exprtype"
)

type validateCmd struct{}

func (cmd *validateCmd) Run(opts *globalOptions) error {
	edges := exprtype.Edges()
	if err := exprtype.ValidateRules(edges); err != nil {
		return err
	}

	pairs, err := checkPairs(exprtype.AllTypes())
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.out, "ok: %d edges, %d type pairs\n", len(edges), pairs)
	return nil
}

// checkPairs cross checks DistanceTo and Max for every ordered pair of types
// and returns the number of pairs checked.
func checkPairs(types []exprtype.Type) (int, error) {
	var errs error
	pairs := 0

	for _, a := range types {
		for _, b := range types {
			pairs++

			ab := a.DistanceTo(b)
			ba := b.DistanceTo(a)
			switch {
			case a == b && !ab.IsIdentical():
				errs = multierr.Append(errs, fmt.Errorf("%s: not identical to itself", a))
			case a != b && ab.IsIdentical():
				errs = multierr.Append(errs, fmt.Errorf("%s -> %s: identical but different types", a, b))
			case a != b && !ab.IsImpossible() && !ba.IsImpossible():
				errs = multierr.Append(errs, fmt.Errorf("%s <-> %s: widens both ways", a, b))
			}

			if a != exprtype.TypeUnknown && b == exprtype.TypeUnknown && !ab.IsImpossible() {
				errs = multierr.Append(errs, fmt.Errorf("%s -> %s: widens to the sentinel", a, b))
			}

			m, err := exprtype.Max(a, b)
			if err != nil {
				if !ab.IsImpossible() || !ba.IsImpossible() {
					errs = multierr.Append(errs, fmt.Errorf("max(%s, %s): %w", a, b, err))
				}
				continue
			}
			if !a.WidensTo(m) || !b.WidensTo(m) {
				errs = multierr.Append(errs, fmt.Errorf("max(%s, %s) = %s: not reachable from both", a, b, m))
			}
			if m2, _ := exprtype.Max(b, a); m2 != m {
				errs = multierr.Append(errs, fmt.Errorf("max(%s, %s) = %s but max(%s, %s) = %s", a, b, m, b, a, m2))
			}
		}
	}

	return pairs, errs
}
