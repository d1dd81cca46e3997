package exprtype

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Edge states that a value of type From can be implicitly converted to type To
// at cost Weight. Edges are directed and are never composed: every supported
// multi-step widening is listed as its own edge.
type Edge struct {
	From   Type
	To     Type
	Weight int
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%d)", e.From, e.To, e.Weight)
}

type typePair struct {
	from Type
	to   Type
}

var wideningEdges = []Edge{
	{TypeByte, TypeShort, 1},
	{TypeByte, TypeInteger, 2},
	{TypeByte, TypeLong, 3},
	{TypeByte, TypeFloat, 4},
	{TypeByte, TypeDouble, 5},
	{TypeShort, TypeInteger, 1},
	{TypeShort, TypeLong, 2},
	{TypeShort, TypeFloat, 3},
	{TypeShort, TypeDouble, 4},
	{TypeInteger, TypeLong, 1},
	{TypeInteger, TypeFloat, 2},
	{TypeInteger, TypeDouble, 3},
	{TypeLong, TypeFloat, 1},
	{TypeLong, TypeDouble, 2},
	{TypeFloat, TypeDouble, 1},

	{TypeString, TypeBoolean, 1},
	{TypeString, TypeTimestamp, 1},
	{TypeString, TypeDate, 1},
	{TypeString, TypeTime, 1},
	{TypeString, TypeIP, 1},

	{TypeDate, TypeTimestamp, 1},
	{TypeTime, TypeTimestamp, 1},

	// numerics come first so an untyped literal prefers the narrowest number
	{TypeUnknown, TypeByte, 1},
	{TypeUnknown, TypeShort, 2},
	{TypeUnknown, TypeInteger, 3},
	{TypeUnknown, TypeLong, 4},
	{TypeUnknown, TypeFloat, 5},
	{TypeUnknown, TypeDouble, 6},
	{TypeUnknown, TypeString, 7},
	{TypeUnknown, TypeBoolean, 8},
	{TypeUnknown, TypeDate, 9},
	{TypeUnknown, TypeTime, 10},
	{TypeUnknown, TypeTimestamp, 11},
	{TypeUnknown, TypeIP, 12},
}

// wideningRules is written once in init and only read afterwards.
var wideningRules map[typePair]int

func init() {
	if err := ValidateRules(wideningEdges); err != nil {
		panic(fmt.Sprintf("invalid widening rules: %v", err))
	}

	wideningRules = make(map[typePair]int, len(wideningEdges))
	for _, e := range wideningEdges {
		wideningRules[typePair{e.From, e.To}] = e.Weight
	}
}

func lookup(from, to Type) (int, bool) {
	w, ok := wideningRules[typePair{from, to}]
	return w, ok
}

// Edges returns a copy of the widening table ordered by source and then
// destination type.
func Edges() []Edge {
	edges := make([]Edge, len(wideningEdges))
	copy(edges, wideningEdges)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// ValidateRules checks a widening table against the lattice invariants and
// returns every violation found.
func ValidateRules(edges []Edge) error {
	var errs error

	seen := make(map[typePair]struct{}, len(edges))
	for _, e := range edges {
		switch {
		case !e.From.IsValid() || !e.To.IsValid():
			errs = multierr.Append(errs, fmt.Errorf("edge %s: invalid type", e))
			continue
		case e.From == e.To:
			errs = multierr.Append(errs, fmt.Errorf("edge %s: self edge", e))
		case e.To == TypeUnknown:
			errs = multierr.Append(errs, fmt.Errorf("edge %s: nothing widens to %s", e, TypeUnknown))
		case e.Weight <= 0:
			errs = multierr.Append(errs, fmt.Errorf("edge %s: weight must be positive", e))
		}

		p := typePair{e.From, e.To}
		if _, ok := seen[p]; ok {
			errs = multierr.Append(errs, fmt.Errorf("edge %s: listed twice", e))
		}
		if _, ok := seen[typePair{e.To, e.From}]; ok {
			errs = multierr.Append(errs, fmt.Errorf("edge %s: reverse direction also listed", e))
		}
		seen[p] = struct{}{}
	}

	weights := make(map[Type]int, numTypes)
	for _, e := range edges {
		if e.From == TypeUnknown {
			weights[e.To] = e.Weight
		}
	}
	last := 0
	for _, t := range ConcreteTypes() {
		w, ok := weights[t]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s does not widen to %s", TypeUnknown, t))
			continue
		}
		if w <= last {
			errs = multierr.Append(errs, fmt.Errorf("%s -> %s: weight %d is not greater than %d", TypeUnknown, t, w, last))
		}
		last = w
	}

	return errs
}
