package exprtype

import (
	"math"
	"strconv"
)

// Integer encodings of the two reserved distances, for callers that rank
// candidates with plain integers.
const (
	TypeEqual          = 0
	ImpossibleWidening = math.MaxInt32
)

type distanceKind int

const (
	distanceIdentical distanceKind = iota
	distanceWeighted
	distanceImpossible
)

// Distance is the cost of implicitly converting one type to another. It is
// either Identical, a positive weight, or Impossible.
type Distance struct {
	kind   distanceKind
	weight int
}

var (
	Identical  = Distance{kind: distanceIdentical}
	Impossible = Distance{kind: distanceImpossible}
)

// Weighted returns the distance of a widening edge. Non-positive weights
// collapse to Identical.
func Weighted(w int) Distance {
	if w <= 0 {
		return Identical
	}
	return Distance{kind: distanceWeighted, weight: w}
}

func (d Distance) IsIdentical() bool {
	return d.kind == distanceIdentical
}

func (d Distance) IsImpossible() bool {
	return d.kind == distanceImpossible
}

// Weight returns the cost and true, or 0 and false if d is Impossible.
func (d Distance) Weight() (int, bool) {
	if d.IsImpossible() {
		return 0, false
	}
	return d.weight, true
}

// Add sums two distances. Impossible absorbs everything.
func (d Distance) Add(other Distance) Distance {
	if d.IsImpossible() || other.IsImpossible() {
		return Impossible
	}
	return Weighted(d.weight + other.weight)
}

// Less orders Identical before any weight and Impossible after everything.
func (d Distance) Less(other Distance) bool {
	if d.kind != other.kind {
		return d.kind < other.kind
	}
	return d.weight < other.weight
}

func (d Distance) Int() int {
	switch d.kind {
	case distanceIdentical:
		return TypeEqual
	case distanceImpossible:
		return ImpossibleWidening
	}
	return d.weight
}

func (d Distance) String() string {
	switch d.kind {
	case distanceIdentical:
		return "identical"
	case distanceImpossible:
		return "impossible"
	}
	return strconv.Itoa(d.weight)
}

// DistanceTo returns the cost of widening t to other. It never fails: a pair
// with no widening edge yields Impossible.
func (t Type) DistanceTo(other Type) Distance {
	if t == other {
		return Identical
	}
	if w, ok := lookup(t, other); ok {
		return Weighted(w)
	}
	return Impossible
}

// WidensTo reports whether t can be implicitly converted to other.
func (t Type) WidensTo(other Type) bool {
	return !t.DistanceTo(other).IsImpossible()
}
