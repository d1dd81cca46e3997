package exprtype

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceValues(t *testing.T) {
	w, ok := Identical.Weight()
	assert.True(t, ok)
	assert.Equal(t, 0, w)

	_, ok = Impossible.Weight()
	assert.False(t, ok)

	w, ok = Weighted(4).Weight()
	assert.True(t, ok)
	assert.Equal(t, 4, w)

	assert.Equal(t, Identical, Weighted(0))
	assert.Equal(t, Identical, Weighted(-3))

	assert.Equal(t, "identical", Identical.String())
	assert.Equal(t, "impossible", Impossible.String())
	assert.Equal(t, "7", Weighted(7).String())
}

func TestDistanceAdd(t *testing.T) {
	tt := []struct {
		name     string
		a, b     Distance
		expected Distance
	}{
		{"identical", Identical, Identical, Identical},
		{"identical and weight", Identical, Weighted(2), Weighted(2)},
		{"weights", Weighted(2), Weighted(3), Weighted(5)},
		{"impossible lhs", Impossible, Weighted(3), Impossible},
		{"impossible rhs", Weighted(1), Impossible, Impossible},
		{"impossible both", Impossible, Impossible, Impossible},
		{"impossible and identical", Identical, Impossible, Impossible},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Add(tc.b))
			assert.Equal(t, tc.expected, tc.b.Add(tc.a))
		})
	}
}

func TestDistanceLess(t *testing.T) {
	distances := []Distance{Impossible, Weighted(12), Identical, Weighted(1), Impossible, Weighted(3)}
	sort.Slice(distances, func(i, j int) bool {
		return distances[i].Less(distances[j])
	})

	assert.Equal(t, []Distance{Identical, Weighted(1), Weighted(3), Weighted(12), Impossible, Impossible}, distances)

	assert.False(t, Impossible.Less(Impossible))
	assert.False(t, Identical.Less(Identical))
	assert.True(t, Weighted(ImpossibleWidening+1).Less(Impossible))
}

func TestDistanceInt(t *testing.T) {
	assert.Equal(t, TypeEqual, Identical.Int())
	assert.Equal(t, ImpossibleWidening, Impossible.Int())
	assert.Equal(t, 6, Weighted(6).Int())
}

func TestWidensTo(t *testing.T) {
	assert.True(t, TypeInteger.WidensTo(TypeInteger))
	assert.True(t, TypeInteger.WidensTo(TypeDouble))
	assert.False(t, TypeDouble.WidensTo(TypeInteger))
	assert.True(t, TypeUnknown.WidensTo(TypeIP))
	assert.False(t, TypeIP.WidensTo(TypeUnknown))
}
