package exprtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTypes(t *testing.T) {
	all := AllTypes()
	require.Len(t, all, int(numTypes))
	assert.Equal(t, TypeUnknown, all[0])
	assert.Equal(t, all, AllTypes(), "order must be stable")

	for i, typ := range all {
		assert.Equal(t, Type(i), typ)
		assert.True(t, typ.IsValid())
	}

	all[0] = TypeIP
	assert.Equal(t, TypeUnknown, AllTypes()[0])

	concrete := ConcreteTypes()
	assert.Len(t, concrete, len(all)-1)
	assert.NotContains(t, concrete, TypeUnknown)
}

func TestParseType(t *testing.T) {
	tt := []struct {
		in       string
		expected Type
		err      bool
	}{
		{in: "INTEGER", expected: TypeInteger},
		{in: "integer", expected: TypeInteger},
		{in: " Timestamp ", expected: TypeTimestamp},
		{in: "ip", expected: TypeIP},
		{in: "unknown", expected: TypeUnknown},
		{in: "varchar", err: true},
		{in: "", err: true},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			actual, err := ParseType(tc.in)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	for _, typ := range AllTypes() {
		actual, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, actual)
	}
}

func TestTypeClassification(t *testing.T) {
	tt := []struct {
		t        Type
		numeric  bool
		temporal bool
	}{
		{TypeUnknown, false, false},
		{TypeByte, true, false},
		{TypeShort, true, false},
		{TypeInteger, true, false},
		{TypeLong, true, false},
		{TypeFloat, true, false},
		{TypeDouble, true, false},
		{TypeString, false, false},
		{TypeBoolean, false, false},
		{TypeDate, false, true},
		{TypeTime, false, true},
		{TypeTimestamp, false, true},
		{TypeIP, false, false},
	}

	for _, tc := range tt {
		t.Run(tc.t.String(), func(t *testing.T) {
			assert.Equal(t, tc.numeric, tc.t.IsNumeric())
			assert.Equal(t, tc.temporal, tc.t.IsTemporal())
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "DOUBLE", TypeDouble.String())
	assert.Equal(t, "UNKNOWN", TypeUnknown.String())
	assert.Equal(t, "type(42)", Type(42).String())
	assert.Equal(t, "type(-1)", Type(-1).String())
	assert.False(t, Type(-1).IsValid())
}
