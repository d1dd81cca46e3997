package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/exprtype/pkg/exprtype"
)

func TestOperatorIsBoolean(t *testing.T) {
	tt := []struct {
		op       Operator
		expected bool
	}{
		{OpAdd, false},
		{OpSub, false},
		{OpMult, false},
		{OpDiv, false},
		{OpMod, false},
		{OpEqual, true},
		{OpNotEqual, true},
		{OpGreater, true},
		{OpGreaterEqual, true},
		{OpLess, true},
		{OpLessEqual, true},
		{OpAnd, true},
		{OpOr, true},
		{OpNot, true},
		{OpLike, true},
	}

	for _, tc := range tt {
		t.Run(tc.op.String(), func(t *testing.T) {
			actual := tc.op.isBoolean()
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestOperatorBinaryTypesValid(t *testing.T) {
	tt := []struct {
		op       Operator
		t        exprtype.Type
		expected bool
	}{
		// numeric
		{OpAdd, exprtype.TypeByte, true},
		{OpDiv, exprtype.TypeDouble, true},
		{OpMod, exprtype.TypeInteger, true},
		{OpLess, exprtype.TypeFloat, true},
		{OpAnd, exprtype.TypeLong, false},
		{OpLike, exprtype.TypeShort, false},

		// string
		{OpEqual, exprtype.TypeString, true},
		{OpLike, exprtype.TypeString, true},
		{OpAdd, exprtype.TypeString, false},

		// boolean
		{OpOr, exprtype.TypeBoolean, true},
		{OpNotEqual, exprtype.TypeBoolean, true},
		{OpGreater, exprtype.TypeBoolean, false},
		{OpMult, exprtype.TypeBoolean, false},

		// temporal
		{OpLessEqual, exprtype.TypeDate, true},
		{OpEqual, exprtype.TypeTimestamp, true},
		{OpSub, exprtype.TypeTime, false},

		// ip
		{OpEqual, exprtype.TypeIP, true},
		{OpGreater, exprtype.TypeIP, false},

		// null
		{OpAdd, exprtype.TypeUnknown, true},
		{OpAnd, exprtype.TypeUnknown, true},
		{OpNot, exprtype.TypeUnknown, false},
		{OpNone, exprtype.TypeUnknown, false},
	}

	for _, tc := range tt {
		t.Run(tc.op.String()+" "+tc.t.String(), func(t *testing.T) {
			actual := binaryTypeValid(tc.op, tc.t)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestOperatorUnaryResultType(t *testing.T) {
	tt := []struct {
		op       Operator
		t        exprtype.Type
		expected exprtype.Type
		ok       bool
	}{
		{OpSub, exprtype.TypeInteger, exprtype.TypeInteger, true},
		{OpSub, exprtype.TypeDouble, exprtype.TypeDouble, true},
		{OpSub, exprtype.TypeUnknown, exprtype.TypeUnknown, true},
		{OpSub, exprtype.TypeString, exprtype.TypeUnknown, false},
		{OpNot, exprtype.TypeBoolean, exprtype.TypeBoolean, true},
		{OpNot, exprtype.TypeString, exprtype.TypeBoolean, true},
		{OpNot, exprtype.TypeUnknown, exprtype.TypeBoolean, true},
		{OpNot, exprtype.TypeInteger, exprtype.TypeUnknown, false},
		{OpAdd, exprtype.TypeInteger, exprtype.TypeUnknown, false},
	}

	for _, tc := range tt {
		t.Run(tc.op.String()+" "+tc.t.String(), func(t *testing.T) {
			actual, ok := unaryResultType(tc.op, tc.t)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseOperator(t *testing.T) {
	for op := OpAdd; op < numOperators; op++ {
		actual, err := ParseOperator(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, actual)
	}

	actual, err := ParseOperator(" like ")
	require.NoError(t, err)
	assert.Equal(t, OpLike, actual)

	_, err = ParseOperator("^")
	assert.EqualError(t, err, `unknown operator "^"`)

	assert.Equal(t, "operator(99)", Operator(99).String())
}
