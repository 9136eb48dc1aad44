package axistype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParse(t *testing.T) {
	for _, ty := range []Type{Placeholder, Linear, Log, Date, Category, MultiCategory} {
		t.Run(ty.String(), func(t *testing.T) {
			parsed, err := Parse(ty.String())
			require.NoError(t, err)
			assert.Equal(t, ty, parsed)
		})
	}

	_, err := Parse("polar")
	require.Error(t, err)
	assert.Equal(t, "Type(42)", Type(42).String())
}

func TestIsCategorical(t *testing.T) {
	assert.True(t, Category.IsCategorical())
	assert.True(t, MultiCategory.IsCategorical())
	assert.False(t, Date.IsCategorical())
	assert.False(t, Placeholder.IsCategorical())
	assert.Panics(t, func() { Type(42).IsCategorical() })
}

func TestAutotype(t *testing.T) {
	strs := func(ss ...string) []cty.Value {
		out := make([]cty.Value, len(ss))
		for i, s := range ss {
			out[i] = cty.StringVal(s)
		}
		return out
	}

	testCases := []struct {
		name     string
		values   []cty.Value
		expected Type
	}{
		{name: "no data", values: nil, expected: Placeholder},
		{name: "numbers", values: []cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}, expected: Linear},
		{name: "numeric strings", values: strs("1", "2.5"), expected: Linear},
		{name: "dates", values: strs("2020-01-01", "2020-01-02", "2020-01-03"), expected: Date},
		{name: "categories", values: strs("apples", "pears"), expected: Category},
		{name: "mixed leaning numeric", values: strs("1", "2", "apples"), expected: Linear},
		{
			name: "nested lists",
			values: []cty.Value{
				cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
				cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.StringVal("y")}),
			},
			expected: MultiCategory,
		},
		{name: "only nulls", values: []cty.Value{cty.NullVal(cty.Number)}, expected: Placeholder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Autotype(tc.values))
		})
	}
}
