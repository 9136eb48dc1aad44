package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

var layoutFont = container.Font{Family: "Open Sans", Size: 12, Color: "#444"}

func TestLabelDefaultsPrefixSuffixPass(t *testing.T) {
	in, out, c := setup(t, map[string]cty.Value{
		"tickprefix":     cty.StringVal("$"),
		"showticksuffix": cty.StringVal("last"),
		"showexponent":   cty.StringVal("last"),
		"showticklabels": cty.False,
	})

	LabelDefaults(in, out, c, axistype.Linear, LabelOptions{Font: layoutFont}, PrefixSuffixPass)

	assert.Equal(t, "$", out.String("tickprefix"))
	assert.Equal(t, "last", out.String("showtickprefix"), "shared show* value is the default")
	assert.Equal(t, "", out.String("ticksuffix"))
	assert.False(t, out.Has("showticksuffix"), "no suffix, no showticksuffix")
	assert.False(t, out.Has("showticklabels"), "pass 2 attributes untouched")
}

func TestLabelDefaultsShowAttrsDisagree(t *testing.T) {
	in, out, c := setup(t, map[string]cty.Value{
		"tickprefix":     cty.StringVal("$"),
		"showticksuffix": cty.StringVal("last"),
		"showexponent":   cty.StringVal("first"),
	})
	LabelDefaults(in, out, c, axistype.Linear, LabelOptions{}, PrefixSuffixPass)
	assert.Equal(t, "all", out.String("showtickprefix"))
}

func TestLabelDefaultsFormatPass(t *testing.T) {
	t.Run("linear axis", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{
			"tickangle": cty.NumberIntVal(270),
			"tickformatstops": cty.TupleVal([]cty.Value{
				cty.ObjectVal(map[string]cty.Value{
					"dtickrange": cty.TupleVal([]cty.Value{cty.NumberIntVal(0), cty.NumberIntVal(1000)}),
					"value":      cty.StringVal("%L ms"),
				}),
				cty.StringVal("junk"),
			}),
		})
		out.Set("color", cty.StringVal("#444"))

		LabelDefaults(in, out, c, axistype.Linear, LabelOptions{Font: layoutFont}, FormatPass)

		assert.True(t, out.Bool("showticklabels"))
		assert.Equal(t, "Open Sans", out.String("tickfont.family"))
		assertValue(t, out, "tickfont.size", cty.NumberFloatVal(12))
		assert.Equal(t, "#444", out.String("tickfont.color"))
		assertValue(t, out, "tickangle", cty.NumberFloatVal(-90))
		assert.Equal(t, "", out.String("tickformat"))
		assert.Equal(t, "all", out.String("showexponent"))
		assert.Equal(t, "B", out.String("exponentformat"))
		assert.False(t, out.Bool("separatethousands"))
		assert.False(t, out.Has("tickprefix"), "pass 1 attributes untouched")

		stops := out.Items("tickformatstops")
		require.Len(t, stops, 2)
		assert.True(t, stops[0].Bool("enabled"))
		assert.Equal(t, "%L ms", stops[0].String("value"))
		assert.False(t, stops[1].Bool("enabled"))
		assert.Equal(t, 1, stops[1].Index())
	})

	t.Run("non-default axis colour wins for the font", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{})
		out.Set("color", cty.StringVal("red"))
		LabelDefaults(in, out, c, axistype.Linear, LabelOptions{Font: layoutFont}, FormatPass)
		assert.Equal(t, "red", out.String("tickfont.color"))
	})

	t.Run("category axis stops after the angle", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{})
		LabelDefaults(in, out, c, axistype.Category, LabelOptions{Font: layoutFont}, FormatPass)
		assert.Equal(t, "auto", out.String("tickangle"))
		assert.False(t, out.Has("tickformat"))
		assert.False(t, out.Has("showexponent"))
	})

	t.Run("explicit format skips exponent settings", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{"tickformat": cty.StringVal(".2f")})
		LabelDefaults(in, out, c, axistype.Linear, LabelOptions{Font: layoutFont}, FormatPass)
		assert.Equal(t, ".2f", out.String("tickformat"))
		assert.False(t, out.Has("showexponent"))
		assert.Empty(t, out.Items("tickformatstops"))
	})

	t.Run("date axis skips exponent settings", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{})
		LabelDefaults(in, out, c, axistype.Date, LabelOptions{Font: layoutFont}, FormatPass)
		assert.True(t, out.Has("tickformat"))
		assert.False(t, out.Has("exponentformat"))
	})

	t.Run("hidden labels", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{"showticklabels": cty.False})
		LabelDefaults(in, out, c, axistype.Linear, LabelOptions{Font: layoutFont}, FormatPass)
		assert.Equal(t, []string{"showticklabels"}, out.Paths())
	})
}
