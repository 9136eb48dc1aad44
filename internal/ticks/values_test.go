package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/dates"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

func setup(t *testing.T, attrs map[string]cty.Value) (*container.Container, *container.Container, *container.SchemaCoercer) {
	t.Helper()
	in, err := container.FromObject(cty.ObjectVal(attrs))
	require.NoError(t, err)
	out := container.New()
	return in, out, container.NewCoercer(in, out, schema.Axis())
}

func assertValue(t *testing.T, out *container.Container, path string, want cty.Value) {
	t.Helper()
	got, ok := out.Get(path)
	require.True(t, ok, "%s missing", path)
	assert.True(t, got.RawEquals(want), "%s: got %#v, want %#v", path, got, want)
}

func TestValueDefaults(t *testing.T) {
	t.Run("auto by default", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{})
		ValueDefaults(in, out, c, axistype.Linear)
		assert.Equal(t, "auto", out.String("tickmode"))
		assertValue(t, out, "nticks", cty.NumberIntVal(0))
		assert.False(t, out.Has("dtick"))
	})

	t.Run("dtick implies linear", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{
			"dtick": cty.NumberIntVal(5),
			"tick0": cty.StringVal("2.5"),
		})
		ValueDefaults(in, out, c, axistype.Linear)
		assert.Equal(t, "linear", out.String("tickmode"))
		assertValue(t, out, "dtick", cty.NumberFloatVal(5))
		assertValue(t, out, "tick0", cty.NumberFloatVal(2.5))
		assert.False(t, out.Has("nticks"))
	})

	t.Run("tickvals imply array", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{
			"tickvals": cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
			"ticktext": cty.TupleVal([]cty.Value{cty.StringVal("one"), cty.StringVal("two")}),
			"dtick":    cty.NumberIntVal(5),
		})
		ValueDefaults(in, out, c, axistype.Linear)
		assert.Equal(t, "array", out.String("tickmode"))
		assert.True(t, out.Has("tickvals"))
		assert.True(t, out.Has("ticktext"))
		assert.False(t, out.Has("dtick"))
	})

	t.Run("array without tickvals falls back to auto", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{"tickmode": cty.StringVal("array")})
		ValueDefaults(in, out, c, axistype.Linear)
		assert.Equal(t, "auto", out.String("tickmode"))
		assert.False(t, out.Has("ticktext"))
	})

	t.Run("multicategory ignores tickvals", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{
			"tickvals": cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}),
		})
		ValueDefaults(in, out, c, axistype.MultiCategory)
		assert.Equal(t, "array", out.String("tickmode"))
		assert.False(t, out.Has("tickvals"))
	})

	t.Run("log digits drop tick0", func(t *testing.T) {
		in, out, c := setup(t, map[string]cty.Value{
			"dtick": cty.StringVal("D2"),
			"tick0": cty.NumberIntVal(3),
		})
		ValueDefaults(in, out, c, axistype.Log)
		assertValue(t, out, "dtick", cty.StringVal("D2"))
		assert.False(t, out.Has("tick0"))
	})
}

func TestDTick(t *testing.T) {
	testCases := []struct {
		name     string
		input    cty.Value
		typ      axistype.Type
		expected cty.Value
	}{
		{name: "missing linear", input: cty.NilVal, typ: axistype.Linear, expected: cty.NumberIntVal(1)},
		{name: "missing date", input: cty.NilVal, typ: axistype.Date, expected: cty.NumberIntVal(dates.OneDay)},
		{name: "positive number", input: cty.NumberFloatVal(0.25), typ: axistype.Linear, expected: cty.NumberFloatVal(0.25)},
		{name: "numeric string", input: cty.StringVal("2"), typ: axistype.Linear, expected: cty.NumberFloatVal(2)},
		{name: "negative", input: cty.NumberIntVal(-3), typ: axistype.Linear, expected: cty.NumberIntVal(1)},
		{name: "category rounds", input: cty.NumberFloatVal(2.5), typ: axistype.Category, expected: cty.NumberFloatVal(3)},
		{name: "category at least one", input: cty.NumberFloatVal(0.2), typ: axistype.Category, expected: cty.NumberFloatVal(1)},
		{name: "months", input: cty.StringVal("M3"), typ: axistype.Date, expected: cty.StringVal("M3")},
		{name: "fractional months", input: cty.StringVal("M1.5"), typ: axistype.Date, expected: cty.NumberIntVal(dates.OneDay)},
		{name: "months off a date axis", input: cty.StringVal("M3"), typ: axistype.Linear, expected: cty.NumberIntVal(1)},
		{name: "log linear steps", input: cty.StringVal("L0.5"), typ: axistype.Log, expected: cty.StringVal("L0.5")},
		{name: "log digits", input: cty.StringVal("D1"), typ: axistype.Log, expected: cty.StringVal("D1")},
		{name: "log digits three", input: cty.StringVal("D3"), typ: axistype.Log, expected: cty.NumberIntVal(1)},
		{name: "garbage", input: cty.StringVal("weekly"), typ: axistype.Date, expected: cty.NumberIntVal(dates.OneDay)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DTick(tc.input, tc.typ)
			assert.True(t, got.RawEquals(tc.expected), "got %#v", got)
		})
	}
}

func TestTick0(t *testing.T) {
	testCases := []struct {
		name     string
		input    cty.Value
		typ      axistype.Type
		dtick    cty.Value
		expected cty.Value
	}{
		{name: "linear default", input: cty.NilVal, typ: axistype.Linear, dtick: cty.NumberIntVal(1), expected: cty.NumberIntVal(0)},
		{name: "linear number", input: cty.NumberIntVal(3), typ: axistype.Linear, dtick: cty.NumberIntVal(1), expected: cty.NumberFloatVal(3)},
		{name: "linear garbage", input: cty.StringVal("x"), typ: axistype.Linear, dtick: cty.NumberIntVal(1), expected: cty.NumberIntVal(0)},
		{name: "log digits", input: cty.NumberIntVal(3), typ: axistype.Log, dtick: cty.StringVal("D1"), expected: cty.NilVal},
		{name: "date default", input: cty.NilVal, typ: axistype.Date, dtick: cty.NumberIntVal(dates.OneDay), expected: cty.StringVal("2000-01-01")},
		{name: "date weekly default", input: cty.NilVal, typ: axistype.Date, dtick: cty.NumberIntVal(2 * oneWeek), expected: cty.StringVal("2000-01-02")},
		{name: "date string kept", input: cty.StringVal("2021-06-01"), typ: axistype.Date, dtick: cty.StringVal("M1"), expected: cty.StringVal("2021-06-01")},
		{name: "date millis", input: cty.NumberIntVal(dates.OneDay), typ: axistype.Date, dtick: cty.StringVal("M1"), expected: cty.StringVal("1970-01-02")},
		{name: "date garbage", input: cty.StringVal("soon"), typ: axistype.Date, dtick: cty.StringVal("M1"), expected: cty.StringVal("2000-01-01")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tick0(tc.input, tc.typ, tc.dtick)
			if container.IsNil(tc.expected) {
				assert.True(t, container.IsNil(got))
				return
			}
			assert.True(t, got.RawEquals(tc.expected), "got %#v", got)
		})
	}
}
