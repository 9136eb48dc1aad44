package categoryorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

func TestDefaults(t *testing.T) {
	abc := cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b"), cty.StringVal("c")})

	testCases := []struct {
		name          string
		typ           axistype.Type
		in            map[string]cty.Value
		expectedOrder string
		expectArray   bool
	}{
		{name: "not categorical", typ: axistype.Linear, in: map[string]cty.Value{"categoryarray": abc}},
		{name: "default trace", typ: axistype.Category, in: map[string]cty.Value{}, expectedOrder: "trace"},
		{name: "array implied", typ: axistype.Category, in: map[string]cty.Value{"categoryarray": abc}, expectedOrder: "array", expectArray: true},
		{name: "multicategory too", typ: axistype.MultiCategory, in: map[string]cty.Value{"categoryarray": abc}, expectedOrder: "array", expectArray: true},
		{name: "explicit order ignores array", typ: axistype.Category, in: map[string]cty.Value{
			"categoryarray": abc,
			"categoryorder": cty.StringVal("category descending"),
		}, expectedOrder: "category descending"},
		{name: "array without array", typ: axistype.Category, in: map[string]cty.Value{
			"categoryorder": cty.StringVal("array"),
		}, expectedOrder: "trace"},
		{name: "array with empty array", typ: axistype.Category, in: map[string]cty.Value{
			"categoryorder": cty.StringVal("array"),
			"categoryarray": cty.EmptyTupleVal,
		}, expectedOrder: "trace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := container.FromObject(cty.ObjectVal(tc.in))
			require.NoError(t, err)
			out := container.New()

			Defaults(in, out, container.NewCoercer(in, out, schema.Axis()), tc.typ)

			assert.Equal(t, tc.expectedOrder, out.String("categoryorder"))
			assert.Equal(t, tc.expectArray, out.Has("categoryarray"))
		})
	}
}
