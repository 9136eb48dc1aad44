package rangebreak

import (
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// Decode converts a resolved entry into its Break form. Disabled entries
// and entries without usable bounds or values yield false.
func Decode(item *container.Container) (Break, bool) {
	if !item.Bool("enabled") {
		return nil, false
	}

	if bounds, ok := item.Get("bounds"); ok && bounds.LengthInt() >= 2 {
		elems := bounds.AsValueSlice()
		return BoundsBreak{
			Lo:      elems[0],
			Hi:      elems[1],
			Pattern: Pattern(item.String("pattern")),
		}, true
	}

	values, ok := item.Get("values")
	if !ok || values.LengthInt() == 0 {
		return nil, false
	}
	dvalue, _ := item.Float("dvalue")
	return ValuesBreak{Values: values.AsValueSlice(), DValue: dvalue}, true
}

// Encode writes b back into a fresh entry container, the inverse of Decode.
func Encode(b Break) *container.Container {
	item := container.New()
	item.Set("enabled", cty.True)
	switch brk := b.(type) {
	case BoundsBreak:
		item.Set("bounds", cty.TupleVal([]cty.Value{brk.Lo, brk.Hi}))
		item.Set("pattern", cty.StringVal(string(brk.Pattern)))
	case ValuesBreak:
		item.Set("values", cty.TupleVal(brk.Values))
		item.Set("dvalue", cty.NumberFloatVal(brk.DValue))
	}
	return item
}
