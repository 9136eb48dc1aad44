package rangebreak

import (
	"math"
	"strings"

	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// dayIndex maps the three letter prefix of a day name to its index.
var dayIndex = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// Resolve defaults and validates one range break entry, writing into
// itemOut. An entry that is disabled, that would hide the whole fixed range
// of its axis, or that has neither bounds nor values ends with
// `enabled = false` and resolves nothing further.
func Resolve(itemIn, itemOut *container.Container, parent Parent) {
	c := container.NewCoercer(itemIn, itemOut, schema.Axis().Sub("rangebreaks"))

	if !container.Truthy(c.Coerce("enabled", cty.NilVal)) {
		return
	}

	bounds := c.Coerce("bounds", cty.NilVal)
	if !container.IsNil(bounds) && bounds.LengthInt() >= 2 {
		elems := bounds.AsValueSlice()
		if len(elems) > 2 {
			elems = elems[:2]
			itemOut.Set("bounds", cty.TupleVal(elems))
		}

		if swallowsRange(elems, parent) {
			itemOut.Set("enabled", cty.False)
			return
		}

		pattern := Pattern(c.Coerce("pattern", patternDefault(elems)).AsString())
		if normalised, ok := normaliseBounds(elems, pattern); ok {
			itemOut.Set("bounds", cty.TupleVal(normalised))
		} else {
			itemOut.Set("enabled", cty.False)
		}
		return
	}

	values := c.Coerce("values", cty.NilVal)
	if !container.IsNil(values) && values.LengthInt() > 0 {
		c.Coerce("dvalue", cty.NilVal)
		return
	}

	itemOut.Set("enabled", cty.False)
}

// swallowsRange reports whether bounds strictly contain the parent's fixed
// range. A range stored high-to-low flips the comparison.
func swallowsRange(bounds []cty.Value, parent Parent) bool {
	if parent == nil {
		return false
	}
	r0, r1, ok := parent.FixedRange()
	if !ok {
		return false
	}
	lo, okLo := parent.ToLinear(bounds[0])
	hi, okHi := parent.ToLinear(bounds[1])
	if !okLo || !okHi {
		return false
	}

	if r0 < r1 {
		return lo < r0 && hi > r1
	}
	return lo > r0 && hi < r1
}

func patternDefault(bounds []cty.Value) cty.Value {
	for _, b := range bounds {
		if _, ok := dayOf(b); ok {
			return cty.StringVal(string(PatternDayOfWeek))
		}
	}
	return cty.StringVal(string(PatternNone))
}

// normaliseBounds converts patterned bounds to numbers and checks their
// ranges. Plain bounds are returned untouched.
func normaliseBounds(bounds []cty.Value, pattern Pattern) ([]cty.Value, bool) {
	switch pattern {
	case PatternNone:
		return bounds, true

	case PatternDayOfWeek:
		out := make([]cty.Value, len(bounds))
		for i, b := range bounds {
			if day, ok := dayOf(b); ok {
				out[i] = cty.NumberIntVal(int64(day))
				continue
			}
			f, ok := container.Number(b)
			if !ok || f != math.Trunc(f) || f < 0 || f >= 7 {
				return nil, false
			}
			out[i] = cty.NumberFloatVal(f)
		}
		return out, true

	case PatternHour:
		out := make([]cty.Value, len(bounds))
		for i, b := range bounds {
			f, ok := container.Number(b)
			if !ok || f < 0 || f > 24 {
				return nil, false
			}
			out[i] = cty.NumberFloatVal(f)
		}
		return out, true

	default:
		return nil, false
	}
}

// dayOf reads a day name such as "sat" or "Saturday".
func dayOf(v cty.Value) (int, bool) {
	if !v.Type().Equals(cty.String) {
		return 0, false
	}
	s := strings.ToLower(v.AsString())
	if len(s) < 3 {
		return 0, false
	}
	day, ok := dayIndex[s[:3]]
	return day, ok
}
