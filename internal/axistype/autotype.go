package axistype

import (
	"github.com/vk/axisdefaults/internal/dates"
	"github.com/zclconf/go-cty/cty"
)

// Autotype infers an axis type from the values plotted on it:
//   - nested lists mean a multi-category axis;
//   - dates outnumbering numbers two to one mean a date axis;
//   - non-numeric strings outnumbering numbers two to one mean a category axis;
//   - any number means a linear axis.
//
// With no usable values the axis stays a Placeholder.
func Autotype(values []cty.Value) Type {
	if len(values) == 0 {
		return Placeholder
	}
	if isMultiCategory(values) {
		return MultiCategory
	}

	var numbers, dateCount, categories int
	for _, v := range values {
		if v.IsNull() || !v.IsKnown() {
			continue
		}
		switch {
		case v.Type().Equals(cty.Number):
			numbers++
		case v.Type().Equals(cty.String):
			s := v.AsString()
			switch {
			case isNumericString(s):
				numbers++
			case dates.IsDate(s):
				dateCount++
			case s != "":
				categories++
			}
		}
	}

	switch {
	case dateCount > 2*numbers:
		return Date
	case categories > 2*numbers:
		return Category
	case numbers > 0:
		return Linear
	default:
		return Placeholder
	}
}

func isMultiCategory(values []cty.Value) bool {
	first := values[0]
	if first.IsNull() || !first.IsKnown() {
		return false
	}
	ty := first.Type()
	return ty.IsTupleType() || ty.IsListType()
}

// isNumericString mirrors the looseness of numeric input: a year like
// "2020" is still a number, which is why dates must dominate by two to one.
func isNumericString(s string) bool {
	v, err := cty.ParseNumberVal(s)
	return err == nil && !v.IsNull()
}
