package schema

import (
	"math"
	"strings"

	"github.com/vk/axisdefaults/internal/colors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Validate checks v against the attribute declaration. It returns the value
// in its canonical form (converted, truncated or normalised) and whether v
// was acceptable at all. Null and unknown values are never acceptable.
func (a *Attribute) Validate(v cty.Value) (cty.Value, bool) {
	if v.Type() == cty.NilType || v.IsNull() || !v.IsWhollyKnown() {
		return cty.NilVal, false
	}
	if a.IsArray() {
		return a.validateArray(v)
	}
	return a.validateScalar(v)
}

func (a *Attribute) validateArray(v cty.Value) (cty.Value, bool) {
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return cty.NilVal, false
	}

	elems := v.AsValueSlice()
	if a.Length > 0 {
		if len(elems) < a.Length {
			return cty.NilVal, false
		}
		elems = elems[:a.Length]
	}

	out := make([]cty.Value, 0, len(elems))
	for _, elem := range elems {
		if elem.IsNull() {
			return cty.NilVal, false
		}
		checked, ok := a.validateScalar(elem)
		if !ok {
			return cty.NilVal, false
		}
		out = append(out, checked)
	}
	if len(out) == 0 {
		return cty.EmptyTupleVal, true
	}
	return cty.TupleVal(out), true
}

func (a *Attribute) validateScalar(v cty.Value) (cty.Value, bool) {
	if a.IsEnum() {
		for _, allowed := range a.Values {
			if allowed.Type().Equals(v.Type()) && allowed.RawEquals(v) {
				return allowed, true
			}
		}
		return cty.NilVal, false
	}

	switch a.Format {
	case FormatAngle:
		if v.Type().Equals(cty.String) && v.AsString() == "auto" {
			return v, true
		}
		f, ok := toFloat(v)
		if !ok {
			return cty.NilVal, false
		}
		return cty.NumberFloatVal(modHalf(f, 360)), true
	case FormatColor:
		if !v.Type().Equals(cty.String) || !colors.Valid(v.AsString()) {
			return cty.NilVal, false
		}
		return v, true
	}

	switch {
	case a.Type.Equals(cty.Bool):
		if !v.Type().Equals(cty.Bool) {
			return cty.NilVal, false
		}
		return v, true

	case a.Type.Equals(cty.Number):
		f, ok := toFloat(v)
		if !ok {
			return cty.NilVal, false
		}
		if a.Min != nil && f < *a.Min {
			return cty.NilVal, false
		}
		if a.Max != nil && f > *a.Max {
			return cty.NilVal, false
		}
		if a.Format == FormatInteger && f != math.Trunc(f) {
			return cty.NilVal, false
		}
		return cty.NumberFloatVal(f), true

	case a.Type.Equals(cty.String):
		// Numbers are accepted and rendered as strings; everything else is not.
		if !v.Type().Equals(cty.String) && !v.Type().Equals(cty.Number) {
			return cty.NilVal, false
		}
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return cty.NilVal, false
		}
		if a.NoBlank && strings.TrimSpace(s.AsString()) == "" {
			return cty.NilVal, false
		}
		return s, true

	default:
		return v, true
	}
}

// toFloat converts numbers and numeric strings to a finite float64.
func toFloat(v cty.Value) (float64, bool) {
	if !v.Type().Equals(cty.Number) && !v.Type().Equals(cty.String) {
		return 0, false
	}
	n, err := convert.Convert(v, cty.Number)
	if err != nil || n.IsNull() {
		return 0, false
	}
	f, _ := n.AsBigFloat().Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// modHalf wraps v into [-period/2, period/2] by whole periods.
func modHalf(v, period float64) float64 {
	if math.Abs(v) <= period/2 {
		return v
	}
	return v - math.Floor(v/period+0.5)*period
}
