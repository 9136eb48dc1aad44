package ticks

import (
	"math"

	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/dates"
	"github.com/zclconf/go-cty/cty"
)

const oneWeek = 7 * dates.OneDay

// ValueDefaults resolves tickmode and the attributes that go with it.
// The default mode is "array" when tickvals are supplied, "linear" when a
// dtick is and "auto" otherwise. Linear mode writes a cleaned dtick and
// tick0; array mode without usable tickvals falls back to auto.
func ValueDefaults(in, out *container.Container, c container.Coercer, typ axistype.Type) {
	tick0, _ := in.Get("tick0")
	dtick, _ := in.Get("dtick")
	tickvals, _ := in.Get("tickvals")

	modeDflt := "auto"
	switch {
	case isList(tickvals):
		modeDflt = "array"
	case container.Truthy(dtick):
		modeDflt = "linear"
	}

	switch c.Coerce("tickmode", cty.StringVal(modeDflt)).AsString() {
	case "auto":
		c.Coerce("nticks", cty.NilVal)
	case "linear":
		d := DTick(dtick, typ)
		out.Set("dtick", d)
		out.Set("tick0", Tick0(tick0, typ, d))
	case "array":
		if typ == axistype.MultiCategory {
			return
		}
		if container.IsNil(c.Coerce("tickvals", cty.NilVal)) {
			out.Set("tickmode", cty.StringVal("auto"))
			return
		}
		c.Coerce("ticktext", cty.NilVal)
	}
}

// DTick cleans a tick spacing for an axis of type typ. Numbers must be
// positive (and are rounded to whole categories on category axes). Date
// axes also accept "M<n>" (every n months) and log axes "L<f>" (linear
// steps of f) and "D1"/"D2" (log digits). Anything else gives the default:
// one day on date axes, 1 elsewhere.
func DTick(dtick cty.Value, typ axistype.Type) cty.Value {
	dflt := cty.NumberIntVal(1)
	if typ == axistype.Date {
		dflt = cty.NumberIntVal(dates.OneDay)
	}
	if !container.Truthy(dtick) {
		return dflt
	}

	if f, ok := container.Number(dtick); ok {
		switch {
		case f <= 0:
			return dflt
		case typ == axistype.Category:
			return cty.NumberFloatVal(math.Max(1, math.Floor(f+0.5)))
		default:
			return cty.NumberFloatVal(f)
		}
	}

	if !dtick.Type().Equals(cty.String) || (typ != axistype.Date && typ != axistype.Log) {
		return dflt
	}
	s := dtick.AsString()
	prefix := s[:1]
	n, ok := container.Number(cty.StringVal(s[1:]))
	if !ok || n <= 0 {
		return dflt
	}

	switch {
	case typ == axistype.Date && prefix == "M" && n == math.Round(n):
	case typ == axistype.Log && prefix == "L":
	case typ == axistype.Log && prefix == "D" && (n == 1 || n == 2):
	default:
		return dflt
	}
	return dtick
}

// Tick0 cleans the first tick position. Date axes keep a valid date,
// convert milliseconds to a date string and otherwise start on
// 2000-01-01 (2000-01-02, a Sunday, when dtick is a whole number of
// weeks). Log digit spacing has no tick0 at all and returns cty.NilVal.
func Tick0(tick0 cty.Value, typ axistype.Type, dtick cty.Value) cty.Value {
	if typ == axistype.Date {
		dflt := "2000-01-01"
		if d, ok := container.Number(dtick); ok && math.Mod(d, oneWeek) == 0 {
			dflt = "2000-01-02"
		}
		return cleanDate(tick0, dflt)
	}

	if dtick.Type().Equals(cty.String) {
		if s := dtick.AsString(); s == "D1" || s == "D2" {
			return cty.NilVal
		}
	}
	if f, ok := container.Number(tick0); ok {
		return cty.NumberFloatVal(f)
	}
	return cty.NumberIntVal(0)
}

func cleanDate(v cty.Value, dflt string) cty.Value {
	if container.IsNil(v) || v.IsNull() {
		return cty.StringVal(dflt)
	}
	switch {
	case v.Type().Equals(cty.Number):
		ms, _ := v.AsBigFloat().Float64()
		return cty.StringVal(dates.Format(ms))
	case v.Type().Equals(cty.String) && dates.IsDate(v.AsString()):
		return v
	default:
		return cty.StringVal(dflt)
	}
}

func isList(v cty.Value) bool {
	if container.IsNil(v) || v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	return ty.IsListType() || ty.IsTupleType() || ty.IsSetType()
}
