package container

import (
	"math"

	"github.com/zclconf/go-cty/cty"
)

// Bool returns the boolean at path, false when absent or not a bool.
func (c *Container) Bool(path string) bool {
	v, ok := c.values[path]
	if !ok || !v.Type().Equals(cty.Bool) {
		return false
	}
	return v.True()
}

// String returns the string at path, "" when absent or not a string.
func (c *Container) String(path string) string {
	v, ok := c.values[path]
	if !ok || !v.Type().Equals(cty.String) {
		return ""
	}
	return v.AsString()
}

// Float returns the number at path.
func (c *Container) Float(path string) (float64, bool) {
	v, ok := c.values[path]
	if !ok || !v.Type().Equals(cty.Number) {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

// Truthy reports whether the value at path counts as set: true, a non-empty
// string, a non-zero number or any collection.
func (c *Container) Truthy(path string) bool {
	v, ok := c.values[path]
	if !ok {
		return false
	}
	return Truthy(v)
}

// Truthy reports whether v counts as set. Null and cty.NilVal are not.
func Truthy(v cty.Value) bool {
	if v.Type() == cty.NilType || v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	switch {
	case ty.Equals(cty.Bool):
		return v.True()
	case ty.Equals(cty.String):
		return v.AsString() != ""
	case ty.Equals(cty.Number):
		return v.AsBigFloat().Sign() != 0
	default:
		return true
	}
}

// IsNil reports whether v is cty.NilVal, the "no value" marker used for
// omitted defaults.
func IsNil(v cty.Value) bool {
	return v.Type() == cty.NilType
}

// Number reads v as a finite float64. Numbers and numeric strings such as
// "2.5" are accepted; null, unknown, other types and values that overflow
// float64 are not.
func Number(v cty.Value) (float64, bool) {
	if IsNil(v) || v.IsNull() || !v.IsKnown() {
		return 0, false
	}
	num := v
	switch {
	case v.Type().Equals(cty.Number):
	case v.Type().Equals(cty.String):
		n, err := cty.ParseNumberVal(v.AsString())
		if err != nil {
			return 0, false
		}
		num = n
	default:
		return 0, false
	}
	f, _ := num.AsBigFloat().Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
