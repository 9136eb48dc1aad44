// Package categoryorder resolves how the categories of a category axis
// are ordered.
package categoryorder

import (
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// Defaults resolves categoryorder and categoryarray on category and
// multicategory axes; other axis types are left alone. A non-empty input
// categoryarray makes "array" the default order, and "array" without a
// usable array falls back to "trace".
func Defaults(in, out *container.Container, c container.Coercer, typ axistype.Type) {
	if !typ.IsCategorical() {
		return
	}

	dflt := cty.NilVal
	if raw, _ := in.Get("categoryarray"); nonEmptyList(raw) {
		dflt = cty.StringVal("array")
	}

	order := c.Coerce("categoryorder", dflt)
	if container.IsNil(order) || order.AsString() != "array" {
		return
	}
	if !nonEmptyList(c.Coerce("categoryarray", cty.NilVal)) {
		out.Set("categoryorder", cty.StringVal("trace"))
		out.Delete("categoryarray")
	}
}

func nonEmptyList(v cty.Value) bool {
	if container.IsNil(v) || v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return false
	}
	return v.LengthInt() > 0
}
