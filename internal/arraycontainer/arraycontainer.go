// Package arraycontainer applies per-item defaults to attributes that hold
// a list of objects, such as `rangebreaks` or `tickformatstops`.
package arraycontainer

import (
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// ItemDefaults resolves one item. It is only called for items that are
// plain objects.
type ItemDefaults func(itemIn, itemOut *container.Container)

// Options configures Defaults.
type Options struct {
	// Name is the list attribute on the parent, e.g. "rangebreaks".
	Name string
	// InclusionAttr is the item attribute set to false for items that are
	// not objects, usually "enabled".
	InclusionAttr string
	// HandleItem resolves each object item.
	HandleItem ItemDefaults
}

// Defaults reads the list at opts.Name from parentIn and stores one output
// item per input element on parentOut, keeping input order. Each output
// item records its position via SetIndex. Elements that are not objects
// produce an item with only the inclusion attribute set to false. A
// missing or non-list attribute produces an empty list.
func Defaults(parentIn, parentOut *container.Container, opts Options) []*container.Container {
	var elems []cty.Value
	if raw, ok := parentIn.Get(opts.Name); ok && isList(raw) {
		elems = raw.AsValueSlice()
	}

	items := make([]*container.Container, 0, len(elems))
	for i, elem := range elems {
		itemOut := container.New()
		itemOut.SetIndex(i)

		itemIn, ok := asObject(elem)
		if !ok {
			itemOut.Set(opts.InclusionAttr, cty.False)
		} else if opts.HandleItem != nil {
			opts.HandleItem(itemIn, itemOut)
		}
		items = append(items, itemOut)
	}

	parentOut.SetItems(opts.Name, items)
	return items
}

func isList(v cty.Value) bool {
	if v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	return ty.IsListType() || ty.IsTupleType() || ty.IsSetType()
}

func asObject(v cty.Value) (*container.Container, bool) {
	if v.IsNull() || !v.IsKnown() {
		return nil, false
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, false
	}
	c, err := container.FromObject(v)
	if err != nil {
		return nil, false
	}
	return c, true
}
