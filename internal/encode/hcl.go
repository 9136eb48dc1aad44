package encode

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// repeatedBlocks are list attributes written as one block per item.
var repeatedBlocks = map[string]bool{
	"rangebreaks":     true,
	"tickformatstops": true,
}

// encodeHCL writes the document in the layout syntax read by the hcl
// package, so a resolved layout can be loaded again.
func encodeHCL(doc Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	blocks := 0
	separate := func() {
		if blocks > 0 {
			root.AppendNewline()
		}
		blocks++
	}

	for _, a := range doc.Axes {
		separate()
		blk := root.AppendNewBlock("axis", []string{a.Name})
		if err := writeBody(blk.Body(), a.Attrs); err != nil {
			return nil, fmt.Errorf("axis %q: %w", a.Name, err)
		}
	}

	for i, tr := range doc.Data {
		if !tr.Type().IsObjectType() {
			return nil, fmt.Errorf("trace %d: must be an object", i)
		}
		typ := "scatter"
		attrs := tr.AsValueMap()
		if t, ok := attrs["type"]; ok && t.Type().Equals(cty.String) && !t.IsNull() {
			typ = t.AsString()
		}
		delete(attrs, "type")

		separate()
		blk := root.AppendNewBlock("trace", []string{typ})
		if err := writeBody(blk.Body(), cty.ObjectVal(attrs)); err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return f.Bytes(), nil
}

func writeBody(body *hclwrite.Body, obj cty.Value) error {
	if !obj.Type().IsObjectType() {
		return fmt.Errorf("expected an object, got %s", obj.Type().FriendlyName())
	}
	attrs := obj.AsValueMap()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	// Plain attributes first, then nested blocks.
	var blocks []string
	for _, name := range names {
		v := attrs[name]
		switch {
		case v.IsNull():
		case v.Type().IsObjectType() && len(v.Type().AttributeTypes()) > 0:
			blocks = append(blocks, name)
		case repeatedBlocks[name] && isObjectList(v):
			blocks = append(blocks, name)
		default:
			body.SetAttributeValue(name, v)
		}
	}

	for _, name := range blocks {
		v := attrs[name]
		if v.Type().IsObjectType() {
			if err := writeBody(body.AppendNewBlock(name, nil).Body(), v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		for i, item := range v.AsValueSlice() {
			if err := writeBody(body.AppendNewBlock(name, nil).Body(), item); err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}

func isObjectList(v cty.Value) bool {
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return false
	}
	if v.LengthInt() == 0 {
		return false
	}
	for _, item := range v.AsValueSlice() {
		if !item.Type().IsObjectType() {
			return false
		}
	}
	return true
}
