package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// listBlocks are block types that always decode to a list of objects.
var listBlocks = map[string]bool{
	"rangebreaks":     true,
	"tickformatstops": true,
}

// decodeFile translates a parsed file into the document object understood
// by config.Decode and decodes it.
func decodeFile(f *hcl.File) (*config.Model, config.Settings, error) {
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, config.Settings{}, fmt.Errorf("unsupported HCL body type %T", f.Body)
	}

	doc, diags := translateRoot(body)
	if diags.HasErrors() {
		return nil, config.Settings{}, diags
	}
	return config.Decode(doc)
}

func translateRoot(body *hclsyntax.Body) (cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	root := make(map[string]cty.Value)
	axes := make(map[string]cty.Value)
	var traces []cty.Value

	for name, attr := range body.Attributes {
		v, d := attr.Expr.Value(nil)
		diags = append(diags, d...)
		root[name] = v
	}

	for _, blk := range body.Blocks {
		switch blk.Type {
		case "axis":
			if len(blk.Labels) != 1 {
				diags = append(diags, labelDiag(blk, "axis blocks take exactly one label, the axis name"))
				continue
			}
			name := blk.Labels[0]
			if _, dup := axes[name]; dup {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate axis block",
					Detail:   fmt.Sprintf("Axis %q is declared more than once in this file.", name),
					Subject:  blk.LabelRanges[0].Ptr(),
				})
				continue
			}
			v, d := translateBody(blk.Body)
			diags = append(diags, d...)
			axes[name] = v

		case "trace":
			if len(blk.Labels) != 1 {
				diags = append(diags, labelDiag(blk, "trace blocks take exactly one label, the trace type"))
				continue
			}
			v, d := translateBody(blk.Body)
			diags = append(diags, d...)
			if v.Type().HasAttribute("type") {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Redundant trace type",
					Detail:   "The trace type is given by the block label; remove the type attribute.",
					Subject:  blk.DefRange().Ptr(),
				})
				continue
			}
			attrs := v.AsValueMap()
			if attrs == nil {
				attrs = make(map[string]cty.Value)
			}
			attrs["type"] = cty.StringVal(blk.Labels[0])
			traces = append(traces, cty.ObjectVal(attrs))

		case "font":
			if len(blk.Labels) != 0 {
				diags = append(diags, labelDiag(blk, "font blocks take no labels"))
				continue
			}
			v, d := translateBody(blk.Body)
			diags = append(diags, d...)
			root["font"] = v

		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", blk.Type),
				Subject:  blk.TypeRange.Ptr(),
			})
		}
	}

	if len(axes) > 0 {
		root["axes"] = cty.ObjectVal(axes)
	}
	if len(traces) > 0 {
		root["data"] = cty.TupleVal(traces)
	}
	return cty.ObjectVal(root), diags
}

// translateBody evaluates a block body into an object. Expressions are
// evaluated without variables or functions.
func translateBody(body *hclsyntax.Body) (cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	attrs := make(map[string]cty.Value)

	for name, attr := range body.Attributes {
		v, d := attr.Expr.Value(nil)
		diags = append(diags, d...)
		attrs[name] = v
	}

	grouped := make(map[string][]cty.Value)
	for _, blk := range body.Blocks {
		if len(blk.Labels) != 0 {
			diags = append(diags, labelDiag(blk, "nested blocks take no labels"))
			continue
		}
		if _, clash := attrs[blk.Type]; clash {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Attribute redefined",
				Detail:   fmt.Sprintf("%q is set both as an attribute and as a block.", blk.Type),
				Subject:  blk.TypeRange.Ptr(),
			})
			continue
		}
		if len(grouped[blk.Type]) > 0 && !listBlocks[blk.Type] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate block",
				Detail:   fmt.Sprintf("Only one %q block is allowed here.", blk.Type),
				Subject:  blk.TypeRange.Ptr(),
			})
			continue
		}
		v, d := translateBody(blk.Body)
		diags = append(diags, d...)
		grouped[blk.Type] = append(grouped[blk.Type], v)
	}

	for name, vals := range grouped {
		if listBlocks[name] {
			attrs[name] = cty.TupleVal(vals)
		} else {
			attrs[name] = vals[0]
		}
	}
	return cty.ObjectVal(attrs), diags
}

func labelDiag(blk *hclsyntax.Block, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Wrong number of block labels",
		Detail:   detail,
		Subject:  blk.DefRange().Ptr(),
	}
}
