package schema

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/axisdefaults/internal/attrpath"
	"github.com/vk/axisdefaults/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// manifest is the top-level structure of a schema manifest file.
type manifest struct {
	Attributes []*attributeBlock `hcl:"attribute,block"`
}

// attributeBlock is one `attribute "<path>" { ... }` declaration.
type attributeBlock struct {
	Path        string         `hcl:"path,label"`
	Type        hcl.Expression `hcl:"type"`
	Format      string         `hcl:"format,optional"`
	Values      hcl.Expression `hcl:"values,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Min         *float64       `hcl:"min,optional"`
	Max         *float64       `hcl:"max,optional"`
	Length      *int           `hcl:"length,optional"`
	NoBlank     bool           `hcl:"no_blank,optional"`
	Description string         `hcl:"description,optional"`
}

// Parse reads a schema manifest and returns the registry it declares.
func Parse(ctx context.Context, src []byte, filename string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing schema manifest.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema manifest %s: %w", filename, diags)
	}

	var m manifest
	diags = gohcl.DecodeBody(file.Body, nil, &m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema manifest %s: %w", filename, diags)
	}

	reg := newRegistry()
	for _, block := range m.Attributes {
		attr, err := translateAttribute(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filename, err)
		}
		if err := reg.add(attr); err != nil {
			return nil, fmt.Errorf("in %s: %w", filename, err)
		}
	}

	logger.Debug("Schema manifest parsed.", "file", filename, "attributes", len(reg.order))
	return reg, nil
}

// translateAttribute turns a decoded block into an Attribute, checking that
// its declared default satisfies its own constraints.
func translateAttribute(ctx context.Context, block *attributeBlock) (*Attribute, error) {
	if _, err := attrpath.Parse(block.Path); err != nil {
		return nil, fmt.Errorf("attribute %q: %w", block.Path, err)
	}

	ty, err := typeExprToCtyType(ctx, block.Type)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", block.Path, err)
	}

	attr := &Attribute{
		Path:        block.Path,
		Type:        ty,
		Format:      Format(block.Format),
		Min:         block.Min,
		Max:         block.Max,
		Length:      scalarLength,
		NoBlank:     block.NoBlank,
		Default:     cty.NilVal,
		Description: block.Description,
	}

	switch attr.Format {
	case FormatNone, FormatColor, FormatInteger, FormatAngle:
	default:
		return nil, fmt.Errorf("attribute %q: unknown format %q", block.Path, block.Format)
	}

	if block.Length != nil {
		if *block.Length < 0 {
			return nil, fmt.Errorf("attribute %q: length cannot be negative", block.Path)
		}
		attr.Length = *block.Length
	}

	if isExprDefined(ctx, block.Values, "values") {
		val, diags := block.Values.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid values for attribute %q: %w", block.Path, diags)
		}
		if !val.Type().IsTupleType() && !val.Type().IsListType() {
			return nil, fmt.Errorf("values for attribute %q must be a list, got %s", block.Path, val.Type().FriendlyName())
		}
		attr.Values = val.AsValueSlice()
	}

	if isExprDefined(ctx, block.Default, "default") {
		val, diags := block.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid default for attribute %q: %w", block.Path, diags)
		}
		if !val.IsNull() {
			checked, ok := attr.Validate(val)
			if !ok {
				return nil, fmt.Errorf("default %s for attribute %q does not satisfy its own declaration", val.GoString(), block.Path)
			}
			attr.Default = checked
		}
	}

	return attr, nil
}
