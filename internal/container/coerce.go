package container

import (
	"github.com/vk/axisdefaults/internal/attrpath"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Coercer is the coercion contract every resolver consumes. Coerce reads
// the input value at path, keeps it if the schema accepts it and otherwise
// falls back to dflt (or the schema default when dflt is cty.NilVal). The
// chosen value is written to the output and returned. When there is neither
// a valid input nor a default, nothing is written and cty.NilVal is
// returned.
type Coercer interface {
	Coerce(path string, dflt cty.Value) cty.Value
	// Coerce2 behaves like Coerce and additionally reports whether the
	// result came from a valid, explicitly supplied input value.
	Coerce2(path string, dflt cty.Value) (cty.Value, bool)
	// Attribute returns the schema declaration behind path.
	Attribute(path string) *schema.Attribute
}

// SchemaCoercer implements Coercer against a schema registry.
type SchemaCoercer struct {
	in  *Container
	out *Container
	reg *schema.Registry
}

// NewCoercer binds an input and output container to a registry.
func NewCoercer(in, out *Container, reg *schema.Registry) *SchemaCoercer {
	return &SchemaCoercer{in: in, out: out, reg: reg}
}

// Coerce implements Coercer.
func (c *SchemaCoercer) Coerce(path string, dflt cty.Value) cty.Value {
	v, _ := c.coerce(path, dflt)
	return v
}

// Coerce2 implements Coercer.
func (c *SchemaCoercer) Coerce2(path string, dflt cty.Value) (cty.Value, bool) {
	return c.coerce(path, dflt)
}

// Attribute implements Coercer.
func (c *SchemaCoercer) Attribute(path string) *schema.Attribute {
	return c.reg.MustLookup(path)
}

func (c *SchemaCoercer) coerce(path string, dflt cty.Value) (cty.Value, bool) {
	attr := c.reg.MustLookup(path)
	if IsNil(dflt) {
		dflt = attr.Default
	}

	if raw, ok := c.in.Get(path); ok {
		if v, valid := attr.Validate(raw); valid {
			c.out.Set(path, v)
			return v, true
		}
	}

	c.out.Set(path, dflt)
	return dflt, false
}

// Font is a family/size/colour triple used for font defaults.
type Font struct {
	Family string
	Size   float64
	Color  string
}

// CoerceFont resolves the three attributes of the font object at path,
// each defaulting to the matching field of dflt. Zero fields mean "no
// default".
func CoerceFont(c Coercer, path string, dflt Font) Font {
	var out Font

	family := c.Coerce(attrpath.Join(path, "family"), stringOrNil(dflt.Family))
	if !IsNil(family) {
		out.Family = family.AsString()
	}

	sizeDflt := cty.NilVal
	if dflt.Size > 0 {
		sizeDflt = cty.NumberFloatVal(dflt.Size)
	}
	size := c.Coerce(attrpath.Join(path, "size"), sizeDflt)
	if !IsNil(size) {
		out.Size, _ = size.AsBigFloat().Float64()
	}

	color := c.Coerce(attrpath.Join(path, "color"), stringOrNil(dflt.Color))
	if !IsNil(color) {
		out.Color = color.AsString()
	}
	return out
}

func stringOrNil(s string) cty.Value {
	if s == "" {
		return cty.NilVal
	}
	return cty.StringVal(s)
}
