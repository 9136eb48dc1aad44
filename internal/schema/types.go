package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Format refines an attribute's primitive type.
type Format string

const (
	FormatNone    Format = ""
	FormatColor   Format = "color"
	FormatInteger Format = "integer"
	FormatAngle   Format = "angle"
)

// scalarLength marks an attribute that is not an array.
const scalarLength = -1

// Attribute is the resolved declaration of a single axis attribute.
type Attribute struct {
	Path        string
	Type        cty.Type // element type when the attribute is an array
	Format      Format
	Values      []cty.Value
	Min         *float64
	Max         *float64
	Length      int // scalarLength, 0 for free-length arrays, n for fixed
	NoBlank     bool
	Default     cty.Value // cty.NilVal when the attribute has no default
	Description string
}

// HasDefault reports whether the attribute declares a built-in default.
func (a *Attribute) HasDefault() bool {
	return a.Default.Type() != cty.NilType
}

// IsArray reports whether the attribute holds a list of values.
func (a *Attribute) IsArray() bool {
	return a.Length != scalarLength
}

// IsEnum reports whether the attribute is restricted to a set of values.
func (a *Attribute) IsEnum() bool {
	return len(a.Values) > 0
}
