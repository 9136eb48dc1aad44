// Package axistype defines the closed set of axis types and the data-driven
// type inference applied when a layout leaves the type unset.
package axistype

import "fmt"

// Type is the semantic type of an axis.
type Type int

const (
	// Placeholder is the unresolved `-` type: no data told us what the axis is.
	Placeholder Type = iota
	Linear
	Log
	Date
	Category
	MultiCategory
)

var names = [...]string{
	Placeholder:   "-",
	Linear:        "linear",
	Log:           "log",
	Date:          "date",
	Category:      "category",
	MultiCategory: "multicategory",
}

// String returns the attribute value spelling of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// Parse maps an attribute value to its Type.
func Parse(s string) (Type, error) {
	for t, name := range names {
		if name == s {
			return Type(t), nil
		}
	}
	return Placeholder, fmt.Errorf("unknown axis type %q", s)
}

// IsCategorical reports whether values on the axis are categories.
func (t Type) IsCategorical() bool {
	switch t {
	case Category, MultiCategory:
		return true
	case Placeholder, Linear, Log, Date:
		return false
	default:
		panic(fmt.Sprintf("axistype: unhandled type %v", t))
	}
}
