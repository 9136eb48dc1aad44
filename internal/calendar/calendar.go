// Package calendar resolves the world-calendar attribute of date axes.
//
// Every calendar in the schema enum is accepted and recorded, but date
// conversion is performed in the gregorian calendar regardless.
package calendar

import (
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Gregorian is the calendar used when nothing else is configured.
const Gregorian = "gregorian"

// ApplyDefaults resolves the calendar attribute called name (for axes
// usually "calendar") from in into out and returns it. An invalid or
// missing input falls back to dflt, the layout-wide calendar; an invalid
// dflt falls back to the schema default.
func ApplyDefaults(in, out *container.Container, name, dflt string) string {
	decl := schema.Axis().MustLookup("calendar")

	if raw, ok := in.Get(name); ok {
		if v, valid := decl.Validate(raw); valid {
			out.Set(name, v)
			return v.AsString()
		}
	}

	v, valid := decl.Validate(cty.StringVal(dflt))
	if !valid {
		v = decl.Default
	}
	out.Set(name, v)
	return v.AsString()
}

// Valid reports whether cal names a known calendar.
func Valid(cal string) bool {
	_, ok := schema.Axis().MustLookup("calendar").Validate(cty.StringVal(cal))
	return ok
}
