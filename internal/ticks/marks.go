package ticks

import (
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// MarkOptions configures MarkDefaults.
type MarkOptions struct {
	// OuterTicks makes "outside" the default tick style.
	OuterTicks bool
}

// MarkDefaults resolves the tick mark style. Explicit tick length, width or
// colour switch the default to "outside"; with no ticks those three
// attributes are removed again.
func MarkDefaults(in, out *container.Container, c container.Coercer, opts MarkOptions) {
	tickColorDflt := cty.NilVal
	if color := out.String("color"); color != "" {
		tickColorDflt = cty.StringVal(color)
	}

	styled := false
	for _, attr := range []struct {
		path string
		dflt cty.Value
	}{
		{path: "ticklen", dflt: cty.NilVal},
		{path: "tickwidth", dflt: cty.NilVal},
		{path: "tickcolor", dflt: tickColorDflt},
	} {
		if v, explicit := c.Coerce2(attr.path, attr.dflt); explicit && container.Truthy(v) {
			styled = true
		}
	}

	dflt := ""
	if opts.OuterTicks || styled {
		dflt = "outside"
	}
	if !container.Truthy(c.Coerce("ticks", cty.StringVal(dflt))) {
		out.Delete("ticklen", "tickwidth", "tickcolor")
	}
}
