// Package linegrid resolves the axis line, grid line and zero line
// attributes of an axis.
package linegrid

import (
	"github.com/vk/axisdefaults/internal/colors"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// LightFraction is how far (in percent) the default grid colour is blended
// from the axis colour toward the background.
const LightFraction = 100 * float64(0xe-0x4) / float64(0xf-0x4)

// Options configures Defaults.
type Options struct {
	// DfltColor is the axis colour, default for the line and zero line.
	DfltColor string
	// BgColor is the plot background the grid colour is blended toward.
	BgColor string
	// ShowLine turns the axis line on by default.
	ShowLine bool
	// ShowGrid turns grid and zero lines on by default.
	ShowGrid bool
	// NoZeroLine skips the zero line attributes.
	NoZeroLine bool
}

// Defaults resolves showline, showgrid and zeroline together with their
// colour and width. Explicit styling of a line turns it on by default; a
// line that ends up hidden has its styling removed.
func Defaults(in, out *container.Container, c container.Coercer, opts Options) {
	group(out, c, "showline", opts.ShowLine,
		styled{"linecolor", colorOrNil(opts.DfltColor)},
		styled{"linewidth", cty.NilVal},
	)

	gridColor := colorOrNil(colors.Mix(opts.DfltColor, opts.BgColor, LightFraction))
	group(out, c, "showgrid", opts.ShowGrid,
		styled{"gridcolor", gridColor},
		styled{"gridwidth", cty.NilVal},
	)

	if !opts.NoZeroLine {
		group(out, c, "zeroline", opts.ShowGrid,
			styled{"zerolinecolor", colorOrNil(opts.DfltColor)},
			styled{"zerolinewidth", cty.NilVal},
		)
	}
}

type styled struct {
	path string
	dflt cty.Value
}

func group(out *container.Container, c container.Coercer, show string, showDflt bool, attrs ...styled) {
	for _, attr := range attrs {
		if v, explicit := c.Coerce2(attr.path, attr.dflt); explicit && container.Truthy(v) {
			showDflt = true
		}
	}
	if container.Truthy(c.Coerce(show, cty.BoolVal(showDflt))) {
		return
	}
	for _, attr := range attrs {
		out.Delete(attr.path)
	}
}

func colorOrNil(s string) cty.Value {
	if s == "" || !colors.Valid(s) {
		return cty.NilVal
	}
	return cty.StringVal(s)
}
