package ticks

import (
	"github.com/vk/axisdefaults/internal/arraycontainer"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Pass selects which half of the tick label defaults to run.
type Pass int

const (
	// AllPasses runs both halves in order.
	AllPasses Pass = iota
	// PrefixSuffixPass resolves tick prefixes and suffixes. It runs before
	// the visibility short-circuit of the axis resolver.
	PrefixSuffixPass
	// FormatPass resolves label visibility, font, angle and number format.
	FormatPass
)

// LabelOptions carries inherited settings for tick labels.
type LabelOptions struct {
	// Font is the layout font; its colour is used unless the axis has a
	// non-default colour of its own.
	Font container.Font
}

var showAttrs = []string{"showexponent", "showtickprefix", "showticksuffix"}

// LabelDefaults resolves the tick label attributes of the given pass.
func LabelDefaults(in, out *container.Container, c container.Coercer, typ axistype.Type, opts LabelOptions, pass Pass) {
	showDflt := showAttrDefault(in)

	if pass == AllPasses || pass == PrefixSuffixPass {
		if container.Truthy(c.Coerce("tickprefix", cty.NilVal)) {
			c.Coerce("showtickprefix", showDflt)
		}
		if container.Truthy(c.Coerce("ticksuffix", cty.NilVal)) {
			c.Coerce("showticksuffix", showDflt)
		}
	}

	if pass == AllPasses || pass == FormatPass {
		formatDefaults(in, out, c, typ, opts, showDflt)
	}
}

func formatDefaults(in, out *container.Container, c container.Coercer, typ axistype.Type, opts LabelOptions, showDflt cty.Value) {
	if !container.Truthy(c.Coerce("showticklabels", cty.NilVal)) {
		return
	}

	fontColor := opts.Font.Color
	if color := out.String("color"); color != "" && color != schema.Axis().MustLookup("color").Default.AsString() {
		fontColor = color
	}
	container.CoerceFont(c, "tickfont", container.Font{
		Family: opts.Font.Family,
		Size:   opts.Font.Size,
		Color:  fontColor,
	})
	c.Coerce("tickangle", cty.NilVal)

	if typ == axistype.Category {
		return
	}

	format := c.Coerce("tickformat", cty.NilVal)
	stops := arraycontainer.Defaults(in, out, arraycontainer.Options{
		Name:          "tickformatstops",
		InclusionAttr: "enabled",
		HandleItem:    tickformatstopDefaults,
	})
	if len(stops) == 0 {
		out.DeleteItems("tickformatstops")
	}

	if !container.Truthy(format) && typ != axistype.Date {
		c.Coerce("showexponent", showDflt)
		c.Coerce("exponentformat", cty.NilVal)
		c.Coerce("separatethousands", cty.NilVal)
	}
}

func tickformatstopDefaults(itemIn, itemOut *container.Container) {
	c := container.NewCoercer(itemIn, itemOut, schema.Axis().Sub("tickformatstops"))
	if container.Truthy(c.Coerce("enabled", cty.NilVal)) {
		c.Coerce("dtickrange", cty.NilVal)
		c.Coerce("value", cty.NilVal)
	}
}

// showAttrDefault returns the shared value of the show* attributes when
// every one of them that is set agrees on a valid value.
func showAttrDefault(in *container.Container) cty.Value {
	shared := cty.NilVal
	for _, name := range showAttrs {
		v, ok := in.Get(name)
		if !ok {
			continue
		}
		if container.IsNil(shared) {
			shared = v
			continue
		}
		if !v.RawEquals(shared) {
			return cty.NilVal
		}
	}
	if container.IsNil(shared) {
		return cty.NilVal
	}
	if _, valid := schema.Axis().MustLookup("showexponent").Validate(shared); !valid {
		return cty.NilVal
	}
	return shared
}
