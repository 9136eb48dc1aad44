package axis

import (
	"fmt"
	"math"

	"github.com/vk/axisdefaults/internal/arraycontainer"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/linegrid"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/vk/axisdefaults/internal/ticks"
	"github.com/zclconf/go-cty/cty"
)

// Resolver runs the axis pipeline with a fixed set of collaborators.
type Resolver struct {
	collab Collaborators
	warn   Warner
}

// NewResolver builds a Resolver. Missing collaborators fall back to
// DefaultCollaborators and a nil warner discards warnings.
func NewResolver(collab Collaborators, warn Warner) *Resolver {
	if warn == nil {
		warn = discardWarner{}
	}
	return &Resolver{collab: collab.withDefaults(), warn: warn}
}

// Resolve resolves one axis with the default collaborators.
func Resolve(in, out *container.Container, c container.Coercer, opts Options, layout LayoutState, warn Warner) *container.Container {
	return NewResolver(Collaborators{}, warn).Resolve(in, out, c, opts, layout)
}

// Resolve populates out from in and returns it. The axis type is read from
// out, where the caller has already resolved it; a missing or unknown type
// is treated as the placeholder type.
func (r *Resolver) Resolve(in, out *container.Container, c container.Coercer, opts Options, layout LayoutState) *container.Container {
	typ, err := axistype.Parse(out.String("type"))
	if err != nil {
		typ = axistype.Placeholder
	}

	visible := container.Truthy(c.Coerce("visible", cty.BoolVal(!opts.VisibleDflt)))

	if typ == axistype.Date {
		r.collab.Calendar(in, out, "calendar", opts.Calendar)
	}

	conv := r.collab.SetConvert(out, typ)

	rawRange, _ := in.Get("range")
	autorangeDflt := cty.BoolVal(!conv.IsValidRange(rawRange))
	if autorangeDflt.True() && opts.ReverseDflt {
		autorangeDflt = cty.StringVal("reversed")
	}
	if container.Truthy(c.Coerce("autorange", autorangeDflt)) && hasRangemode(typ) {
		c.Coerce("rangemode", cty.NilVal)
	}

	c.Coerce("range", cty.NilVal)
	conv.CleanRange()

	r.collab.CategoryOrder(in, out, c, typ)

	if typ != axistype.Category && !opts.NoHover {
		c.Coerce("hoverformat", cty.NilVal)
	}

	color := c.Coerce("color", cty.NilVal)
	dfltColor := ""
	if !container.IsNil(color) {
		dfltColor = color.AsString()
	}
	dfltFontColor := opts.Font.Color
	if dfltColor != "" && dfltColor != schema.Axis().MustLookup("color").Default.AsString() {
		dfltFontColor = dfltColor
	}

	labelOpts := ticks.LabelOptions{Font: opts.Font}
	r.collab.TickLabels(in, out, c, typ, labelOpts, ticks.PrefixSuffixPass)

	if !visible {
		return out
	}

	titleDflt := cty.NilVal
	if title := defaultTitle(opts, layout); title != "" {
		titleDflt = cty.StringVal(title)
	}
	c.Coerce("title.text", titleDflt)
	container.CoerceFont(c, "title.font", container.Font{
		Family: opts.Font.Family,
		Size:   math.Round(opts.Font.Size * 1.2),
		Color:  dfltFontColor,
	})

	r.collab.TickValues(in, out, c, typ)
	r.collab.TickLabels(in, out, c, typ, labelOpts, ticks.FormatPass)
	r.collab.TickMarks(in, out, c, ticks.MarkOptions{OuterTicks: opts.OuterTicks})
	r.collab.LineGrid(in, out, c, linegrid.Options{
		DfltColor: dfltColor,
		BgColor:   opts.BgColor,
		ShowGrid:  opts.ShowGrid,
	})

	if out.Truthy("showline") || out.Truthy("ticks") {
		c.Coerce("mirror", cty.NilVal)
	}

	if opts.Automargin {
		c.Coerce("automargin", cty.NilVal)
	}

	if !opts.NoTickson && typ.IsCategorical() && (out.Truthy("ticks") || out.Truthy("showgrid")) {
		ticksonDflt := cty.NilVal
		if typ == axistype.MultiCategory {
			ticksonDflt = cty.StringVal("boundaries")
		}
		c.Coerce("tickson", ticksonDflt)
	}

	if typ == axistype.MultiCategory && container.Truthy(c.Coerce("showdividers", cty.NilVal)) {
		c.Coerce("dividercolor", cty.NilVal)
		c.Coerce("dividerwidth", cty.NilVal)
	}

	if typ == axistype.Date {
		r.rangebreaks(in, out, conv, opts)
	}

	return out
}

func (r *Resolver) rangebreaks(in, out *container.Container, conv Converter, opts Options) {
	items := arraycontainer.Defaults(in, out, arraycontainer.Options{
		Name:          "rangebreaks",
		InclusionAttr: "enabled",
		HandleItem: func(itemIn, itemOut *container.Container) {
			r.collab.RangeBreak(itemIn, itemOut, conv)
		},
	})
	if len(items) == 0 {
		out.DeleteItems("rangebreaks")
		return
	}

	conv.Setup()

	for _, trace := range opts.Data {
		if trace == nil || !incompatibleWithBreaks(trace.Type) {
			continue
		}
		trace.Visible = false
		r.warn.Warn(fmt.Sprintf(
			"%s traces do not work on axes with rangebreaks. Setting trace %d to `visible: false`.",
			trace.Type, trace.Index,
		))
	}
}

// defaultTitle picks the title default: a matrix-plot label, then the
// layout's per-letter title, then the option title.
func defaultTitle(opts Options, layout LayoutState) string {
	if opts.SplomStash != nil && opts.SplomStash.Label != "" {
		return opts.SplomStash.Label
	}
	if title, ok := layout.DefaultTitles[opts.Letter]; ok && title != "" {
		return title
	}
	return opts.Title
}

func hasRangemode(typ axistype.Type) bool {
	switch typ {
	case axistype.Linear, axistype.Placeholder:
		return true
	case axistype.Log, axistype.Date, axistype.Category, axistype.MultiCategory:
		return false
	default:
		panic(fmt.Sprintf("axis: unhandled type %v", typ))
	}
}

func incompatibleWithBreaks(traceType string) bool {
	return traceType == "scattergl" || traceType == "splom"
}
