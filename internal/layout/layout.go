// Package layout resolves every axis of a layout document. It derives the
// per-axis options from the document (axis type from the plotted data,
// visibility from trace references, default titles when editable). Each
// axis sees only the traces drawn against it; a trace hidden by one axis
// stays hidden in the output.
package layout

import (
	"context"
	"fmt"

	"github.com/vk/axisdefaults/internal/axis"
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/ctxlog"
	"github.com/vk/axisdefaults/internal/encode"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Options tunes whole-document resolution.
type Options struct {
	// Editable overrides the document's editable flag when non-nil.
	Editable *bool
	// Warner also receives every warning. When nil, warnings are logged
	// through the context logger.
	Warner axis.Warner
	// Collaborators replaces sibling resolvers, mostly for tests.
	Collaborators axis.Collaborators
}

// Result is a resolved document plus the warnings raised on the way.
type Result struct {
	Document encode.Document
	Warnings []string
}

// Axis returns the resolved attributes of the named axis.
func (r *Result) Axis(name string) (cty.Value, bool) {
	for _, a := range r.Document.Axes {
		if a.Name == name {
			return a.Attrs, true
		}
	}
	return cty.NilVal, false
}

// Resolve resolves every axis of m in name order. It never fails; the trace
// visibility of m is updated in place.
func Resolve(ctx context.Context, m *config.Model, opts Options) *Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving layout.", "axes", len(m.Axes), "traces", len(m.Traces))

	res := &Result{}
	sink := opts.Warner
	if sink == nil {
		sink = ctxlog.WarnSink{Logger: logger}
	}
	warn := axis.WarnFunc(func(msg string) {
		res.Warnings = append(res.Warnings, msg)
		sink.Warn(msg)
	})

	editable := m.Editable
	if opts.Editable != nil {
		editable = *opts.Editable
	}
	state := axis.LayoutState{}
	if editable {
		state.DefaultTitles = map[string]string{
			"x": "Click to enter X axis title",
			"y": "Click to enter Y axis title",
		}
	}

	traces := make([]*axis.Trace, len(m.Traces))
	byModel := make(map[*config.Trace]*axis.Trace, len(m.Traces))
	for i, tr := range m.Traces {
		traces[i] = &axis.Trace{
			Index:   tr.Index,
			Type:    tr.Type,
			XAxis:   tr.XAxis,
			YAxis:   tr.YAxis,
			X:       tr.X,
			Y:       tr.Y,
			Visible: tr.Visible,
		}
		byModel[tr] = traces[i]
	}

	resolver := axis.NewResolver(opts.Collaborators, warn)
	for _, a := range m.Axes {
		in, err := container.FromObject(a.Attrs)
		if err != nil {
			warn(fmt.Sprintf("Axis %s could not be read and was reset: %v", a.Name, err))
			in = container.New()
		}
		out := container.New()
		c := container.NewCoercer(in, out, schema.Axis())

		onAxis := m.TracesOn(a.Name)
		data := make([]*axis.Trace, len(onAxis))
		for i, tr := range onAxis {
			data[i] = byModel[tr]
		}

		typ := resolveType(c, out, onAxis, a)
		axisOpts := axis.Options{
			Letter:      a.Letter(),
			Font:        m.Font,
			ShowGrid:    true,
			Data:        data,
			BgColor:     m.BgColor,
			Calendar:    m.Calendar,
			VisibleDflt: len(m.Traces) > 0 && len(onAxis) == 0,
			ReverseDflt: a.Letter() == "y" && hasTraceType(onAxis, "image"),
			Automargin:  true,
		}
		resolver.Resolve(in, out, c, axisOpts, state)
		logger.Debug("Axis resolved.", "axis", a.Name, "type", typ.String(), "attributes", len(out.Paths()))

		res.Document.Axes = append(res.Document.Axes, encode.Axis{Name: a.Name, Attrs: out.Object()})
	}

	for i, tr := range m.Traces {
		attrs := tr.Attrs
		if tr.Visible && !traces[i].Visible {
			tr.Visible = false
			attrs = withAttr(attrs, "visible", cty.False)
		}
		res.Document.Data = append(res.Document.Data, attrs)
	}

	logger.Debug("Layout resolved.", "warnings", len(res.Warnings))
	return res
}

// resolveType coerces the axis type and infers it from the plotted data
// when the layout leaves it unset.
func resolveType(c container.Coercer, out *container.Container, onAxis []*config.Trace, a *config.Axis) axistype.Type {
	v := c.Coerce("type", cty.NilVal)
	typ, err := axistype.Parse(v.AsString())
	if err != nil || typ != axistype.Placeholder {
		return typ
	}

	typ = axistype.Autotype(axisData(onAxis, a.Letter()))
	out.Set("type", cty.StringVal(typ.String()))
	return typ
}

// axisData returns the values of the first trace on the axis that plots
// anything along it.
func axisData(traces []*config.Trace, letter string) []cty.Value {
	for _, tr := range traces {
		values := tr.X
		if letter == "y" {
			values = tr.Y
		}
		if len(values) > 0 {
			return values
		}
	}
	return nil
}

func hasTraceType(traces []*config.Trace, typ string) bool {
	for _, tr := range traces {
		if tr.Type == typ {
			return true
		}
	}
	return false
}

func withAttr(obj cty.Value, name string, v cty.Value) cty.Value {
	attrs := make(map[string]cty.Value)
	if obj.Type() != cty.NilType && !obj.IsNull() && obj.Type().IsObjectType() {
		for k, existing := range obj.AsValueMap() {
			attrs[k] = existing
		}
	}
	attrs[name] = v
	return cty.ObjectVal(attrs)
}
