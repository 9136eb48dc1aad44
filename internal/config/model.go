package config

import (
	"sort"

	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// Layout-wide defaults applied when a document leaves them out.
const (
	DefaultFontFamily = `"Open Sans", verdana, arial, sans-serif`
	DefaultFontSize   = 12
	DefaultFontColor  = "#444"
	DefaultBgColor    = "#fff"
	DefaultCalendar   = "gregorian"
)

// Model is the unified, format-agnostic representation of a layout
// document: its axes, the plotted traces and the layout-wide settings the
// axes inherit.
type Model struct {
	// Axes are kept sorted by name.
	Axes     []*Axis
	Traces   []*Trace
	Font     container.Font
	BgColor  string
	Calendar string
	Editable bool
}

// Axis is one axis as written by the user.
type Axis struct {
	// Name is the layout key, e.g. "xaxis" or "yaxis2".
	Name string
	// Attrs is the raw attribute object.
	Attrs cty.Value
}

// Letter returns "x" or "y".
func (a *Axis) Letter() string {
	return a.Name[:1]
}

// Ref returns the short reference traces use, e.g. "y2".
func (a *Axis) Ref() string {
	return AxisRef(a.Name)
}

// Trace is one plotted trace.
type Trace struct {
	Index   int
	Type    string
	XAxis   string
	YAxis   string
	X       []cty.Value
	Y       []cty.Value
	Visible bool
	// Attrs is the raw trace object, kept for output.
	Attrs cty.Value
}

// NewModel returns an empty model carrying the layout defaults.
func NewModel() *Model {
	return &Model{
		Font: container.Font{
			Family: DefaultFontFamily,
			Size:   DefaultFontSize,
			Color:  DefaultFontColor,
		},
		BgColor:  DefaultBgColor,
		Calendar: DefaultCalendar,
	}
}

// Axis looks up an axis by name.
func (m *Model) Axis(name string) (*Axis, bool) {
	for _, a := range m.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// TracesOn returns the traces drawn against the axis with the given name.
func (m *Model) TracesOn(name string) []*Trace {
	ref := AxisRef(name)
	var out []*Trace
	for _, tr := range m.Traces {
		if tr.XAxis == ref || tr.YAxis == ref {
			out = append(out, tr)
		}
	}
	return out
}

// Merge folds other into m. Axes from other replace axes of the same name,
// traces are appended and re-indexed, and layout settings explicitly set in
// other win.
func (m *Model) Merge(other *Model, set Settings) {
	for _, a := range other.Axes {
		m.setAxis(a)
	}
	for _, tr := range other.Traces {
		tr.Index = len(m.Traces)
		m.Traces = append(m.Traces, tr)
	}
	if set.Font {
		m.Font = other.Font
	}
	if set.BgColor {
		m.BgColor = other.BgColor
	}
	if set.Calendar {
		m.Calendar = other.Calendar
	}
	if set.Editable {
		m.Editable = other.Editable
	}
}

func (m *Model) setAxis(a *Axis) {
	for i, existing := range m.Axes {
		if existing.Name == a.Name {
			m.Axes[i] = a
			return
		}
	}
	m.Axes = append(m.Axes, a)
	sort.Slice(m.Axes, func(i, j int) bool { return axisLess(m.Axes[i].Name, m.Axes[j].Name) })
}

// Settings records which layout-wide settings a document set explicitly.
type Settings struct {
	Font, BgColor, Calendar, Editable bool
}
