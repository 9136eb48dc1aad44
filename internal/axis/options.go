package axis

import (
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

// Options is the read-only context of one axis resolution.
type Options struct {
	// Letter is the axis identity, "x" or "y".
	Letter string
	// Title is the fallback title text.
	Title string
	// Font is the inherited layout font.
	Font container.Font
	// OuterTicks makes outward ticks the default.
	OuterTicks bool
	// ShowGrid makes grid and zero lines visible by default.
	ShowGrid bool
	// NoHover disables the hover format default.
	NoHover bool
	// NoTickson marks axis variants without tick alignment.
	NoTickson bool
	// Data is the full list of plotted traces. Traces that cannot be drawn
	// on an axis with range breaks have Visible cleared.
	Data []*Trace
	// BgColor is the plot background colour.
	BgColor string
	// Calendar is the default calendar of date axes.
	Calendar string
	// SplomStash carries a matrix-plot label override.
	SplomStash *SplomStash
	// VisibleDflt hides the axis by default when true.
	VisibleDflt bool
	// ReverseDflt makes a reversed autorange the default.
	ReverseDflt bool
	// Automargin enables the automargin attribute.
	Automargin bool
}

// SplomStash holds the per-axis label of a scatter-plot matrix.
type SplomStash struct {
	Label string
}

// LayoutState is layout-wide state shared read-only by all axes.
type LayoutState struct {
	// DefaultTitles maps an axis letter to its default title.
	DefaultTitles map[string]string
}

// Trace is the part of a plotted trace the resolver looks at.
type Trace struct {
	Index   int
	Type    string
	XAxis   string
	YAxis   string
	X       []cty.Value
	Y       []cty.Value
	Visible bool
}

// Warner receives human-readable warnings. Warn must not fail.
type Warner interface {
	Warn(msg string)
}

// WarnFunc adapts a function to Warner.
type WarnFunc func(msg string)

// Warn implements Warner.
func (f WarnFunc) Warn(msg string) {
	f(msg)
}

type discardWarner struct{}

func (discardWarner) Warn(string) {}
