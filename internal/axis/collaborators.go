package axis

import (
	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/calendar"
	"github.com/vk/axisdefaults/internal/categoryorder"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/linegrid"
	"github.com/vk/axisdefaults/internal/rangebreak"
	"github.com/vk/axisdefaults/internal/setconvert"
	"github.com/vk/axisdefaults/internal/ticks"
	"github.com/zclconf/go-cty/cty"
)

// Converter is the type-conversion state attached to a resolved axis.
type Converter interface {
	rangebreak.Parent
	// IsValidRange reports whether v is a usable, fully specified range.
	IsValidRange(v cty.Value) bool
	// CleanRange normalises the output range in place.
	CleanRange()
	// Setup recompiles derived state; it is re-run when range breaks
	// change.
	Setup()
}

// Collaborators are the sibling resolvers the pipeline delegates to. Nil
// fields are replaced by the package defaults.
type Collaborators struct {
	SetConvert    func(out *container.Container, typ axistype.Type) Converter
	Calendar      func(in, out *container.Container, attr, dflt string) string
	CategoryOrder func(in, out *container.Container, c container.Coercer, typ axistype.Type)
	TickValues    func(in, out *container.Container, c container.Coercer, typ axistype.Type)
	TickLabels    func(in, out *container.Container, c container.Coercer, typ axistype.Type, opts ticks.LabelOptions, pass ticks.Pass)
	TickMarks     func(in, out *container.Container, c container.Coercer, opts ticks.MarkOptions)
	LineGrid      func(in, out *container.Container, c container.Coercer, opts linegrid.Options)
	RangeBreak    func(itemIn, itemOut *container.Container, parent rangebreak.Parent)
}

// DefaultCollaborators returns the collaborators backed by this module's
// resolver packages.
func DefaultCollaborators() Collaborators {
	return Collaborators{
		SetConvert: func(out *container.Container, typ axistype.Type) Converter {
			return setconvert.New(out, typ)
		},
		Calendar:      calendar.ApplyDefaults,
		CategoryOrder: categoryorder.Defaults,
		TickValues:    ticks.ValueDefaults,
		TickLabels:    ticks.LabelDefaults,
		TickMarks:     ticks.MarkDefaults,
		LineGrid:      linegrid.Defaults,
		RangeBreak:    rangebreak.Resolve,
	}
}

func (c Collaborators) withDefaults() Collaborators {
	d := DefaultCollaborators()
	if c.SetConvert == nil {
		c.SetConvert = d.SetConvert
	}
	if c.Calendar == nil {
		c.Calendar = d.Calendar
	}
	if c.CategoryOrder == nil {
		c.CategoryOrder = d.CategoryOrder
	}
	if c.TickValues == nil {
		c.TickValues = d.TickValues
	}
	if c.TickLabels == nil {
		c.TickLabels = d.TickLabels
	}
	if c.TickMarks == nil {
		c.TickMarks = d.TickMarks
	}
	if c.LineGrid == nil {
		c.LineGrid = d.LineGrid
	}
	if c.RangeBreak == nil {
		c.RangeBreak = d.RangeBreak
	}
	return c
}
