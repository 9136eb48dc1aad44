package rangebreak

import "github.com/zclconf/go-cty/cty"

// Pattern selects how the bounds of a BoundsBreak are interpreted.
type Pattern string

const (
	// PatternNone means the bounds are plain axis coordinates.
	PatternNone Pattern = ""
	// PatternDayOfWeek means the bounds are days, 0 (Sunday) to 6 (Saturday).
	PatternDayOfWeek Pattern = "day of week"
	// PatternHour means the bounds are hours of the day, 0 to 24.
	PatternHour Pattern = "hour"
)

// Break is a resolved, enabled range break.
type Break interface {
	isBreak()
}

// BoundsBreak excludes the interval [Lo, Hi).
type BoundsBreak struct {
	Lo, Hi  cty.Value
	Pattern Pattern
}

// ValuesBreak excludes DValue milliseconds starting at each value.
type ValuesBreak struct {
	Values []cty.Value
	DValue float64
}

func (BoundsBreak) isBreak() {}
func (ValuesBreak) isBreak() {}

// Parent is the view of the owning axis a range break needs.
type Parent interface {
	// FixedRange returns the axis range in linear coordinates when the
	// axis is not autoranged.
	FixedRange() (r0, r1 float64, ok bool)
	// ToLinear converts an axis value into a linear coordinate.
	ToLinear(v cty.Value) (float64, bool)
}
