package setconvert

import (
	"time"

	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/dates"
	"github.com/vk/axisdefaults/internal/numeric"
	"github.com/vk/axisdefaults/internal/rangebreak"
)

// Interval is a compiled range break. Without a pattern, Lo and Hi are
// linear coordinates. With a pattern they are positions within the
// repeating week (days) or day (hours).
type Interval struct {
	Pattern rangebreak.Pattern
	Lo, Hi  float64
}

// Setup recompiles the exclusion intervals from the enabled range breaks
// stored on the axis. It must be re-run whenever the break list changes.
func (a *Axis) Setup() {
	a.breaks = nil
	if a.typ != axistype.Date {
		return
	}

	for _, item := range a.out.Items("rangebreaks") {
		brk, ok := rangebreak.Decode(item)
		if !ok {
			continue
		}
		switch b := brk.(type) {
		case rangebreak.BoundsBreak:
			a.compileBounds(b)
		case rangebreak.ValuesBreak:
			for _, v := range b.Values {
				lo, ok := a.ToLinear(v)
				if !ok {
					continue
				}
				a.breaks = append(a.breaks, Interval{Lo: lo, Hi: numeric.Increment(lo, b.DValue)})
			}
		}
	}
}

func (a *Axis) compileBounds(b rangebreak.BoundsBreak) {
	var lo, hi float64
	var okLo, okHi bool
	if b.Pattern == rangebreak.PatternNone {
		lo, okLo = a.ToLinear(b.Lo)
		hi, okHi = a.ToLinear(b.Hi)
	} else {
		lo, okLo = container.Number(b.Lo)
		hi, okHi = container.Number(b.Hi)
	}
	if !okLo || !okHi {
		return
	}
	if b.Pattern == rangebreak.PatternNone && lo > hi {
		lo, hi = hi, lo
	}
	a.breaks = append(a.breaks, Interval{Pattern: b.Pattern, Lo: lo, Hi: hi})
}

// Breaks returns the compiled intervals.
func (a *Axis) Breaks() []Interval {
	return a.breaks
}

// IsExcluded reports whether the linear coordinate x falls inside any range
// break. Intervals include their start and exclude their end.
func (a *Axis) IsExcluded(x float64) bool {
	for _, iv := range a.breaks {
		if iv.contains(x) {
			return true
		}
	}
	return false
}

func (iv Interval) contains(x float64) bool {
	var pos float64
	switch iv.Pattern {
	case rangebreak.PatternNone:
		return x >= iv.Lo && x < iv.Hi
	case rangebreak.PatternDayOfWeek:
		t := time.UnixMilli(int64(x)).UTC()
		pos = float64(t.Weekday()) + sinceMidnight(t)/dates.OneDay
	case rangebreak.PatternHour:
		t := time.UnixMilli(int64(x)).UTC()
		pos = sinceMidnight(t) / dates.OneHour
	default:
		return false
	}

	// Periodic intervals wrap: [6, 1] covers Saturday and Sunday.
	if iv.Lo <= iv.Hi {
		return pos >= iv.Lo && pos < iv.Hi
	}
	return pos >= iv.Lo || pos < iv.Hi
}

func sinceMidnight(t time.Time) float64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return float64(t.Sub(midnight).Milliseconds())
}
