package setconvert

import (
	"math"

	"github.com/vk/axisdefaults/internal/axistype"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/dates"
	"github.com/vk/axisdefaults/internal/numeric"
	"github.com/zclconf/go-cty/cty"
)

// FPSafe is the largest magnitude a numeric range endpoint may take.
const FPSafe = math.MaxFloat64 * 1e-4

var (
	defaultRange     = [2]float64{-1, 6}
	defaultDateRange = [2]string{"2000-01-01", "2001-01-01"}
)

// Axis converts values for one resolved axis.
type Axis struct {
	out    *container.Container
	typ    axistype.Type
	breaks []Interval
}

// New binds the converter to out and compiles its range breaks.
func New(out *container.Container, typ axistype.Type) *Axis {
	a := &Axis{out: out, typ: typ}
	a.Setup()
	return a
}

// Type returns the axis type the converter was built for.
func (a *Axis) Type() axistype.Type {
	return a.typ
}

// ToLinear converts an axis value into a linear coordinate. Date axes
// accept date strings and epoch milliseconds; all other axes accept numbers
// and numeric strings.
func (a *Axis) ToLinear(v cty.Value) (float64, bool) {
	if container.IsNil(v) || v.IsNull() || !v.IsKnown() {
		return 0, false
	}
	if a.typ == axistype.Date {
		return dates.ToMillis(v)
	}
	return container.Number(v)
}

// IsValidRange reports whether v is a two element list whose endpoints
// both convert to linear coordinates.
func (a *Axis) IsValidRange(v cty.Value) bool {
	ends, ok := a.rangeEnds(v)
	return ok && ends[0].ok && ends[1].ok
}

// FixedRange returns the stored range in linear coordinates when the axis
// has autorange switched off.
func (a *Axis) FixedRange() (float64, float64, bool) {
	autorange, ok := a.out.Get("autorange")
	if !ok || !autorange.Type().Equals(cty.Bool) || autorange.True() {
		return 0, 0, false
	}
	rng, ok := a.out.Get("range")
	if !ok {
		return 0, 0, false
	}
	ends, ok := a.rangeEnds(rng)
	if !ok || !ends[0].ok || !ends[1].ok {
		return 0, 0, false
	}
	return ends[0].v, ends[1].v, true
}

// CleanRange normalises the stored range in place. A missing or malformed
// range becomes the type default. For numeric axes a single bad endpoint
// is derived from the other, endpoints are clamped to ±FPSafe and an empty
// range is widened around its value. Date ranges are rewritten as date
// strings and an empty date range is widened by one second each way. The
// endpoint order is never changed.
func (a *Axis) CleanRange() {
	rng, _ := a.out.Get("range")
	ends, ok := a.rangeEnds(rng)
	if a.typ == axistype.Date {
		a.cleanDateRange(ends, ok)
		return
	}

	if !ok {
		a.setNumberRange(defaultRange)
		return
	}

	var r [2]float64
	for i := range ends {
		if ends[i].ok {
			r[i] = ends[i].v
			continue
		}
		other := ends[1-i]
		if !other.ok {
			a.setNumberRange(defaultRange)
			return
		}
		if i == 0 {
			r[i] = other.v * 0.1
		} else {
			r[i] = other.v * 10
		}
	}

	for i := range r {
		r[i] = math.Max(-FPSafe, math.Min(FPSafe, r[i]))
	}

	if r[0] == r[1] {
		inc := math.Max(1, math.Abs(r[0]*1e-6))
		r[0] = numeric.Increment(r[0], -inc)
		r[1] = numeric.Increment(r[1], inc)
	}
	a.setNumberRange(r)
}

func (a *Axis) cleanDateRange(ends [2]endpoint, ok bool) {
	if !ok || !ends[0].ok || !ends[1].ok {
		a.setDateRange(defaultDateRange)
		return
	}
	r0, r1 := ends[0].v, ends[1].v
	if r0 == r1 {
		r0, r1 = r0-1000, r1+1000
	}
	a.setDateRange([2]string{dates.Format(r0), dates.Format(r1)})
}

func (a *Axis) setNumberRange(r [2]float64) {
	a.out.Set("range", cty.TupleVal([]cty.Value{cty.NumberFloatVal(r[0]), cty.NumberFloatVal(r[1])}))
}

func (a *Axis) setDateRange(r [2]string) {
	a.out.Set("range", cty.TupleVal([]cty.Value{cty.StringVal(r[0]), cty.StringVal(r[1])}))
}

type endpoint struct {
	v  float64
	ok bool
}

// rangeEnds converts both endpoints of a two element list. The boolean is
// false when v is not a two element list at all.
func (a *Axis) rangeEnds(v cty.Value) ([2]endpoint, bool) {
	var ends [2]endpoint
	if container.IsNil(v) || v.IsNull() || !v.IsKnown() {
		return ends, false
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return ends, false
	}
	if v.LengthInt() != 2 {
		return ends, false
	}
	for i, elem := range v.AsValueSlice() {
		ends[i].v, ends[i].ok = a.ToLinear(elem)
	}
	return ends, true
}
