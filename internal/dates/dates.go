// Package dates converts between date strings and milliseconds since the
// Unix epoch, the linear coordinate of date axes.
//
// Accepted strings run from a bare year to millisecond precision:
// `2020`, `2020-03`, `2020-03-07`, `2020-03-07 14`, `2020-03-07T14:05:09.5`.
// A trailing time zone designator is accepted and ignored; every date is
// interpreted in UTC on the gregorian calendar.
package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// OneDay is the length of a day in milliseconds.
const OneDay = 24 * 60 * 60 * 1000

// OneHour is the length of an hour in milliseconds.
const OneHour = 60 * 60 * 1000

var dateRegex = regexp.MustCompile(`^\s*(-?\d{4})(?:-(\d{1,2})(?:-(\d{1,2})(?:[ Tt]([01]?\d|2[0-3])(?::([0-5]\d)(?::([0-5]\d(?:\.\d+)?))?(?:Z|z|[+\-]\d\d(?::?\d\d)?)?)?)?)?)?\s*$`)

// Parse converts a date string to epoch milliseconds.
func Parse(s string) (float64, bool) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	year, _ := strconv.Atoi(m[1])
	month, day, hour, minute := 1, 1, 0, 0
	if m[2] != "" {
		month, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		day, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
	}
	if m[5] != "" {
		minute, _ = strconv.Atoi(m[5])
	}
	var seconds float64
	if m[6] != "" {
		seconds, _ = strconv.ParseFloat(m[6], 64)
	}

	if month < 1 || month > 12 || day < 1 {
		return 0, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalises 2021-02-30 into March.
		return 0, false
	}
	return float64(t.UnixMilli()) + math.Round(seconds*1000), true
}

// Format renders epoch milliseconds as the shortest date string that
// loses nothing: `2020-03-07`, `2020-03-07 14:05`, `2020-03-07 14:05:09`
// or with a fractional second.
func Format(ms float64) string {
	whole := math.Floor(ms)
	t := time.UnixMilli(int64(whole)).UTC()

	out := t.Format("2006-01-02")
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return out
	}
	out += t.Format(" 15:04")
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return out
	}
	out += t.Format(":05")
	if frac := t.Nanosecond() / int(time.Millisecond); frac != 0 {
		out += strings.TrimRight("."+strconv.Itoa(1000+frac)[1:], "0")
	}
	return out
}

// IsDate reports whether s is an accepted date string.
func IsDate(s string) bool {
	_, ok := Parse(s)
	return ok
}

// ToMillis converts a cty number or date string into epoch milliseconds.
func ToMillis(v cty.Value) (float64, bool) {
	if v.Type() == cty.NilType || v.IsNull() || !v.IsKnown() {
		return 0, false
	}
	switch {
	case v.Type().Equals(cty.Number):
		f, _ := v.AsBigFloat().Float64()
		return f, !math.IsInf(f, 0)
	case v.Type().Equals(cty.String):
		return Parse(v.AsString())
	default:
		return 0, false
	}
}
