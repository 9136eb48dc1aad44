package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Increment returns x + delta while suppressing the decimal noise binary
// floating point addition produces for small fractions (0.1 + 0.2 yields
// 0.30000000000000004 with plain addition, 0.3 here).
//
// Both operands are scaled by max(1, 1/|delta|) before adding. If the
// rendered result is still at least as long as the two operands combined it
// is taken to be a rounding artifact and rounded to 12 significant digits.
// This is a heuristic, not exact decimal arithmetic.
func Increment(x, delta float64) float64 {
	if delta == 0 || math.IsNaN(delta) {
		return x
	}

	scale := math.Max(1, 1/math.Abs(delta))
	result := (scale*x + scale*delta) / scale

	// Twelve significant digits cannot express the integer part of values
	// from 1e12 up, so those are left alone.
	if math.Abs(result) < 1e12 && len(format(result)) >= len(format(x))+len(format(delta)) {
		if v, err := strconv.ParseFloat(strconv.FormatFloat(result, 'g', 12, 64), 64); err == nil {
			result = v
		}
	}
	return result
}

// format renders f as its shortest round-trip decimal string, switching to
// exponent notation only for very large or very small magnitudes. Exponents
// carry no zero padding: 1e-7, not 1e-07.
func format(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
