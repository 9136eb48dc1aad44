package config

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	axisNameRegex = regexp.MustCompile(`^([xy])axis([1-9][0-9]*)?$`)
	axisRefRegex  = regexp.MustCompile(`^([xy])([1-9][0-9]*)?$`)
)

// ValidateAxisName checks a layout axis key such as "xaxis" or "yaxis3".
// "xaxis1" is rejected; the first axis has no number.
func ValidateAxisName(name string) error {
	m := axisNameRegex.FindStringSubmatch(name)
	if m == nil || m[2] == "1" {
		return fmt.Errorf("invalid axis name %q: expected xaxis, yaxis, xaxis2, ...", name)
	}
	return nil
}

// AxisRef converts an axis name into a trace reference: "xaxis2" -> "x2".
func AxisRef(name string) string {
	m := axisNameRegex.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1] + m[2]
}

// AxisName converts a trace reference into an axis name: "y3" -> "yaxis3".
func AxisName(ref string) (string, error) {
	m := axisRefRegex.FindStringSubmatch(ref)
	if m == nil || m[2] == "1" {
		return "", fmt.Errorf("invalid axis reference %q: expected x, y, x2, ...", ref)
	}
	return m[1] + "axis" + m[2], nil
}

// axisLess orders axes x before y, then by number.
func axisLess(a, b string) bool {
	ma, mb := axisNameRegex.FindStringSubmatch(a), axisNameRegex.FindStringSubmatch(b)
	if ma == nil || mb == nil {
		return a < b
	}
	if ma[1] != mb[1] {
		return ma[1] < mb[1]
	}
	return axisNumber(ma[2]) < axisNumber(mb[2])
}

func axisNumber(s string) int {
	if s == "" {
		return 1
	}
	n, _ := strconv.Atoi(s)
	return n
}
