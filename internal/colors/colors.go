// Package colors parses CSS-style colour strings and mixes them the way the
// axis defaults need (grid colours derived from the axis colour and the plot
// background).
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var rgbRegex = regexp.MustCompile(`^rgba?\(\s*([0-9.]+%?)\s*,\s*([0-9.]+%?)\s*,\s*([0-9.]+%?)\s*(?:,\s*([0-9.]+)\s*)?\)$`)

// named is the subset of CSS colour keywords accepted in layouts.
var named = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"silver":    "#c0c0c0",
	"navy":      "#000080",
	"teal":      "#008080",
	"maroon":    "#800000",
	"olive":     "#808000",
	"lime":      "#00ff00",
	"aqua":      "#00ffff",
	"cyan":      "#00ffff",
	"fuchsia":   "#ff00ff",
	"magenta":   "#ff00ff",
}

// Color is a parsed colour with its alpha channel.
type Color struct {
	colorful.Color
	Alpha float64
}

// Parse reads a hex (#rgb, #rrggbb), rgb()/rgba(), keyword or
// `transparent` colour string.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return Color{Alpha: 0}, nil
	}
	if hex, ok := named[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return Color{Color: c, Alpha: 1}, nil
	}

	m := rgbRegex.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("unrecognised colour %q", s)
	}
	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, err := channel(m[i+1])
		if err != nil {
			return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		channels[i] = v
	}
	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a > 1 {
			return Color{}, fmt.Errorf("invalid alpha in colour %q", s)
		}
		alpha = a
	}
	return Color{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Alpha: alpha}, nil
}

// channel converts a 0-255 or percentage component to [0, 1].
func channel(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || v > 100 {
			return 0, fmt.Errorf("bad percentage %q", s)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v > 255 {
		return 0, fmt.Errorf("bad channel %q", s)
	}
	return v / 255, nil
}

// Valid reports whether s parses as a colour.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Mix blends fg toward bg by percent (0 keeps fg, 100 gives bg) and renders
// the result as an `rgb(r, g, b)` string. Unparseable inputs fall back to
// the other colour.
func Mix(fg, bg string, percent float64) string {
	c1, err1 := Parse(fg)
	c2, err2 := Parse(bg)
	switch {
	case err1 != nil && err2 != nil:
		return fg
	case err1 != nil:
		return RGBString(c2)
	case err2 != nil:
		return RGBString(c1)
	}

	t := percent / 100
	mixed := Color{
		Color: c1.BlendRgb(c2.Color, t),
		Alpha: c1.Alpha + (c2.Alpha-c1.Alpha)*t,
	}
	return RGBString(mixed)
}

// RGBString renders c as `rgb(r, g, b)`, or `rgba(r, g, b, a)` when it is
// not fully opaque.
func RGBString(c Color) string {
	r, g, b := c.RGB255()
	if c.Alpha >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(math.Round(c.Alpha*1000)/1000, 'f', -1, 64))
}
