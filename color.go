package contrast

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
)

// Color represents an sRGB color with red, green and blue channels in the
// range [0, 255] and an alpha component in [0, 1].
//
// Channels are float64 rather than integers so that alpha compositing and
// rgba formatting preserve fractional values; rounding happens only when a
// color is formatted as hex or produced by FromYCbCr.
type Color struct {
	R, G, B float64
	A       float64
}

// RGB creates an opaque color from RGB channels in [0, 255].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common colors. Black through Yellow double as the source colors for the
// gamut cube anchors in the suggestion search.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Transparent = Color{R: 0, G: 0, B: 0, A: 0}
)

// The accepted grammars are intentionally narrow: accessibility checkers
// hand us already-normalized CSS values, not arbitrary author input.
var (
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d*\.?\d+)\s*\)$`)
)

// Parse recognizes exactly three forms: the literal "transparent",
// "rgb(r, g, b)" with integer channels, and "rgba(r, g, b, a)" with integer
// channels and a real alpha. Whitespace around commas is optional. Any other
// text, or a channel outside [0, 255], or an alpha outside [0, 1], reports
// ok = false.
func Parse(s string) (Color, bool) {
	if s == "transparent" {
		return Transparent, true
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return parseChannels(m[1], m[2], m[3], "1")
	}
	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		return parseChannels(m[1], m[2], m[3], m[4])
	}
	return Color{}, false
}

func parseChannels(r, g, b, a string) (Color, bool) {
	cr, err1 := strconv.Atoi(r)
	cg, err2 := strconv.Atoi(g)
	cb, err3 := strconv.Atoi(b)
	ca, err4 := strconv.ParseFloat(a, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Color{}, false
	}
	if cr > 255 || cg > 255 || cb > 255 || ca < 0 || ca > 1 {
		return Color{}, false
	}
	return Color{R: float64(cr), G: float64(cg), B: float64(cb), A: ca}, true
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	return RGB(float64(r), float64(g), float64(b)), true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// String formats the color for accessibility reports. An opaque color
// becomes a 6-digit lowercase hex string with channels rounded to the
// nearest integer; a translucent color becomes "rgba(r,g,b,a)" with the
// numeric fields emitted unrounded.
func (c Color) String() string {
	if c.A == 1 {
		return fmt.Sprintf("#%02x%02x%02x",
			int(math.Round(clamp255(c.R))),
			int(math.Round(clamp255(c.G))),
			int(math.Round(clamp255(c.B))))
	}
	return "rgba(" + formatNum(c.R) + "," + formatNum(c.G) + "," + formatNum(c.B) + "," + formatNum(c.A) + ")"
}

// formatNum emits the shortest decimal representation of v.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(math.Round(clamp255(c.R))),
		G: uint8(math.Round(clamp255(c.G))),
		B: uint8(math.Round(clamp255(c.B))),
		A: uint8(math.Round(clamp255(c.A * 255))),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// color.Color.RGBA returns alpha-premultiplied 16-bit channels.
	return Color{
		R: float64(r) / float64(a) * 255,
		G: float64(g) / float64(a) * 255,
		B: float64(b) / float64(a) * 255,
		A: float64(a) / 65535,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
