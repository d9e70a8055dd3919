package contrast

// WCAG 2.x minimum contrast ratios.
const (
	// AA is the level AA minimum for normal text.
	AA = 4.5
	// AALarge is the level AA minimum for large-scale text.
	AALarge = 3.0
	// AAA is the level AAA minimum for normal text.
	AAA = 7.0
	// AAALarge is the level AAA minimum for large-scale text.
	AAALarge = 4.5
)

// Luminance returns the relative luminance of c: the luma component of its
// YCbCr representation, in [0, 1]. Alpha is ignored; composite translucent
// colors with Flatten first.
func Luminance(c Color) float64 {
	return ToYCbCr(c).Y
}

// Flatten composites a translucent foreground over a background using
// standard alpha compositing. With an opaque foreground the result is the
// foreground itself.
func Flatten(fg, bg Color) Color {
	return Color{
		R: (1-fg.A)*bg.R + fg.A*fg.R,
		G: (1-fg.A)*bg.G + fg.A*fg.G,
		B: (1-fg.A)*bg.B + fg.A*fg.B,
		A: fg.A + bg.A*(1-fg.A),
	}
}

// Ratio returns the WCAG contrast ratio between a foreground and a
// background color, in [1, 21]. A translucent foreground is flattened onto
// the background before comparing, so what is measured is what the user
// actually sees. The result is symmetric in which color is brighter.
func Ratio(fg, bg Color) float64 {
	if fg.A < 1 {
		fg = Flatten(fg, bg)
	}
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Meets reports whether the pair satisfies the given minimum contrast
// ratio, e.g. contrast.AA or contrast.AAA.
func Meets(fg, bg Color, min float64) bool {
	return Ratio(fg, bg) >= min
}
