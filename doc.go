// Package contrast computes WCAG contrast ratios between sRGB colors and
// suggests perceptually close replacement colors that meet a target ratio.
//
// # Overview
//
// contrast is a pure Go library for accessibility tooling. Given a
// foreground/background pair it answers two questions: "what is the WCAG
// contrast ratio?" and "if the ratio is too low, what is the nearest color
// that fixes it?". The suggestion engine works in YCbCr space: it inverts
// the contrast formula to a target luminance, then intersects a
// constant-chroma line with the faces of the RGB gamut cube to find a
// displayable color at that luminance, desaturating only when the target
// is unreachable at full chroma.
//
// # Quick Start
//
//	import "github.com/gogpu/contrast"
//
//	fg, _ := contrast.Parse("rgb(119, 119, 119)")
//	bg, _ := contrast.Parse("rgb(255, 255, 255)")
//
//	ratio := contrast.Ratio(fg, bg)
//	if ratio < contrast.AA {
//	    fixes, err := contrast.Suggest(fg, bg, map[string]float64{"AA": contrast.AA})
//	    // fixes["AA"].FG is a hex string like "#767676"
//	}
//
// # Color Model
//
// Colors carry red, green and blue channels on the 0-255 scale and an alpha
// on 0-1. Channels are float64 so that alpha compositing and rgba formatting
// stay exact; rounding to integers happens only when a color is formatted as
// hex or produced from YCbCr.
//
// # Concurrency
//
// Every operation is a pure function over its inputs plus constant tables
// (transform matrices, gamut faces) built once at init. There is no shared
// mutable state, so all functions are safe for concurrent use without
// locking.
package contrast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
