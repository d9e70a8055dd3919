package contrast

import "fmt"

// ratioEpsilon is added to the target ratio before inverting the contrast
// formula. It compensates for the channel quantization applied when the
// suggested color is formatted, which would otherwise let a suggestion land
// a hair below the requested ratio. Changing it changes the output for
// ratio-boundary cases, so treat it as part of the contract.
const ratioEpsilon = 0.02

// Suggestion is one replacement pair meeting a requested contrast ratio.
// FG and BG are formatted color strings (hex for opaque colors, rgba
// otherwise); Contrast is the achieved ratio formatted to two decimals.
type Suggestion struct {
	FG, BG, Contrast string
}

// Suggest proposes, for each labeled target ratio, a replacement pair that
// meets it while staying perceptually close to the input: first it tries
// moving only the foreground's luminance at fixed chroma, and only if no
// displayable luminance exists does it move the background instead. Labels
// for which neither adjustment is feasible are absent from the result.
//
// The returned error is non-nil only for an internal geometry failure
// (ErrGamut); an infeasible label is a normal negative result, never an
// error.
func Suggest(fg, bg Color, targets map[string]float64) (map[string]Suggestion, error) {
	lfg := Luminance(fg)
	lbg := Luminance(bg)
	fgBrighter := lfg > lbg

	out := make(map[string]Suggestion, len(targets))
	for label, ratio := range targets {
		// Attempt 1: adjust the foreground, keeping it on the same side
		// of the background.
		if want := desiredLuma(lbg, ratio, fgBrighter); 0 <= want && want <= 1 {
			next, err := withLuma(fg, want)
			if err != nil {
				return nil, fmt.Errorf("suggesting %q: %w", label, err)
			}
			out[label] = newSuggestion(next, bg, Ratio(next, bg))
			continue
		}

		// Attempt 2: the foreground cannot reach the needed luminance,
		// move the background the opposite way instead.
		want := desiredLuma(lfg, ratio, !fgBrighter)
		if want < 0 || want > 1 {
			Logger().Debug("no feasible suggestion", "label", label, "ratio", ratio)
			continue
		}
		next, err := withLuma(bg, want)
		if err != nil {
			return nil, fmt.Errorf("suggesting %q: %w", label, err)
		}
		out[label] = newSuggestion(fg, next, Ratio(fg, next))
	}
	return out, nil
}

// desiredLuma inverts the contrast formula: the luminance a color needs so
// that its ratio against a color of luminance other reaches the target.
// brighter selects which side of the other color the result lies on. The
// result may fall outside [0, 1], in which case no displayable color can
// reach the ratio from that side.
func desiredLuma(other, ratio float64, brighter bool) float64 {
	if brighter {
		return (other+0.05)*(ratio+ratioEpsilon) - 0.05
	}
	return (other+0.05)/(ratio+ratioEpsilon) - 0.05
}

// withLuma returns a displayable color with the target luminance and the
// chroma of c, desaturated only as far as the gamut requires.
func withLuma(c Color, target float64) (Color, error) {
	p, err := atLuma(ToYCbCr(c), target)
	if err != nil {
		return Color{}, err
	}
	return FromYCbCr(p), nil
}

func newSuggestion(fg, bg Color, ratio float64) Suggestion {
	return Suggestion{
		FG:       fg.String(),
		BG:       bg.String(),
		Contrast: fmt.Sprintf("%.2f", ratio),
	}
}
