package contrast

import (
	"errors"
	"math"
	"testing"
)

func TestAnchors(t *testing.T) {
	if math.Abs(blackAnchor.Y) > 1e-12 || math.Abs(blackAnchor.Cb) > 1e-12 || math.Abs(blackAnchor.Cr) > 1e-12 {
		t.Errorf("black anchor = %+v, want origin", blackAnchor)
	}
	if math.Abs(whiteAnchor.Y-1) > 1e-9 || math.Abs(whiteAnchor.Cb) > 1e-12 || math.Abs(whiteAnchor.Cr) > 1e-12 {
		t.Errorf("white anchor = %+v, want luma 1 with zero chroma", whiteAnchor)
	}
}

func TestIntersectGamutAchromatic(t *testing.T) {
	// The achromatic line enters the gamut at black and leaves at white.
	hit, err := intersectGamut(0, 0, blackFaces)
	if err != nil {
		t.Fatalf("intersectGamut(0, 0, black) error: %v", err)
	}
	if math.Abs(hit.Y) > 1e-9 {
		t.Errorf("black-side achromatic boundary luma = %v, want 0", hit.Y)
	}

	hit, err = intersectGamut(0, 0, whiteFaces)
	if err != nil {
		t.Fatalf("intersectGamut(0, 0, white) error: %v", err)
	}
	if math.Abs(hit.Y-1) > 1e-9 {
		t.Errorf("white-side achromatic boundary luma = %v, want 1", hit.Y)
	}
}

func TestIntersectGamutPrimaries(t *testing.T) {
	// At a full-saturation corner the gamut degenerates to a single point,
	// so both boundary lumas coincide with the corner's own luma.
	for _, tt := range []struct {
		name string
		c    Color
	}{
		{"red", Red},
		{"green", Green},
		{"blue", Blue},
		{"cyan", Cyan},
		{"magenta", Magenta},
		{"yellow", Yellow},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := ToYCbCr(tt.c)
			for _, faces := range [][3]face{blackFaces, whiteFaces} {
				hit, err := intersectGamut(p.Cb, p.Cr, faces)
				if err != nil {
					t.Fatalf("intersectGamut error: %v", err)
				}
				if math.Abs(hit.Y-p.Y) > 1e-9 {
					t.Errorf("boundary luma = %v, want %v", hit.Y, p.Y)
				}
				if math.Abs(hit.Cb-p.Cb) > 1e-9 || math.Abs(hit.Cr-p.Cr) > 1e-9 {
					t.Errorf("boundary chroma drifted: %+v vs %+v", hit, p)
				}
			}
		})
	}
}

func TestIntersectGamutInteriorBracketsLuma(t *testing.T) {
	// For any in-gamut color, its luma lies between the black-side and
	// white-side boundary lumas at its chroma.
	colors := []Color{
		RGB(200, 100, 50),
		RGB(12, 34, 56),
		RGB(130, 200, 40),
		RGB(60, 60, 200),
	}
	for _, c := range colors {
		p := ToYCbCr(c)
		lo, err := intersectGamut(p.Cb, p.Cr, blackFaces)
		if err != nil {
			t.Fatalf("black side: %v", err)
		}
		hi, err := intersectGamut(p.Cb, p.Cr, whiteFaces)
		if err != nil {
			t.Fatalf("white side: %v", err)
		}
		if !(lo.Y <= p.Y+1e-9 && p.Y <= hi.Y+1e-9) {
			t.Errorf("%v: luma %v not in boundary range [%v, %v]", c, p.Y, lo.Y, hi.Y)
		}
	}
}

func TestAtLumaKeepsChromaInsideGamut(t *testing.T) {
	// White's chroma is zero, and any target luma in (0, 1) stays at zero
	// chroma: the canonical gray-suggestion path.
	got, err := atLuma(ToYCbCr(White), 0.18)
	if err != nil {
		t.Fatalf("atLuma error: %v", err)
	}
	want := YCbCr{Y: 0.18, Cb: 0, Cr: 0}
	if math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Cb) > 1e-12 || math.Abs(got.Cr) > 1e-12 {
		t.Errorf("atLuma(white, 0.18) = %+v, want %+v", got, want)
	}

	// A midtone color darkened toward, but not past, its boundary keeps
	// its chroma exactly.
	p := ToYCbCr(RGB(200, 100, 50))
	lo, err := intersectGamut(p.Cb, p.Cr, blackFaces)
	if err != nil {
		t.Fatalf("intersectGamut error: %v", err)
	}
	target := (p.Y + lo.Y) / 2
	got, err = atLuma(p, target)
	if err != nil {
		t.Fatalf("atLuma error: %v", err)
	}
	if got.Cb != p.Cb || got.Cr != p.Cr {
		t.Errorf("in-gamut target changed chroma: %+v vs %+v", got, p)
	}
	if got.Y != target {
		t.Errorf("atLuma luma = %v, want %v", got.Y, target)
	}
}

func TestAtLumaDesaturates(t *testing.T) {
	// Brightening pure red far past its boundary must shed chroma: there is
	// no bright saturated red in sRGB.
	p := ToYCbCr(Red)
	target := 0.8
	got, err := atLuma(p, target)
	if err != nil {
		t.Fatalf("atLuma error: %v", err)
	}
	if got.Y != target {
		t.Errorf("atLuma luma = %v, want %v", got.Y, target)
	}
	scale := (target - p.Y) / (whiteAnchor.Y - p.Y)
	wantCb := p.Cb * (1 - scale)
	wantCr := p.Cr * (1 - scale)
	if math.Abs(got.Cb-wantCb) > 1e-9 || math.Abs(got.Cr-wantCr) > 1e-9 {
		t.Errorf("desaturated chroma = (%v, %v), want (%v, %v)", got.Cb, got.Cr, wantCb, wantCr)
	}
	if math.Abs(got.Cb) >= math.Abs(p.Cb) {
		t.Error("desaturation did not reduce chroma magnitude")
	}
}

func TestIntersectGamutDegenerateFaces(t *testing.T) {
	// Collapsed faces make every intersection fail; this is the internal
	// invariant violation, reported via ErrGamut rather than as a normal
	// negative result.
	degenerate := [3]face{
		{blackAnchor, blackAnchor, blackAnchor},
		{blackAnchor, blackAnchor, blackAnchor},
		{blackAnchor, blackAnchor, blackAnchor},
	}
	_, err := intersectGamut(0.1, -0.05, degenerate)
	if err == nil {
		t.Fatal("intersectGamut with degenerate faces returned nil error")
	}
	if !errors.Is(err, ErrGamut) {
		t.Errorf("error = %v, want ErrGamut", err)
	}
}
