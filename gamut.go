package contrast

import (
	"errors"
	"fmt"
	"math"
)

// ErrGamut reports a failed gamut intersection. Every finite chroma pair
// has a bounding face by construction of the color cube, so hitting this
// error means the matrices or face tables are corrupt, not that the input
// was bad. It is distinct from an infeasible suggestion, which is a normal
// negative result.
var ErrGamut = errors.New("contrast: gamut intersection failed")

// face is a triangle on the boundary of the RGB cube in YCbCr space,
// anchored at p0 (black or white).
type face struct {
	p0, p1, p2 YCbCr
}

// Anchor points and the two face sets bounding the gamut: three triangles
// fanning out from black toward the dark cube corners, three from white
// toward the light ones. Built once at init, read-only afterwards.
var (
	blackAnchor YCbCr
	whiteAnchor YCbCr
	blackFaces  [3]face
	whiteFaces  [3]face
)

func init() {
	blackAnchor = ToYCbCr(Black)
	whiteAnchor = ToYCbCr(White)
	r := ToYCbCr(Red)
	g := ToYCbCr(Green)
	b := ToYCbCr(Blue)
	c := ToYCbCr(Cyan)
	m := ToYCbCr(Magenta)
	y := ToYCbCr(Yellow)

	blackFaces = [3]face{
		{blackAnchor, r, g},
		{blackAnchor, g, b},
		{blackAnchor, b, r},
	}
	whiteFaces = [3]face{
		{whiteAnchor, c, m},
		{whiteAnchor, m, y},
		{whiteAnchor, y, c},
	}
}

// intersectLine intersects the constant-chroma segment from a (luma 0) to
// b (luma 1) with a triangular face. It solves the 3x3 linear system built
// from the segment direction and the two face edges sharing p0:
//
//	a + t*(b-a) = p0 + u*(p1-p0) + v*(p2-p0)
//
// The face is hit when t lands in [0, 1]. Reports ok = false on a miss or
// when the segment is parallel to the face plane.
func intersectLine(a, b YCbCr, f face) (t, u, v float64, ok bool) {
	e1 := f.p1.vec().sub(f.p0.vec())
	e2 := f.p2.vec().sub(f.p0.vec())
	m := columns(a.vec().sub(b.vec()), e1, e2)
	inv, ok := m.invert()
	if !ok {
		return 0, 0, 0, false
	}
	tuv := inv.mulVec(a.vec().sub(f.p0.vec()))
	if tuv[0] < 0 || tuv[0] > 1 {
		return 0, 0, 0, false
	}
	return tuv[0], tuv[1], tuv[2], true
}

// intersectGamut finds where the constant-chroma line for (cb, cr) crosses
// the given face set, trying the faces in order and taking the first hit.
// A miss across all three faces, or a hit whose in-face coordinates
// disagree with the probe line, is an internal invariant violation
// reported via ErrGamut.
func intersectGamut(cb, cr float64, faces [3]face) (YCbCr, error) {
	a := YCbCr{Y: 0, Cb: cb, Cr: cr}
	b := YCbCr{Y: 1, Cb: cb, Cr: cr}
	for _, f := range faces {
		t, u, v, ok := intersectLine(a, b, f)
		if !ok {
			continue
		}
		hit := a.Add(b.Sub(a).Scale(t))
		// Cross-check: the barycentric reconstruction must land on the
		// same point, chroma included.
		e1 := f.p1.vec().sub(f.p0.vec())
		e2 := f.p2.vec().sub(f.p0.vec())
		q := fromVec(f.p0.vec().add(e1.scale(u)).add(e2.scale(v)))
		if math.Abs(q.Cb-cb) > 1e-9 || math.Abs(q.Cr-cr) > 1e-9 {
			Logger().Error("gamut hit off the probe line", "cb", cb, "cr", cr, "hitCb", q.Cb, "hitCr", q.Cr)
			return YCbCr{}, fmt.Errorf("%w: intersection chroma mismatch at cb=%g cr=%g", ErrGamut, cb, cr)
		}
		return hit, nil
	}
	Logger().Error("no gamut face intersection", "cb", cb, "cr", cr)
	return YCbCr{}, fmt.Errorf("%w: no face intersection at cb=%g cr=%g", ErrGamut, cb, cr)
}

// atLuma maps p to a displayable YCbCr point with the target luma. If the
// target lies between p's luma and the gamut boundary at p's chroma, the
// chroma is kept as is. Past the boundary the full chroma is not
// achievable, so Cb and Cr are scaled down linearly toward the anchor
// (black or white), reaching zero at the anchor itself.
func atLuma(p YCbCr, target float64) (YCbCr, error) {
	anchor, faces := blackAnchor, blackFaces
	if target > p.Y {
		anchor, faces = whiteAnchor, whiteFaces
	}
	hit, err := intersectGamut(p.Cb, p.Cr, faces)
	if err != nil {
		return YCbCr{}, err
	}
	if (target-p.Y)*(target-hit.Y) < 0 {
		return YCbCr{Y: target, Cb: p.Cb, Cr: p.Cr}, nil
	}
	// On the achromatic line the boundary coincides with the anchor; there
	// is no chroma to shed.
	if anchor.Y == hit.Y {
		return YCbCr{Y: target, Cb: p.Cb, Cr: p.Cr}, nil
	}
	scale := (target - hit.Y) / (anchor.Y - hit.Y)
	return YCbCr{Y: target, Cb: p.Cb * (1 - scale), Cr: p.Cr * (1 - scale)}, nil
}
