package contrast

import "math"

// ITU-R BT.709 luma coefficients. kG is derived so the three sum to 1.
const (
	kR = 0.2126
	kB = 0.0722
	kG = 1 - kR - kB
)

// YCbCr represents a color as luma plus two chroma components. Luma is in
// [0, 1] for in-gamut colors; Cb and Cr are zero for achromatic colors.
// Values are derived from linear-light RGB and never persisted.
type YCbCr struct {
	Y, Cb, Cr float64
}

// Add returns the component-wise sum of two YCbCr points.
func (p YCbCr) Add(q YCbCr) YCbCr {
	return YCbCr{Y: p.Y + q.Y, Cb: p.Cb + q.Cb, Cr: p.Cr + q.Cr}
}

// Sub returns the component-wise difference of two YCbCr points.
func (p YCbCr) Sub(q YCbCr) YCbCr {
	return YCbCr{Y: p.Y - q.Y, Cb: p.Cb - q.Cb, Cr: p.Cr - q.Cr}
}

// Scale returns the point scaled by a scalar.
func (p YCbCr) Scale(s float64) YCbCr {
	return YCbCr{Y: p.Y * s, Cb: p.Cb * s, Cr: p.Cr * s}
}

func (p YCbCr) vec() vec3 {
	return vec3{p.Y, p.Cb, p.Cr}
}

func fromVec(v vec3) YCbCr {
	return YCbCr{Y: v[0], Cb: v[1], Cr: v[2]}
}

// Transform matrices between linear RGB and YCbCr. The forward matrix is
// derived from the luma coefficients; the inverse is computed once at init.
var (
	rgbToYCbCr = mat3{
		{kR, kG, kB},
		{-0.5 * kR / (1 - kB), -0.5 * kG / (1 - kB), 0.5},
		{0.5, -0.5 * kG / (1 - kR), -0.5 * kB / (1 - kR)},
	}
	ycbcrToRGB mat3
)

func init() {
	inv, ok := rgbToYCbCr.invert()
	if !ok {
		panic("contrast: RGB to YCbCr matrix is singular")
	}
	ycbcrToRGB = inv
}

// toLinear converts an encoded sRGB channel in [0, 255] to linear light
// in [0, 1] using the sRGB decoding curve.
func toLinear(channel float64) float64 {
	v := channel / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// fromLinear converts linear light in [0, 1] back to an encoded sRGB value
// in [0, 1]. The breakpoint is 0.03928/12.92, the image of the decoding
// curve's breakpoint.
func fromLinear(v float64) float64 {
	if v <= 0.00303949 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// ToYCbCr linearizes the color's channels and applies the RGB to YCbCr
// transform. Alpha is ignored.
func ToYCbCr(c Color) YCbCr {
	v := rgbToYCbCr.mulVec(vec3{toLinear(c.R), toLinear(c.G), toLinear(c.B)})
	return fromVec(v)
}

// FromYCbCr applies the inverse transform and re-encodes each channel,
// clamping to [0, 255] and rounding to the nearest integer. The result is
// always opaque: suggestion output colors carry no alpha.
func FromYCbCr(p YCbCr) Color {
	v := ycbcrToRGB.mulVec(p.vec())
	return Color{
		R: math.Round(clamp255(fromLinear(v[0]) * 255)),
		G: math.Round(clamp255(fromLinear(v[1]) * 255)),
		B: math.Round(clamp255(fromLinear(v[2]) * 255)),
		A: 1,
	}
}
