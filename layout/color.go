package layout

import (
	"image/color"
	"math"
)

// Color is an RGBA color in the renderer's working space. Channels are in
// [0, 1]. Linear marks the value as linear-light; otherwise the channels
// are sRGB-encoded. Out-of-range channels are tolerated in the input tree
// and normalized by Clamp rather than rejected.
type Color struct {
	R      float64 `json:"r"`
	G      float64 `json:"g"`
	B      float64 `json:"b"`
	A      float64 `json:"a"`
	Linear bool    `json:"linear,omitempty"`
}

// RGBA8 builds an sRGB-tagged color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// White and DarkSurface are the document-level default backgrounds for the
// light and dark schemes respectively.
var (
	White       = RGBA8(255, 255, 255, 255)
	DarkSurface = RGBA8(18, 18, 18, 255)
	Transparent = Color{}
)

// Clamp normalizes every channel into [0, 1].
func (c Color) Clamp() Color {
	c.R = clamp01(c.R)
	c.G = clamp01(c.G)
	c.B = clamp01(c.B)
	c.A = clamp01(c.A)
	return c
}

// Opaque reports whether the color has any visible coverage.
func (c Color) Opaque() bool { return c.A > 0 }

// ToSRGB converts the color to sRGB encoding. It is the identity when the
// color is already sRGB-tagged.
func (c Color) ToSRGB() Color {
	if !c.Linear {
		return c
	}
	return Color{R: srgbEncode(c.R), G: srgbEncode(c.G), B: srgbEncode(c.B), A: c.A}
}

// ToLinear converts the color to linear-light encoding. It is the identity
// when the color is already linear.
func (c Color) ToLinear() Color {
	if c.Linear {
		return c
	}
	return Color{R: srgbDecode(c.R), G: srgbDecode(c.G), B: srgbDecode(c.B), A: c.A, Linear: true}
}

// RGBA8 returns the sRGB 8-bit channels of the color, clamped.
func (c Color) RGBA8() (r, g, b, a uint8) {
	s := c.ToSRGB().Clamp()
	return u8(s.R), u8(s.G), u8(s.B), u8(s.A)
}

// Std returns the color as a premultiplication-free standard library color.
func (c Color) Std() color.Color {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func u8(v float64) uint8 {
	return uint8(math.Round(v * 255.0))
}

// sRGB transfer functions (IEC 61966-2-1).
func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
