package layout

import (
	"math"
	"testing"
)

func TestClampNormalizesOutOfRangeChannels(t *testing.T) {
	c := Color{R: -0.5, G: 1.5, B: 0.25, A: 2}.Clamp()
	if c.R != 0 || c.G != 1 || c.B != 0.25 || c.A != 1 {
		t.Fatalf("clamp produced %+v", c)
	}
}

func TestToSRGBIsIdentityForSRGB(t *testing.T) {
	c := RGBA8(102, 126, 234, 255)
	if got := c.ToSRGB(); got != c {
		t.Fatalf("sRGB→sRGB must be identity: got %+v want %+v", got, c)
	}
}

// TestSRGBLinearRoundTrip verifies the transfer functions are inverse of
// each other within floating point precision.
func TestSRGBLinearRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 0.04, 0.25, 0.5, 0.73, 1}
	for _, v := range samples {
		c := Color{R: v, G: v, B: v, A: 1}
		back := c.ToLinear().ToSRGB()
		if diff := math.Abs(back.R - v); diff > 1e-9 {
			t.Fatalf("round trip drift for %g: got %g diff %g", v, back.R, diff)
		}
		if back.Linear {
			t.Fatalf("round trip must end sRGB-tagged")
		}
	}
}

// TestRGBA8RoundTrip checks 8-bit channels survive the float working space
// exactly, which the raster end-to-end pixel checks rely on.
func TestRGBA8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 18, 102, 126, 234, 254, 255} {
		c := RGBA8(v, v, v, 255)
		r, g, b, a := c.RGBA8()
		if r != v || g != v || b != v || a != 255 {
			t.Fatalf("8-bit round trip broke: in=%d out=(%d,%d,%d,%d)", v, r, g, b, a)
		}
	}
}

func TestLinearConversionChangesEncodingNotColor(t *testing.T) {
	c := RGBA8(200, 100, 50, 255)
	lin := c.ToLinear()
	if !lin.Linear {
		t.Fatalf("ToLinear must tag the color linear")
	}
	r, g, b, a := lin.RGBA8()
	cr, cg, cb, ca := c.RGBA8()
	if r != cr || g != cg || b != cb || a != ca {
		t.Fatalf("conversion altered perceived color: (%d,%d,%d,%d) vs (%d,%d,%d,%d)", r, g, b, a, cr, cg, cb, ca)
	}
}
