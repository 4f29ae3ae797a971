package layout

import (
	"math"
	"testing"
)

// TestPtUnitRoundTrip verifies the pt↔unit conversion round-trips within
// floating point precision.
func TestPtUnitRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		unit := pt * PtToUnit
		back := unit * UnitToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→unit→pt drift: in=%g back=%g diff=%g", pt, back, diff)
		}
	}
	for _, u := range samples {
		pt := u * UnitToPt
		back := pt * PtToUnit
		if diff := math.Abs(back - u); diff > 1e-9 {
			t.Fatalf("unit→pt→unit drift: in=%g back=%g diff=%g", u, back, diff)
		}
	}
}
