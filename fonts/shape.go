package fonts

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is one shaped glyph of a text run. Positions and advances are in
// layout units, relative to the run origin. Cluster is the rune index of
// the glyph's cluster start in the source run; ligatures make several
// source runes share one cluster, and one rune may also expand into
// several glyphs with the same cluster.
type Glyph struct {
	GID      uint16
	Cluster  int
	X        float64
	Y        float64
	XAdvance float64
	YAdvance float64
}

// shaperPool reuses HarfbuzzShaper instances. The shaper keeps an internal
// buffer and is not safe for concurrent use, so each Shape call checks one
// out for its duration.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts a text run into positioned glyphs at the given size
// (layout units). The cluster indices in the result follow the shaping
// engine's output, not a one-character-one-glyph assumption.
func (r *Resource) Shape(run string, size float64) []Glyph {
	if run == "" || r.shaper == nil {
		return nil
	}

	runes := []rune(run)

	// font.Face is not safe for concurrent use; wrap the shared *Font
	// fresh for this call. The wrapper is cheap.
	face := gotext.NewFace(r.shaper)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// convertGlyphs walks the shaped glyphs advancing a pen position, so each
// Glyph carries its resolved offset within the run.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))
	var x, y float64
	for i, g := range glyphs {
		// XOffset/YOffset are fine-grained adjustments on top of the pen
		// position; Advance moves the pen along the run's main axis.
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)
		adv := fixedToFloat(g.Advance)

		result[i] = Glyph{
			GID:      uint16(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + xOff,
			Y:        y + yOff,
			XAdvance: adv,
		}
		x += adv
	}
	return result
}

// Advance returns the total horizontal advance of a shaped run.
func Advance(glyphs []Glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}

// detectScript returns the script of the first non-space rune. Mixed-script
// runs should be split by the upstream stages before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
