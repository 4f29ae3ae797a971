// Package paint derives backend-agnostic paint commands from a styled,
// laid-out tree. Commands carry absolute coordinates in pre-scale layout
// units; translating them into pixel or page space is strictly a backend
// responsibility.
package paint

import (
	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
)

// Command is one paint operation. The sequence produced by the Builder is
// in document pre-order, which is also paint order: later commands
// composite above earlier ones where they overlap. Backends receive the
// sequence read-only and must not mutate it.
type Command interface {
	isCommand()
}

// FillRect fills an axis-aligned rectangle with a solid color.
type FillRect struct {
	X, Y  float64
	W, H  float64
	Color layout.Color
}

// DrawBorder strokes a rectangle outline along the box edge.
type DrawBorder struct {
	X, Y  float64
	W, H  float64
	Width float64
	Color layout.Color
}

// DrawText places one shaped text run. X/Y is the top-left of the run box;
// Baseline is the absolute y of the run's baseline, derived from the font
// ascent. Glyphs is the shaping output for Run, with cluster indices
// preserved. W is the total advance and H the line height, both in layout
// units.
type DrawText struct {
	X, Y     float64
	Baseline float64
	Run      string
	Font     fonts.Reference
	Size     float64
	Color    layout.Color
	Glyphs   []fonts.Glyph
	W, H     float64
}

func (FillRect) isCommand()   {}
func (DrawBorder) isCommand() {}
func (DrawText) isCommand()   {}

// Extent is the running maximum extent reached by emitted commands. It is
// computed as a side output of the traversal and drives auto-height.
type Extent struct {
	W float64
	H float64
}

// grow extends the extent to cover a box at (x, y) with size (w, h).
func (e *Extent) grow(x, y, w, h float64) {
	if right := x + w; right > e.W {
		e.W = right
	}
	if bottom := y + h; bottom > e.H {
		e.H = bottom
	}
}
