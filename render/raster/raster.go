// Package raster encodes paint commands into a PNG image.
//
// The backend replays the command sequence onto a canvas scene in
// CartesianIV (top-left origin, matching layout space), rasterizes it at
// the configured scale and encodes the pixel buffer losslessly. The scale
// factor multiplies every coordinate and dimension uniformly, so output at
// scale k has identical proportions to scale 1 at k× the resolution.
package raster

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
	"github.com/ByLCY/inkwell/paint"
)

// Config sizes and colors the raster surface.
type Config struct {
	Width      int
	Height     int
	Scale      float64
	AutoHeight bool
	Background layout.Color
}

// Renderer is the raster backend.
type Renderer struct {
	cfg Config
}

// New creates a raster backend for one render call.
func New(cfg Config) *Renderer { return &Renderer{cfg: cfg} }

// Render paints the commands in order (later commands composite above
// earlier ones) and returns the encoded PNG. A missing font has already
// been substituted by the cache; the raster path accepts the fallback
// because a degraded image is still a usable deliverable.
func (r *Renderer) Render(cmds []paint.Command, extent paint.Extent, cache *fonts.Cache) ([]byte, error) {
	w := float64(r.cfg.Width)
	h := float64(r.cfg.Height)
	if r.cfg.AutoHeight {
		if e := math.Ceil(extent.H); e > 0 {
			h = e
		}
	}

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, same as layout space

	if r.cfg.Background.Opaque() {
		fill(ctx, 0, 0, w, h, r.cfg.Background)
	}

	for _, cmd := range cmds {
		switch t := cmd.(type) {
		case paint.FillRect:
			fill(ctx, t.X, t.Y, t.W, t.H, t.Color)
		case paint.DrawBorder:
			stroke(ctx, t.X, t.Y, t.W, t.H, t.Width, t.Color)
		case paint.DrawText:
			res, err := cache.Resolve(t.Font)
			if err != nil {
				return nil, err
			}
			face := res.Face(t.Size, t.Color)
			line := canvas.NewTextLine(face, t.Run, canvas.Left)
			ctx.DrawText(t.X, t.Baseline, line)
		}
	}

	// Colors are already sRGB-encoded when handed to canvas, so the
	// rasterizer must not decode/re-encode them.
	img := rasterizer.Draw(c, canvas.DPMM(r.cfg.Scale), canvas.DefaultColorSpace)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(ctx *canvas.Context, x, y, w, h float64, col layout.Color) {
	ctx.SetFillColor(colorFromLayout(col))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// stroke draws the border centered on an inset of half the border width,
// keeping the stroke inside the box edge.
func stroke(ctx *canvas.Context, x, y, w, h, bw float64, col layout.Color) {
	if bw > w || bw > h {
		fill(ctx, x, y, w, h, col)
		return
	}
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(colorFromLayout(col))
	ctx.SetStrokeWidth(bw)
	ctx.DrawPath(x+bw/2, y+bw/2, canvas.Rectangle(w-bw, h-bw))
}

// colorFromLayout converts a working-space color to the canvas color type,
// normalizing to sRGB first (identity when already sRGB).
func colorFromLayout(c layout.Color) color.Color {
	s := c.ToSRGB().Clamp()
	return canvas.RGBA(s.R, s.G, s.B, s.A)
}
