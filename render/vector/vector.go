// Package vector encodes paint commands into a PDF document.
//
// The backend flips every command from content space into page space,
// embeds each distinct font exactly once, groups shaped glyphs into
// clusters so extracted text reconstructs the source runs, and serializes
// the page through the canvas PDF writer.
package vector

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
	"github.com/ByLCY/inkwell/paint"
)

// Config sizes the page and carries the document metadata.
type Config struct {
	Width      int
	Height     int
	AutoHeight bool
	Background layout.Color
	Meta       layout.DocumentMeta
}

// Renderer is the vector backend.
type Renderer struct {
	cfg Config
}

// New creates a vector backend for one render call.
func New(cfg Config) *Renderer { return &Renderer{cfg: cfg} }

// Render encodes the commands as a single-page PDF. Fonts are resolved
// once per distinct reference before any drawing happens, so a font
// failure aborts the call with no partial output.
func (r *Renderer) Render(cmds []paint.Command, extent paint.Extent, cache *fonts.Cache) ([]byte, error) {
	w := float64(r.cfg.Width)
	h := float64(r.cfg.Height)
	if r.cfg.AutoHeight {
		if e := math.Ceil(extent.H); e > 0 {
			h = e
		}
	}

	faces, err := embedFonts(cmds, cache)
	if err != nil {
		return nil, err
	}

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c) // default coordinate system is page space

	if r.cfg.Background.Opaque() {
		fill(ctx, 0, 0, w, h, r.cfg.Background)
	}

	for _, cmd := range cmds {
		switch t := cmd.(type) {
		case paint.FillRect:
			fill(ctx, t.X, RectOriginY(h, t.Y, t.H), t.W, t.H, t.Color)
		case paint.DrawBorder:
			strokeBorder(ctx, h, t)
		case paint.DrawText:
			if err := drawText(ctx, h, t, faces[t.Font]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	applyMeta(writer, r.cfg.Meta)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// embedFonts resolves each distinct font reference used by a text command
// exactly once. The cache guarantees later lookups reuse these instances,
// so every face is embedded into the document a single time no matter how
// many runs use it.
func embedFonts(cmds []paint.Command, cache *fonts.Cache) (map[fonts.Reference]*fonts.Resource, error) {
	faces := map[fonts.Reference]*fonts.Resource{}
	for _, cmd := range cmds {
		t, ok := cmd.(paint.DrawText)
		if !ok {
			continue
		}
		if _, ok := faces[t.Font]; ok {
			continue
		}
		res, err := cache.Resolve(t.Font)
		if err != nil {
			return nil, &FontEmbedError{Ref: t.Font, Err: err}
		}
		if res.Substituted {
			// An unregistered family is unavailable; a registered source
			// that failed to load or parse is an embedding failure.
			if errors.Is(res.LoadErr, fonts.ErrUnknownFamily) {
				return nil, &FontUnavailableError{Ref: t.Font, Err: res.LoadErr}
			}
			return nil, &FontEmbedError{Ref: t.Font, Err: res.LoadErr}
		}
		faces[t.Font] = res
	}
	return faces, nil
}

// drawText verifies the run's cluster structure and places the run with
// its baseline flipped into page space.
func drawText(ctx *canvas.Context, pageH float64, t paint.DrawText, res *fonts.Resource) error {
	clusters := Clusters(t.Run, t.Glyphs)
	if got := Reconstruct(clusters); got != t.Run {
		return fmt.Errorf("glyph clusters do not reconstruct run %q (got %q)", t.Run, got)
	}

	face := res.Face(t.Size, t.Color)
	line := canvas.NewTextLine(face, t.Run, canvas.Left)
	ctx.DrawText(t.X, PageY(pageH, t.Baseline), line)
	return nil
}

func strokeBorder(ctx *canvas.Context, pageH float64, t paint.DrawBorder) {
	bw := t.Width
	if bw > t.W || bw > t.H {
		fill(ctx, t.X, RectOriginY(pageH, t.Y, t.H), t.W, t.H, t.Color)
		return
	}
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(colorFromLayout(t.Color))
	ctx.SetStrokeWidth(bw)
	ctx.DrawPath(t.X+bw/2, RectOriginY(pageH, t.Y+bw/2, t.H-bw), canvas.Rectangle(t.W-bw, t.H-bw))
}

func fill(ctx *canvas.Context, x, y, w, h float64, col layout.Color) {
	ctx.SetFillColor(colorFromLayout(col))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// colorFromLayout converts a working-space color into the page's native
// sRGB space before emission; the conversion is the identity when the
// working space already is sRGB.
func colorFromLayout(c layout.Color) color.Color {
	s := c.ToSRGB().Clamp()
	return canvas.RGBA(s.R, s.G, s.B, s.A)
}
