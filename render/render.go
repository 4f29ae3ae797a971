// Package render turns a styled, laid-out tree into encoded output bytes.
//
// It is the public entry point of the module: Render validates the
// configuration, builds the backend-agnostic paint command sequence, and
// drives either the raster or the vector backend. Each call owns its own
// font cache, so concurrent calls need no synchronization.
package render

import (
	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
	"github.com/ByLCY/inkwell/paint"
	"github.com/ByLCY/inkwell/render/raster"
	"github.com/ByLCY/inkwell/render/vector"
)

// Backend encodes a built command sequence into final output bytes.
// Backends receive the commands read-only and resolve fonts through the
// per-call cache.
type Backend interface {
	Render(cmds []paint.Command, extent paint.Extent, cache *fonts.Cache) ([]byte, error)
}

var (
	_ Backend = (*raster.Renderer)(nil)
	_ Backend = (*vector.Renderer)(nil)
)

// Render renders the tree according to cfg and returns the encoded bytes.
// A failed render returns no partial output.
func Render(root *layout.StyledNode, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The cache lives for exactly one call; font availability is not
	// re-validated across calls.
	cache := fonts.NewCache(cfg.Fonts)

	cmds, extent, err := paint.NewBuilder(cache, cfg.Scheme).Build(root)
	if err != nil {
		return nil, err
	}

	var backend Backend
	switch cfg.Format {
	case FormatPDF:
		backend = vector.New(vector.Config{
			Width:      cfg.Width,
			Height:     cfg.Height,
			AutoHeight: cfg.AutoHeight,
			Background: cfg.DocumentBackground(),
			Meta:       cfg.Meta,
		})
	default:
		backend = raster.New(raster.Config{
			Width:      cfg.Width,
			Height:     cfg.Height,
			Scale:      cfg.Scale,
			AutoHeight: cfg.AutoHeight,
			Background: cfg.DocumentBackground(),
		})
	}
	return backend.Render(cmds, extent, cache)
}

// RenderPNG renders the tree to a PNG image regardless of cfg.Format.
func RenderPNG(root *layout.StyledNode, cfg Config) ([]byte, error) {
	cfg.Format = FormatPNG
	return Render(root, cfg)
}

// RenderPDF renders the tree to a PDF document regardless of cfg.Format.
func RenderPDF(root *layout.StyledNode, cfg Config) ([]byte, error) {
	cfg.Format = FormatPDF
	return Render(root, cfg)
}
