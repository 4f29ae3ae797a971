package render

import (
	"errors"
	"math"

	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
)

// Format selects the output encoding.
type Format int

const (
	// FormatPNG renders to a raster PNG image.
	FormatPNG Format = iota
	// FormatPDF renders to a vector PDF document.
	FormatPDF
)

// String returns "png" or "pdf".
func (f Format) String() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "png"
}

// Configuration errors, detected before traversal begins and always fatal
// to the call.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive unless auto-height is enabled")
	ErrInvalidScale  = errors.New("scale must be a positive, finite number")
)

// Config bundles the recognized render options.
//
// Width and Height are in pixels before the scale factor. When AutoHeight
// is set the output height is derived from the content extent and Height
// only serves as the fallback for empty documents. Background overrides
// the document-level default background; nil means "scheme default", and an
// explicitly zero-alpha color means transparent.
type Config struct {
	Width      int
	Height     int
	Scale      float64
	Format     Format
	Scheme     layout.ColorScheme
	AutoHeight bool
	Background *layout.Color

	// Meta is written into vector output only.
	Meta layout.DocumentMeta

	// Fonts maps family names to their sources. Families not listed here
	// resolve to the embedded fallback face.
	Fonts map[string]fonts.Source
}

// NewConfig returns the default configuration: 800×600 at scale 1.0, PNG
// output, light scheme, scheme-default background.
func NewConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Scale:  1.0,
	}
}

// Size returns a copy of the configuration with the given dimensions.
func (c Config) Size(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// Transparent returns a copy of the configuration with a fully transparent
// document background.
func (c Config) Transparent() Config {
	bg := layout.Transparent
	c.Background = &bg
	return c
}

// Validate checks the configuration. It is called before any traversal so
// that invalid configurations never produce partial output.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return ErrInvalidWidth
	}
	if c.Height <= 0 && !c.AutoHeight {
		return ErrInvalidHeight
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return ErrInvalidScale
	}
	return nil
}

// DocumentBackground resolves the document-level background: an explicit
// override wins, otherwise the scheme picks its default surface color.
func (c Config) DocumentBackground() layout.Color {
	if c.Background != nil {
		return c.Background.Clamp()
	}
	if c.Scheme == layout.SchemeDark {
		return layout.DarkSurface
	}
	return layout.White
}
