package render

import (
	"errors"
	"testing"

	"github.com/ByLCY/inkwell/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("unexpected default size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 1.0 {
		t.Fatalf("unexpected default scale %g", cfg.Scale)
	}
	if cfg.Format != FormatPNG {
		t.Fatalf("default format must be png, got %s", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidWidth},
		{"negative width", func(c *Config) { c.Width = -10 }, ErrInvalidWidth},
		{"zero height", func(c *Config) { c.Height = 0 }, ErrInvalidHeight},
		{"zero scale", func(c *Config) { c.Scale = 0 }, ErrInvalidScale},
		{"negative scale", func(c *Config) { c.Scale = -1 }, ErrInvalidScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mut(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateAllowsZeroHeightWithAutoHeight(t *testing.T) {
	cfg := NewConfig()
	cfg.Height = 0
	cfg.AutoHeight = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("auto-height must allow zero height: %v", err)
	}
}

func TestDocumentBackgroundFollowsScheme(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.DocumentBackground(); got != layout.White {
		t.Fatalf("light default must be white, got %+v", got)
	}
	cfg.Scheme = layout.SchemeDark
	if got := cfg.DocumentBackground(); got != layout.DarkSurface {
		t.Fatalf("dark default must be the dark surface, got %+v", got)
	}

	override := layout.RGBA8(1, 2, 3, 255)
	cfg.Background = &override
	if got := cfg.DocumentBackground(); got != override {
		t.Fatalf("explicit background must win, got %+v", got)
	}
}

func TestTransparentShortcut(t *testing.T) {
	cfg := NewConfig().Transparent()
	if cfg.Background == nil || cfg.Background.Opaque() {
		t.Fatalf("transparent config must carry a zero-alpha background")
	}
}

func TestSizeShortcut(t *testing.T) {
	cfg := NewConfig().Size(1024, 768)
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Fatalf("Size() = %dx%d, want 1024x768", cfg.Width, cfg.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sized config must validate: %v", err)
	}
}
