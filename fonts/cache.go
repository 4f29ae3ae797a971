package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/inkwell/layout"
)

// fallbackPath is the embedded face substituted when a requested family
// cannot be loaded.
const fallbackPath = "Inter/static/Inter-Regular.ttf"

// ErrUnknownFamily marks a reference whose family has no registered
// source. A substituted Resource whose LoadErr does not wrap it failed on
// a registered source instead (unreadable file, unparsable data).
var ErrUnknownFamily = errors.New("unknown font family")

// Source provides font bytes for a family, either inline or from a path.
// A Path starting with "embed:" refers to a face embedded in this package.
type Source struct {
	Bytes []byte
	Path  string
}

// Resource is a loaded font shared by every text run that references it
// within one render call. It is immutable after construction; per-backend
// derived state (subset tables, shaped runs) is owned by the backend, never
// written back here.
type Resource struct {
	Ref Reference

	// Substituted is set when the requested font could not be loaded and
	// the fallback face stands in for it. LoadErr records the original
	// failure in that case.
	Substituted bool
	LoadErr     error

	family *canvas.FontFamily
	style  canvas.FontStyle
	shaper *gotext.Font
}

// Face returns a drawing face for the resource at the given size (layout
// units) and color.
func (r *Resource) Face(size float64, col layout.Color) *canvas.FontFace {
	return r.family.Face(size*layout.UnitToPt, col.Std(), r.style, canvas.FontNormal)
}

// Metrics returns the face metrics at the given size, in layout units.
func (r *Resource) Metrics(size float64) canvas.FontMetrics {
	return r.Face(size, layout.RGBA8(0, 0, 0, 255)).Metrics()
}

// Ascent returns the distance from the top of a line to its baseline.
func (r *Resource) Ascent(size float64) float64 {
	return r.Metrics(size).Ascent
}

// LineHeight returns the default line height at the given size.
func (r *Resource) LineHeight(size float64) float64 {
	return r.Metrics(size).LineHeight
}

// Cache resolves font references for a single render call. Resolution is
// idempotent: the same reference always returns the same resource
// instance, and the expensive load happens at most once per distinct
// reference. A cache must not be shared between concurrent render calls;
// each call owns its own instance.
type Cache struct {
	mu       sync.Mutex
	sources  map[string]Source // by lowercased family
	entries  map[Reference]*Resource
	fallback *Resource
	loads    int
}

// NewCache creates a cache over the given family sources. Sources may be
// nil; every resolution then degrades to the embedded fallback.
func NewCache(sources map[string]Source) *Cache {
	c := &Cache{
		sources: map[string]Source{},
		entries: map[Reference]*Resource{},
	}
	for family, src := range sources {
		family = strings.ToLower(strings.TrimSpace(family))
		if family == "" {
			continue
		}
		c.sources[family] = src
	}
	return c
}

// Resolve returns the loaded resource for ref. A missing or unreadable
// font degrades to the fallback face (Resource.Substituted is set) rather
// than failing, because substitution preserves the geometry the layout
// stage already committed to. The returned error is non-nil only when even
// the fallback cannot be loaded.
func (c *Cache) Resolve(ref Reference) (*Resource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.entries[ref]; ok {
		return res, nil
	}

	res, err := c.load(ref)
	if err != nil {
		fb, fbErr := c.fallbackResource()
		if fbErr != nil {
			return nil, fmt.Errorf("load font %s: %w", ref, err)
		}
		res = &Resource{
			Ref:         ref,
			Substituted: true,
			LoadErr:     err,
			family:      fb.family,
			style:       canvas.FontRegular,
			shaper:      fb.shaper,
		}
	}
	c.entries[ref] = res
	return res, nil
}

// Loads reports how many underlying font loads the cache has performed.
func (c *Cache) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

// load performs the expensive load for ref. Caller holds c.mu.
func (c *Cache) load(ref Reference) (*Resource, error) {
	src, ok := c.sources[ref.Family]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFamily, ref.Family)
	}
	data, err := c.sourceBytes(src)
	if err != nil {
		return nil, err
	}
	return c.build(ref, ref.canvasStyle(), data)
}

func (c *Cache) sourceBytes(src Source) ([]byte, error) {
	if len(src.Bytes) > 0 {
		return src.Bytes, nil
	}
	if src.Path == "" {
		return nil, fmt.Errorf("font source has neither bytes nor path")
	}
	// The "embed:" scheme addresses faces shipped inside this package.
	if name, ok := strings.CutPrefix(src.Path, "embed:"); ok {
		return Embedded(name)
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", src.Path, err)
	}
	return data, nil
}

// build parses the font for both the drawing and the shaping side and
// counts one load.
func (c *Cache) build(ref Reference, style canvas.FontStyle, data []byte) (*Resource, error) {
	c.loads++

	family := canvas.NewFontFamily(ref.Family)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, fmt.Errorf("parse font %s: %w", ref, err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s for shaping: %w", ref, err)
	}

	return &Resource{
		Ref:    ref,
		family: family,
		style:  style,
		shaper: face.Font,
	}, nil
}

func (c *Cache) fallbackResource() (*Resource, error) {
	if c.fallback != nil {
		return c.fallback, nil
	}
	data, err := Embedded(fallbackPath)
	if err != nil {
		return nil, err
	}
	ref := Reference{Family: "inkwell-fallback", Weight: 400}
	res, err := c.build(ref, canvas.FontRegular, data)
	if err != nil {
		return nil, err
	}
	c.fallback = res
	return res, nil
}
