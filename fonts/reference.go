package fonts

import (
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/inkwell/layout"
)

// Reference identifies a font by normalized family, weight and slant. It is
// the cache key: two style declarations that mean the same face produce the
// same Reference even when spelled differently (e.g. weight "bold" vs 700).
type Reference struct {
	Family string
	Weight int
	Italic bool
}

// NewReference derives a Reference from a computed font description.
// The family is lowercased, named weights in the style string are resolved
// to their numeric value, and a missing weight defaults to 400.
func NewReference(d layout.FontDesc) Reference {
	ref := Reference{
		Family: strings.ToLower(strings.TrimSpace(d.Family)),
		Weight: d.Weight,
	}
	s := strings.ToLower(d.Style)
	if ref.Weight == 0 {
		ref.Weight = weightFromName(s)
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		ref.Italic = true
	}
	return ref
}

// String renders the reference for error messages.
func (r Reference) String() string {
	slant := ""
	if r.Italic {
		slant = " italic"
	}
	return fmt.Sprintf("%s %d%s", r.Family, r.Weight, slant)
}

func weightFromName(s string) int {
	switch {
	case strings.Contains(s, "black"):
		return 900
	case strings.Contains(s, "extrabold"):
		return 800
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		return 600
	case strings.Contains(s, "bold"):
		return 700
	case strings.Contains(s, "medium"):
		return 500
	case strings.Contains(s, "light"):
		return 300
	default:
		return 400
	}
}

// canvasStyle maps the reference onto the drawing library's style flags.
func (r Reference) canvasStyle() canvas.FontStyle {
	var style canvas.FontStyle
	switch {
	case r.Weight >= 900:
		style = canvas.FontBlack
	case r.Weight >= 800:
		style = canvas.FontExtraBold
	case r.Weight >= 700:
		style = canvas.FontBold
	case r.Weight >= 600:
		style = canvas.FontSemiBold
	case r.Weight >= 500:
		style = canvas.FontMedium
	case r.Weight <= 300:
		style = canvas.FontLight
	default:
		style = canvas.FontRegular
	}
	if r.Italic {
		style |= canvas.FontItalic
	}
	return style
}
