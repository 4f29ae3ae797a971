// Package layout defines the styled, laid-out tree consumed by the
// renderer. The tree is produced by external parse/cascade/layout stages;
// this package only describes its shape.
package layout

// NodeKind classifies a styled node. The classification is closed: a node
// is either an element with a box or a text run. Anything else the upstream
// stages produce must be mapped onto one of these before rendering.
type NodeKind int

const (
	// KindElement is a box-generating element node.
	KindElement NodeKind = iota
	// KindText is a text run positioned by the layout stage.
	KindText
)

// String returns a short name for the kind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// StyledNode is one node of the input tree. It carries the computed style
// and the resolved box geometry for the node, plus its children in document
// order. Nodes are owned by their parent; the tree has no cycles and no
// shared subtrees. The renderer treats the tree as read-only.
type StyledNode struct {
	Kind     NodeKind      `json:"kind"`
	Text     string        `json:"text,omitempty"` // run content, KindText only
	Style    ComputedStyle `json:"style"`
	Box      Box           `json:"box"`
	Children []*StyledNode `json:"children,omitempty"`
}

// Box is the resolved position and size of a node in layout units
// (device-independent pixels, prior to any scale factor). X and Y are
// offsets relative to the parent's content origin; they may be negative
// for overflowing nodes. W and H are never negative.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// FontDesc describes the font requested by a node's computed style.
// Size is in layout units. Weight uses the CSS numeric scale (400 regular,
// 700 bold); Style is "" or "normal" for upright, "italic"/"oblique" for
// slanted faces.
type FontDesc struct {
	Family string  `json:"family"`
	Weight int     `json:"weight"`
	Style  string  `json:"style,omitempty"`
	Size   float64 `json:"size"`
}

// Border describes a visible box border. Width is in layout units.
type Border struct {
	Width float64 `json:"width"`
	Color Color   `json:"color"`
}

// ComputedStyle is the subset of resolved style the renderer consumes.
//
// Background is nil when the node paints no background of its own.
// DarkBackground, when present, is the dark-scheme variant already resolved
// upstream; the renderer substitutes it only when a dark scheme is
// requested. Foreground is the text color. All other scheme effects are the
// upstream stages' responsibility: element colors always come from the
// node's own computed style.
type ComputedStyle struct {
	Background     *Color   `json:"background,omitempty"`
	DarkBackground *Color   `json:"darkBackground,omitempty"`
	Foreground     Color    `json:"foreground"`
	Font           FontDesc `json:"font"`
	Border         *Border  `json:"border,omitempty"`
}

// ColorScheme selects the light or dark rendering scheme. The scheme only
// affects the document-level default background and the selection of
// DarkBackground variants; it never re-derives element colors.
type ColorScheme int

const (
	SchemeLight ColorScheme = iota
	SchemeDark
)

// String returns "light" or "dark".
func (s ColorScheme) String() string {
	if s == SchemeDark {
		return "dark"
	}
	return "light"
}

// DocumentMeta holds document information written into vector output.
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
