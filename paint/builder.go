package paint

import (
	"errors"
	"fmt"

	"github.com/ByLCY/inkwell/fonts"
	"github.com/ByLCY/inkwell/layout"
)

// ErrInconsistentTree marks a tree that violates the layout stage's
// contract, e.g. a zero-size node holding visibly sized children. Such
// trees indicate a bug in an upstream collaborator and are reported rather
// than silently patched.
var ErrInconsistentTree = errors.New("inconsistent layout tree")

// Builder walks a styled tree and accumulates paint commands.
type Builder struct {
	fonts  *fonts.Cache
	scheme layout.ColorScheme

	cmds   []Command
	extent Extent
}

// NewBuilder creates a builder that resolves fonts through cache and
// selects scheme variants for the given color scheme.
func NewBuilder(cache *fonts.Cache, scheme layout.ColorScheme) *Builder {
	return &Builder{fonts: cache, scheme: scheme}
}

// Build produces the ordered command sequence and the content extent for
// root. The traversal is a single synchronous depth-first pass; commands
// come out in document pre-order with absolute, pre-scale coordinates.
func (b *Builder) Build(root *layout.StyledNode) ([]Command, Extent, error) {
	b.cmds = nil
	b.extent = Extent{}
	if root == nil {
		return nil, Extent{}, nil
	}
	if err := b.walk(root, 0, 0); err != nil {
		return nil, Extent{}, err
	}
	return b.cmds, b.extent, nil
}

// walk visits node with the accumulated absolute offset (dx, dy) of its
// parent's content origin.
func (b *Builder) walk(node *layout.StyledNode, dx, dy float64) error {
	x := dx + node.Box.X
	y := dy + node.Box.Y
	w := node.Box.W
	h := node.Box.H

	if w == 0 && h == 0 && hasSizedChild(node) {
		return fmt.Errorf("%w: zero-size node with sized children at (%g, %g)", ErrInconsistentTree, x, y)
	}

	// A degenerate box paints nothing itself, but its children keep their
	// own layout and are still traversed.
	if w > 0 && h > 0 {
		if bg := b.background(node); bg != nil && bg.Opaque() {
			b.emit(FillRect{X: x, Y: y, W: w, H: h, Color: bg.Clamp()})
		}
		if bd := node.Style.Border; bd != nil && bd.Width > 0 && bd.Color.Opaque() {
			b.emit(DrawBorder{X: x, Y: y, W: w, H: h, Width: bd.Width, Color: bd.Color.Clamp()})
		}
	}

	if node.Kind == layout.KindText && node.Text != "" {
		if err := b.text(node, x, y); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := b.walk(child, x, y); err != nil {
			return err
		}
	}
	return nil
}

// text shapes the node's run and emits a DrawText with its baseline placed
// at the run top plus the font ascent.
func (b *Builder) text(node *layout.StyledNode, x, y float64) error {
	desc := node.Style.Font
	ref := fonts.NewReference(desc)

	// Resolution failure degrades to the fallback face; only a broken
	// fallback aborts the build.
	res, err := b.fonts.Resolve(ref)
	if err != nil {
		return err
	}

	glyphs := res.Shape(node.Text, desc.Size)
	lineH := res.LineHeight(desc.Size)

	cmd := DrawText{
		X:        x,
		Y:        y,
		Baseline: y + res.Ascent(desc.Size),
		Run:      node.Text,
		Font:     ref,
		Size:     desc.Size,
		Color:    node.Style.Foreground.Clamp(),
		Glyphs:   glyphs,
		W:        fonts.Advance(glyphs),
		H:        lineH,
	}
	b.emit(cmd)
	return nil
}

// background resolves the node's background under the active scheme. Only
// a node's own dark variant is substituted; the scheme never re-derives
// element colors.
func (b *Builder) background(node *layout.StyledNode) *layout.Color {
	if b.scheme == layout.SchemeDark && node.Style.DarkBackground != nil {
		return node.Style.DarkBackground
	}
	return node.Style.Background
}

// emit appends a command and grows the content extent.
func (b *Builder) emit(cmd Command) {
	b.cmds = append(b.cmds, cmd)
	switch c := cmd.(type) {
	case FillRect:
		b.extent.grow(c.X, c.Y, c.W, c.H)
	case DrawBorder:
		b.extent.grow(c.X, c.Y, c.W, c.H)
	case DrawText:
		b.extent.grow(c.X, c.Y, c.W, c.H)
	}
}

func hasSizedChild(node *layout.StyledNode) bool {
	for _, child := range node.Children {
		if child.Box.W > 0 || child.Box.H > 0 {
			return true
		}
	}
	return false
}
