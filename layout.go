package reflow

import (
	"math"

	"github.com/gogpu/reflow/text"
)

// DefaultViewportWidth is a reasonable viewport for callers that have no
// natural width, such as tests and one-off renders.
const DefaultViewportWidth = 1280.0

// Engine drives layout: it owns the font catalog and the text pipeline
// (shaper, glyph cache, compositor) used for inline content.
//
// An Engine is safe for concurrent use as long as the box trees passed to
// Layout and LayoutTree are not shared between goroutines; all engine
// state is read-only after construction and the text pipeline is
// internally synchronized.
type Engine struct {
	fonts      *text.Catalog
	shaper     text.Shaper
	compositor *text.Compositor
	resolver   StyleResolver
}

// NewEngine creates a layout engine using the given font catalog.
//
// By default the engine shapes with the process-wide shaper, rasterizes
// through the global glyph cache, and resolves styles with NodeStyles.
// Options override each of these.
func NewEngine(fonts *text.Catalog, opts ...EngineOption) *Engine {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Engine{
		fonts:    fonts,
		shaper:   cfg.shaper,
		resolver: cfg.resolver,
	}
	if e.resolver == nil {
		e.resolver = NodeStyles
	}
	e.compositor = cfg.compositor
	if e.compositor == nil {
		e.compositor = text.NewCompositor(cfg.cache)
	}
	return e
}

// Fonts returns the engine's font catalog.
func (e *Engine) Fonts() *text.Catalog { return e.fonts }

// Layout builds the box tree for root and lays it out against the given
// viewport width. The returned tree carries final geometry and, for
// boxes with inline content, composited text lines.
func (e *Engine) Layout(root *ContentNode, viewportWidth float64) (*LayoutBox, error) {
	box, err := BuildBoxTree(root, e.resolver)
	if err != nil {
		return nil, err
	}
	if err := e.LayoutTree(box, viewportWidth); err != nil {
		return nil, err
	}
	return box, nil
}

// LayoutTree lays out an existing box tree in place against the given
// viewport width.
//
// LayoutTree is idempotent: all computed geometry and lines are reset
// before the pass, so laying out the same tree twice, or relaying it out
// at a new width, gives the same result as a fresh layout.
func (e *Engine) LayoutTree(box *LayoutBox, viewportWidth float64) error {
	if box == nil {
		return ErrNilRoot
	}
	if viewportWidth <= 0 || math.IsNaN(viewportWidth) || math.IsInf(viewportWidth, 0) {
		return &InvalidConstraintError{Constraint: "viewport width", Value: viewportWidth}
	}

	viewport := Dimensions{Content: Rect{W: viewportWidth}}
	if err := e.layoutBox(box, viewport); err != nil {
		return err
	}

	Logger().Debug("layout pass complete",
		"viewport", viewportWidth,
		"boxes", countBoxes(box),
		"height", box.Dims.MarginBox().H)
	return nil
}

// layoutBox lays out one box against its containing block's dimensions.
// The containing block's Content.H is the running height consumed by
// earlier siblings, which is where this box's top edge goes.
func (e *Engine) layoutBox(box *LayoutBox, containing Dimensions) error {
	box.Dims = Dimensions{}
	box.Lines = nil

	e.calculateWidth(box, containing)
	e.calculatePosition(box, containing)

	var err error
	if box.Kind == BoxBlock && len(box.Children) > 0 {
		// Box tree construction guarantees a block box has only
		// block-level children, so this is pure block flow.
		err = e.layoutBlockChildren(box)
	} else {
		// Anonymous boxes, inline roots, and empty blocks: lay out
		// whatever inline content the subtree holds.
		err = e.layoutInline(box)
	}
	if err != nil {
		return err
	}

	if box.Style.Height > 0 {
		box.Dims.Content.H = box.Style.Height
	}
	return nil
}

// calculateWidth fills in the box edges and the content width. Blocks
// fill the containing width unless the style sets an explicit width.
func (e *Engine) calculateWidth(box *LayoutBox, containing Dimensions) {
	s := box.Style
	d := &box.Dims
	d.Padding = s.Padding
	d.Border = s.BorderWidth
	d.Margin = s.Margin

	width := s.Width
	if width <= 0 {
		width = containing.Content.W - d.Margin.Horizontal() - d.Border.Horizontal() - d.Padding.Horizontal()
		if width < 0 {
			width = 0
		}
	}
	d.Content.W = width
}

// calculatePosition places the box below the content already laid out in
// its containing block.
func (e *Engine) calculatePosition(box *LayoutBox, containing Dimensions) {
	d := &box.Dims
	d.Content.X = containing.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containing.Content.Y + containing.Content.H + d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutBlockChildren stacks the children vertically and accumulates
// their margin box heights into the parent's content height. Margins do
// not collapse: adjacent margin boxes touch edge to edge.
func (e *Engine) layoutBlockChildren(box *LayoutBox) error {
	d := &box.Dims
	for _, child := range box.Children {
		if err := e.layoutBox(child, *d); err != nil {
			return err
		}
		d.Content.H += child.Dims.MarginBox().H
	}
	return nil
}
