package reflow

import (
	"image"
	"math"
)

// DisplayCommand is one paint operation. BuildDisplayList emits commands
// in back-to-front order, so painting them in sequence resolves overlap:
// a box's own background and borders come before its text and children.
type DisplayCommand interface {
	displayCommand()
}

// SolidRect fills a rectangle with one color using source-over blending.
type SolidRect struct {
	Color RGBA
	Rect  Rect
}

func (SolidRect) displayCommand() {}

// LineSurface blits one composited text line at its canvas position.
// Only the rect's origin is used for placement; the image carries its
// own extent.
type LineSurface struct {
	Image *image.RGBA
	Rect  Rect
}

func (LineSurface) displayCommand() {}

// BuildDisplayList flattens a laid-out box tree into paint commands.
// Fully transparent fills and zero-width border edges are dropped, so an
// unstyled tree produces commands only for its text.
func BuildDisplayList(root *LayoutBox) []DisplayCommand {
	var list []DisplayCommand
	if root != nil {
		appendCommands(&list, root)
	}
	return list
}

func appendCommands(list *[]DisplayCommand, box *LayoutBox) {
	appendBackground(list, box)
	appendBorders(list, box)
	for _, lb := range box.Lines {
		if lb.Surface != nil {
			*list = append(*list, LineSurface{Image: lb.Surface, Rect: lb.Rect})
		}
	}
	for _, child := range box.Children {
		appendCommands(list, child)
	}
}

// appendBackground fills the padding box. The border area is not
// included: borders paint themselves, and a transparent border edge
// leaves a gap rather than showing background through.
func appendBackground(list *[]DisplayCommand, box *LayoutBox) {
	c := box.Style.Background
	if c.IsTransparent() {
		return
	}
	*list = append(*list, SolidRect{Color: c, Rect: box.Dims.PaddingBox()})
}

// appendBorders emits one rect per border edge with a positive width.
// An edge uses its per-edge color when set, otherwise BorderColor.
func appendBorders(list *[]DisplayCommand, box *LayoutBox) {
	d := box.Dims
	if d.Border == (Edges{}) {
		return
	}
	bb := d.BorderBox()
	s := box.Style

	edge := func(width float64, override RGBA, r Rect) {
		if width <= 0 {
			return
		}
		c := override
		if c == (RGBA{}) {
			c = s.BorderColor
		}
		if c.IsTransparent() {
			return
		}
		*list = append(*list, SolidRect{Color: c, Rect: r})
	}

	edge(d.Border.Top, s.BorderTopColor,
		Rect{X: bb.X, Y: bb.Y, W: bb.W, H: d.Border.Top})
	edge(d.Border.Right, s.BorderRightColor,
		Rect{X: bb.X + bb.W - d.Border.Right, Y: bb.Y, W: d.Border.Right, H: bb.H})
	edge(d.Border.Bottom, s.BorderBottomColor,
		Rect{X: bb.X, Y: bb.Y + bb.H - d.Border.Bottom, W: bb.W, H: d.Border.Bottom})
	edge(d.Border.Left, s.BorderLeftColor,
		Rect{X: bb.X, Y: bb.Y, W: d.Border.Left, H: bb.H})
}

// Paint draws a display list onto the canvas in order.
func Paint(canvas *Pixmap, list []DisplayCommand) {
	for _, cmd := range list {
		switch c := cmd.(type) {
		case SolidRect:
			canvas.FillRect(c.Rect, c.Color)
		case LineSurface:
			if c.Image != nil {
				canvas.DrawImage(c.Image, int(math.Round(c.Rect.X)), int(math.Round(c.Rect.Y)))
			}
		}
	}
}

// Render paints a laid-out box tree onto a fresh white canvas sized to
// cover the tree's margin box from the canvas origin.
func Render(root *LayoutBox) *Pixmap {
	w, h := 1, 1
	if root != nil {
		mb := root.Dims.MarginBox()
		if px := int(math.Ceil(mb.X + mb.W)); px > w {
			w = px
		}
		if px := int(math.Ceil(mb.Y + mb.H)); px > h {
			h = px
		}
	}
	canvas := NewPixmap(w, h)
	canvas.Clear(White)
	Paint(canvas, BuildDisplayList(root))
	return canvas
}
