package reflow

import (
	"image"

	"github.com/gogpu/reflow/text"
)

// LineBox is one laid-out line of text: the shaped glyph content, its
// placement in canvas coordinates, and the composited pixels.
type LineBox struct {
	// Line holds the shaped glyphs and aggregated line metrics.
	Line text.Line

	// Rect is the line's place in the canvas. Width is the full advance
	// width including trailing whitespace; height is ascent plus descent
	// plus line gap.
	Rect Rect

	// Surface is the composited text image for this line, transparent
	// where there is no ink.
	Surface *image.RGBA
}

// flatRun pairs a shaping run with the box whose text produced it, so
// glyph geometry can be mapped back to inline boxes after line breaking.
type flatRun struct {
	run text.Run
	box *LayoutBox
}

// layoutInline lays out the inline content of container: flatten the
// subtree to runs, shape each run, break the combined glyphs into lines
// at the content width, composite each line, and derive the container's
// content height from the stacked line heights.
func (e *Engine) layoutInline(container *LayoutBox) error {
	runs, err := e.flattenRuns(container)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	shaper := e.shaper
	if shaper == nil {
		shaper = text.GetShaper()
	}

	var glyphs []text.ShapedGlyph
	var penX float64
	prev := rune(-1)
	for i, fr := range runs {
		shaped := shaper.Shape(fr.run)
		if len(shaped) == 0 {
			continue
		}
		for gi := range shaped {
			shaped[gi].Run = i
			shaped[gi].Offset += penX
		}
		// Shapers only see one run at a time, so the opportunity at the
		// run boundary has to be restored here.
		if text.BreakAfter(prev) {
			shaped[0].BreakBefore = true
		}
		last := shaped[len(shaped)-1]
		penX = last.Offset + last.Advance
		prev = last.Rune
		glyphs = append(glyphs, shaped...)
	}
	if len(glyphs) == 0 {
		return nil
	}

	lines := text.BreakLines(glyphs, container.Dims.Content.W)

	y := container.Dims.Content.Y
	for i := range lines {
		line := &lines[i]
		surface, err := e.compositor.Composite(line)
		if err != nil {
			return err
		}
		rect := Rect{
			X: container.Dims.Content.X,
			Y: y,
			W: line.FullWidth,
			H: line.Height(),
		}
		container.Lines = append(container.Lines, LineBox{Line: *line, Rect: rect, Surface: surface})
		y += line.Height()
	}
	container.Dims.Content.H = y - container.Dims.Content.Y

	e.placeInlineBoxes(container, runs)
	return nil
}

// flattenRuns walks the inline subtree in document order and builds one
// shaping run per text box. A run carries the box's inherited face and
// color; runs from adjacent boxes flow into one paragraph with no
// implicit break between them.
func (e *Engine) flattenRuns(container *LayoutBox) ([]flatRun, error) {
	var runs []flatRun
	var walk func(b *LayoutBox) error
	walk = func(b *LayoutBox) error {
		if b.Node != nil && b.Node.Kind == NodeText && b.Node.Text != "" {
			s := b.Style
			if s.FontSize <= 0 {
				return &InvalidConstraintError{Constraint: "font size", Value: s.FontSize}
			}
			if e.fonts == nil {
				return ErrNoFonts
			}
			face, err := e.fonts.Face(s.FontFamily, s.FontSize)
			if err != nil {
				return err
			}
			runs = append(runs, flatRun{
				run: text.NewRun(b.Node.Text, face, s.Color.NRGBA()),
				box: b,
			})
		}
		for _, c := range b.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(container); err != nil {
		return nil, err
	}
	return runs, nil
}

// placeInlineBoxes derives geometry for the inline boxes whose text ended
// up in the container's lines. A text box's content rect is the union of
// the glyph spans it contributed, across every line it appears on, with
// the full line height on each. Inline element boxes take the union of
// their children. Inline margin, border, and padding do not participate
// in layout and stay zero.
func (e *Engine) placeInlineBoxes(container *LayoutBox, runs []flatRun) {
	placed := make(map[*LayoutBox]Rect, len(runs))

	for _, lb := range container.Lines {
		for _, g := range lb.Line.Glyphs {
			if g.Run < 0 || g.Run >= len(runs) {
				continue
			}
			box := runs[g.Run].box
			span := Rect{
				X: lb.Rect.X + g.Offset,
				Y: lb.Rect.Y,
				W: g.Advance,
				H: lb.Rect.H,
			}
			if r, ok := placed[box]; ok {
				span = unionRect(r, span)
			}
			placed[box] = span
		}
	}

	var fold func(b *LayoutBox) (Rect, bool)
	fold = func(b *LayoutBox) (Rect, bool) {
		r, ok := placed[b]
		for _, c := range b.Children {
			if cr, cok := fold(c); cok {
				if ok {
					r = unionRect(r, cr)
				} else {
					r, ok = cr, true
				}
			}
		}
		if ok && b != container {
			b.Dims.Content = r
		}
		return r, ok
	}
	fold(container)
}

// unionRect returns the smallest rectangle covering both a and b.
func unionRect(a, b Rect) Rect {
	minX := a.X
	if b.X < minX {
		minX = b.X
	}
	minY := a.Y
	if b.Y < minY {
		minY = b.Y
	}
	maxX := a.X + a.W
	if bx := b.X + b.W; bx > maxX {
		maxX = bx
	}
	maxY := a.Y + a.H
	if by := b.Y + b.H; by > maxY {
		maxY = by
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
