package text

// Line is one line box produced by BreakLines: an ordered glyph
// sequence with offsets re-based to the line start, plus the measured
// widths and vertical metrics layout needs to place it.
type Line struct {
	// Glyphs are the line's glyphs in visual order. Trailing whitespace
	// glyphs are retained here even though Width excludes them.
	Glyphs []ShapedGlyph

	// Width is the measured width in pixels, excluding trailing
	// whitespace. It never exceeds the available width passed to
	// BreakLines except when a single glyph alone is wider.
	Width float64

	// FullWidth is the advance width including trailing whitespace.
	// Compositor surfaces are sized by FullWidth so trailing spaces
	// remain addressable (selection highlighting and similar).
	FullWidth float64

	// Ascent is the maximum ascent across the line's glyphs.
	// The line's baseline sits at this distance from the line top.
	Ascent float64

	// Descent is the maximum descent across the line's glyphs (positive).
	Descent float64

	// LineGap is the maximum recommended line gap across the glyphs.
	LineGap float64
}

// Height returns the line height: max ascent + max descent + line gap.
func (l *Line) Height() float64 {
	return l.Ascent + l.Descent + l.LineGap
}

// Baseline returns the baseline offset from the line top.
func (l *Line) Baseline() float64 {
	return l.Ascent
}

// BreakLines splits a shaped glyph sequence into lines no wider than
// availableWidth, measured excluding trailing whitespace.
//
// Breaking is greedy: glyphs accumulate until one would overflow, then
// the line ends at the last break opportunity. A line with no break
// opportunity splits immediately before the overflowing glyph, so long
// unbroken words wrap mid-word rather than overflowing. Every line
// carries at least one glyph, which guarantees termination for any
// positive or non-positive width.
//
// Whitespace glyphs never trigger overflow; they accumulate as
// trailing whitespace on the current line.
func BreakLines(glyphs []ShapedGlyph, availableWidth float64) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	var lines []Line
	start := 0
	lastBreak := -1
	startX := glyphs[0].Offset

	i := 0
	for i < len(glyphs) {
		g := &glyphs[i]

		if g.BreakBefore && i > start {
			lastBreak = i
		}

		if !g.IsWhitespace() {
			end := g.Offset + g.Advance - startX
			if end > availableWidth && i > start {
				breakAt := i
				if lastBreak > start {
					breakAt = lastBreak
				}

				lines = append(lines, makeLine(glyphs[start:breakAt], startX))

				// Re-examine the current glyph against the new line.
				start = breakAt
				lastBreak = -1
				startX = glyphs[start].Offset
				continue
			}
		}

		i++
	}

	lines = append(lines, makeLine(glyphs[start:], startX))
	return lines
}

// makeLine copies a glyph segment into a Line, re-basing offsets to the
// segment start and aggregating widths and vertical metrics.
func makeLine(glyphs []ShapedGlyph, startX float64) Line {
	line := Line{
		Glyphs: make([]ShapedGlyph, len(glyphs)),
	}
	copy(line.Glyphs, glyphs)

	for i := range line.Glyphs {
		g := &line.Glyphs[i]
		g.Offset -= startX

		if g.Ascent > line.Ascent {
			line.Ascent = g.Ascent
		}
		if g.Descent > line.Descent {
			line.Descent = g.Descent
		}
		if g.LineGap > line.LineGap {
			line.LineGap = g.LineGap
		}

		end := g.Offset + g.Advance
		if end > line.FullWidth {
			line.FullWidth = end
		}
		if !g.IsWhitespace() && end > line.Width {
			line.Width = end
		}
	}

	return line
}
