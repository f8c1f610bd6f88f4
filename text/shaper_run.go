package text

// RunShaper is the default shaper. It walks the run left to right,
// accumulating per-rune advances from the face. There is no kerning
// beyond the font's own advances, no ligature substitution, and no
// bidirectional reordering: output order is input order.
//
// For kerning and ligatures within a run, use SetShaper with a
// GoTextShaper.
//
// RunShaper is stateless and safe for concurrent use.
type RunShaper struct{}

// Shape implements the Shaper interface.
//
// Break opportunities are marked on the glyph after a whitespace rune
// and on the glyph after a hyphen, so the hyphen stays on the first
// line when a break is taken there.
//
// Runes the font cannot map take the notdef glyph's metrics, are
// marked Missing, and are logged at Warn. Shaping never fails.
func (s *RunShaper) Shape(run Run) []ShapedGlyph {
	if run.Text == "" || run.Face == nil {
		return nil
	}

	face := run.Face
	result := make([]ShapedGlyph, 0, len(run.Text))

	var x float64
	prev := rune(-1)

	for _, r := range run.Text {
		gm, err := face.GlyphMetrics(r)
		missing := false
		if err != nil {
			// Notdef metrics came back with the error; keep going.
			missing = true
			Logger().Warn("missing glyph, substituting notdef",
				"rune", string(r),
				"font", face.Source().Name())
		}

		result = append(result, ShapedGlyph{
			Rune:        r,
			Face:        face,
			Color:       run.Color,
			Offset:      x,
			Advance:     gm.Advance,
			Ascent:      gm.Ascent,
			Descent:     gm.Descent,
			LineGap:     gm.LineGap,
			BreakBefore: BreakAfter(prev),
			Missing:     missing,
		})

		x += gm.Advance
		prev = r
	}

	return result
}

// BreakAfter reports whether a line may break after the given rune.
// Shapers use it to mark BreakBefore on the rune that follows; callers
// that concatenate shaped runs use it to restore the opportunity at run
// boundaries, since a run's first glyph is never marked on its own.
func BreakAfter(r rune) bool {
	if isSpaceRune(r) {
		return true
	}
	// Hyphens keep their place at the end of the first line.
	return r == '-' || r == '‐'
}
