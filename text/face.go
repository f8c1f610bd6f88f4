package text

// Face represents a font face at a specific size.
// It is the metrics provider for layout: a pure function from rune to
// advance and vertical metrics, plus per-glyph rasterization.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	// Descent is reported positive.
	Metrics() Metrics

	// GlyphMetrics returns the measurements for the glyph of r.
	//
	// If the font has no glyph for r, it returns the notdef glyph's
	// measurements together with a *MissingGlyphError: callers log the
	// error, keep the returned metrics, and continue. Layout never
	// aborts on a missing glyph.
	GlyphMetrics(r rune) (GlyphMetrics, error)

	// Advance returns the total advance width of the text in pixels.
	// This is the sum of all glyph advances; missing runes contribute
	// the notdef advance.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Glyph rasterizes the glyph for r into an alpha mask.
	// Unmapped runes render the notdef glyph. Glyph is uncached; use a
	// GlyphCache in front of it to rasterize each rune at most once.
	Glyph(r rune) (*GlyphImage, error)

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Language returns the BCP 47 language tag configured for this face.
	Language() string

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	fontMetrics := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:    fontMetrics.Ascent,
		Descent:   descent,
		LineGap:   fontMetrics.LineGap,
		XHeight:   fontMetrics.XHeight,
		CapHeight: fontMetrics.CapHeight,
	}
}

// GlyphMetrics implements Face.GlyphMetrics.
func (f *sourceFace) GlyphMetrics(r rune) (GlyphMetrics, error) {
	parsed := f.source.Parsed()
	m := f.Metrics()

	gid := parsed.GlyphIndex(r)
	gm := GlyphMetrics{
		Advance: parsed.GlyphAdvance(gid, f.size),
		Ascent:  m.Ascent,
		Descent: m.Descent,
		LineGap: m.LineGap,
	}

	if gid == 0 {
		return gm, &MissingGlyphError{Rune: r, Font: f.source.Name()}
	}
	return gm, nil
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	totalAdvance := 0.0

	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		totalAdvance += parsed.GlyphAdvance(gid, f.size)
	}

	return totalAdvance
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	return parsed.GlyphIndex(r) != 0
}

// Glyph implements Face.Glyph.
func (f *sourceFace) Glyph(r rune) (*GlyphImage, error) {
	return f.source.Parsed().Rasterize(r, f.size)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// private implements the Face interface.
func (f *sourceFace) private() {}
