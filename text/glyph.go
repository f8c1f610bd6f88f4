package text

import (
	"image"
	"image/color"
)

// GlyphImage is a rasterized glyph: an alpha mask plus the positioning
// information needed to blit it relative to a pen position on a baseline.
type GlyphImage struct {
	// Mask is the glyph's coverage as an alpha image, or nil for blank
	// glyphs such as whitespace. Mask.Bounds() equals Bounds.
	Mask *image.Alpha

	// Bounds is the ink box relative to the glyph origin: the origin sits
	// on the baseline at the pen position, so Min.Y is negative above the
	// baseline and Min.X is the left side bearing.
	Bounds image.Rectangle

	// Advance is the horizontal advance width in pixels.
	Advance float64
}

// ShapedGlyph is one positioned glyph produced by a Shaper.
// It carries measurements only; pixel data lives in the glyph cache.
type ShapedGlyph struct {
	// Rune is the character this glyph represents. For cluster-merging
	// shapers it is the first rune of the cluster.
	Rune rune

	// Face is the font face the glyph was shaped with.
	Face Face

	// Color is the fill color the glyph composites with.
	Color color.NRGBA

	// Run is the index of the source run within the shaped sequence.
	// It is assigned by the caller that concatenates runs, not by the
	// shaper, and lets layout map glyphs back to their inline boxes.
	Run int

	// Offset is the pen X position of the glyph within its sequence.
	// Line breaking re-bases it to the start of each line.
	Offset float64

	// Advance is the horizontal advance width in pixels.
	Advance float64

	// Ascent, Descent, and LineGap are the face-level vertical metrics
	// in pixels. Descent is positive below the baseline. Lines derive
	// their height and baseline from the maxima of these values.
	Ascent, Descent, LineGap float64

	// BreakBefore marks a legal line break position immediately before
	// this glyph: the previous rune was whitespace or a hyphen.
	BreakBefore bool

	// Missing marks a rune the font has no glyph for. The glyph carries
	// the notdef glyph's metrics and composites the notdef mask.
	Missing bool
}

// IsWhitespace reports whether the glyph renders no ink and is
// excluded from a line's measured width when trailing.
func (g *ShapedGlyph) IsWhitespace() bool {
	return isSpaceRune(g.Rune)
}

// isSpaceRune reports whether r is breakable whitespace.
// U+00A0 NO-BREAK SPACE is deliberately not included.
func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
