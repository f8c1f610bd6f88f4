package text

import (
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Run is a maximal span of text sharing one face and one color.
// Runs are the unit of shaping: layout flattens inline content into
// runs, shapes each run, and concatenates the shaped glyphs before
// line breaking.
//
// A Run is immutable once built.
type Run struct {
	// Text is the run content, NFC-normalized with whitespace folded.
	Text string

	// Face is the font face the run is measured and rasterized with.
	Face Face

	// Color is the text fill color.
	Color color.NRGBA
}

// NewRun builds a Run from raw text.
//
// The text is normalized to NFC first: metrics are per-codepoint, so
// combining sequences must be precomposed to measure correctly.
// Whitespace runes other than U+00A0 NO-BREAK SPACE are then folded to
// plain spaces, since control whitespace such as '\n' has no glyph and
// hard breaks are not part of the inline model.
func NewRun(s string, face Face, c color.NRGBA) Run {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r != '\u00A0' && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	return Run{Text: s, Face: face, Color: c}
}
