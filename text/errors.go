package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoSuchFamily is returned when a Catalog lookup finds neither the
	// requested family nor a default family to fall back on.
	ErrNoSuchFamily = errors.New("text: no such font family")
)

// MissingGlyphError reports that a font has no glyph for a rune.
// It is recoverable: callers substitute the font's notdef glyph and
// continue. Layout never fails because of a missing glyph.
type MissingGlyphError struct {
	Rune rune
	Font string
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: font %q has no glyph for %q", e.Font, e.Rune)
}
