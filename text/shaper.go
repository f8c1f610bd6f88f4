package text

import "sync"

// Shaper converts a text run into positioned glyphs.
// Implementations provide different levels of shaping support:
//   - RunShaper: per-rune advances, no kerning or ligatures (default)
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting (opt-in)
//
// All implementations must honor the same output contract: glyphs in
// input order, monotonically accumulating Offset, face metrics copied
// onto every glyph, BreakBefore set after whitespace and hyphens, and
// Missing set for runes the font cannot map.
type Shaper interface {
	// Shape converts the run's text into positioned glyphs.
	// The font size and metrics come from run.Face.
	Shape(run Run) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &RunShaper{}
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default RunShaper.
//
// Example usage with the HarfBuzz-backed shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &RunShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(run Run) []ShapedGlyph {
	return GetShaper().Shape(run)
}
