package text

import (
	"image/color"
	"testing"
)

// TestGoTextShaperShape tests the HarfBuzz path against a real font.
func TestGoTextShaperShape(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(16)
	shaper := NewGoTextShaper()

	glyphs := shaper.Shape(NewRun("Hello world", face, color.NRGBA{A: 255}))

	if len(glyphs) == 0 {
		t.Fatal("Shape returned no glyphs")
	}

	prevOffset := -1.0
	for i, g := range glyphs {
		if g.Offset < prevOffset {
			t.Errorf("glyph %d: Offset %v went backwards from %v", i, g.Offset, prevOffset)
		}
		prevOffset = g.Offset

		if g.Face != face {
			t.Errorf("glyph %d: face not carried through", i)
		}
		if g.Missing {
			t.Errorf("glyph %d (%q): marked missing in a font that maps it", i, g.Rune)
		}
		if g.Ascent <= 0 || g.Descent <= 0 {
			t.Errorf("glyph %d: metrics (%v, %v), want positive", i, g.Ascent, g.Descent)
		}
	}

	// 'w' follows the space and must be a break opportunity.
	found := false
	for _, g := range glyphs {
		if g.Rune == 'w' && g.BreakBefore {
			found = true
		}
	}
	if !found {
		t.Error("no break opportunity after the space")
	}
}

// TestGoTextShaperAdvances tests that shaped advances stay close to the
// face's own advance sum. Kerning may tighten pairs slightly, never to
// half or double.
func TestGoTextShaperAdvances(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(16)
	shaper := NewGoTextShaper()

	const s = "AVATAR"
	glyphs := shaper.Shape(NewRun(s, face, color.NRGBA{}))
	if len(glyphs) == 0 {
		t.Fatal("Shape returned no glyphs")
	}

	var total float64
	for _, g := range glyphs {
		total += g.Advance
	}

	plain := face.Advance(s)
	if total < plain*0.8 || total > plain*1.2 {
		t.Errorf("shaped width %v too far from plain width %v", total, plain)
	}
}

// TestGoTextShaperFallback tests that a source whose data is not a real
// TTF falls back to the RunShaper instead of failing.
func TestGoTextShaperFallback(t *testing.T) {
	source := newFakeSource(t, "")
	face := source.Face(10)
	shaper := NewGoTextShaper()

	glyphs := shaper.Shape(NewRun("abc", face, color.NRGBA{}))

	if len(glyphs) != 3 {
		t.Fatalf("fallback produced %d glyphs, want 3", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Advance != 5 {
			t.Errorf("glyph %d: Advance = %v, want the fake font's 5", i, g.Advance)
		}
	}
}

// TestGoTextShaperFontCache tests that parsed fonts are cached per source.
func TestGoTextShaperFontCache(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(16)
	shaper := NewGoTextShaper()

	shaper.Shape(NewRun("one", face, color.NRGBA{}))
	shaper.Shape(NewRun("two", face, color.NRGBA{}))

	shaper.mu.RLock()
	n := len(shaper.fontCache)
	shaper.mu.RUnlock()
	if n != 1 {
		t.Errorf("font cache holds %d entries after two shapes of one source, want 1", n)
	}

	shaper.RemoveSource(source)
	shaper.mu.RLock()
	n = len(shaper.fontCache)
	shaper.mu.RUnlock()
	if n != 0 {
		t.Errorf("font cache holds %d entries after RemoveSource, want 0", n)
	}

	shaper.Shape(NewRun("three", face, color.NRGBA{}))
	shaper.ClearCache()
	shaper.mu.RLock()
	n = len(shaper.fontCache)
	shaper.mu.RUnlock()
	if n != 0 {
		t.Errorf("font cache holds %d entries after ClearCache, want 0", n)
	}
}

// TestGoTextShaperEmpty tests empty inputs.
func TestGoTextShaperEmpty(t *testing.T) {
	shaper := NewGoTextShaper()

	if got := shaper.Shape(Run{}); got != nil {
		t.Errorf("Shape of zero run = %v, want nil", got)
	}

	source := loadTestFont(t)
	if got := shaper.Shape(NewRun("", source.Face(16), color.NRGBA{})); got != nil {
		t.Errorf("Shape of empty text = %v, want nil", got)
	}
}
