package text

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"
	"testing"
)

// The fake font backend gives tests exact, size-proportional metrics:
// every glyph advances half the font size, ascent is 0.8 of the size,
// descent 0.2, no line gap. Glyphs rasterize as solid rectangles so
// composited pixels are predictable; notdef is a hollow frame.
const (
	fakeAdvance = 0.5
	fakeAscent  = 0.8
	fakeDescent = 0.2
)

// fakeFontData encodes the set of unmapped runes as font data.
func fakeFontData(missing string) []byte {
	return []byte("fake:" + missing)
}

var registerFakeOnce sync.Once

// newFakeSource builds a FontSource backed by the fake parser. Runes in
// missing have no glyph and fall back to notdef.
func newFakeSource(t *testing.T, missing string) *FontSource {
	t.Helper()
	registerFakeOnce.Do(func() {
		RegisterParser("faketest", fakeParser{})
	})
	src, err := NewFontSource(fakeFontData(missing), WithParser("faketest"))
	if err != nil {
		t.Fatalf("fake font source: %v", err)
	}
	return src
}

type fakeParser struct{}

func (fakeParser) Parse(data []byte) (ParsedFont, error) {
	s := string(data)
	if !strings.HasPrefix(s, "fake:") {
		return nil, errors.New("faketest: not fake font data")
	}
	return &fakeParsedFont{missing: strings.TrimPrefix(s, "fake:")}, nil
}

type fakeParsedFont struct {
	missing string
}

func (f *fakeParsedFont) Name() string     { return "Faketest" }
func (f *fakeParsedFont) FullName() string { return "Faketest Regular" }
func (f *fakeParsedFont) NumGlyphs() int   { return math.MaxUint16 }
func (f *fakeParsedFont) UnitsPerEm() int  { return 1000 }

func (f *fakeParsedFont) GlyphIndex(r rune) uint16 {
	if strings.ContainsRune(f.missing, r) {
		return 0
	}
	return uint16(r&0x7FFF) + 1
}

func (f *fakeParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	return fakeAdvance * ppem
}

func (f *fakeParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	return Rect{
		MinX: 0,
		MinY: -fakeAscent * ppem,
		MaxX: fakeAdvance * ppem,
		MaxY: fakeDescent * ppem,
	}
}

func (f *fakeParsedFont) Metrics(ppem float64) FontMetrics {
	return FontMetrics{
		Ascent:    fakeAscent * ppem,
		Descent:   -fakeDescent * ppem,
		XHeight:   0.5 * fakeAscent * ppem,
		CapHeight: fakeAscent * ppem,
	}
}

func (f *fakeParsedFont) Rasterize(r rune, ppem float64) (*GlyphImage, error) {
	gid := f.GlyphIndex(r)
	adv := fakeAdvance * ppem

	if isSpaceRune(r) || r == '\u00A0' {
		return &GlyphImage{Advance: adv}, nil
	}

	w := int(math.Round(adv))
	h := int(math.Round((fakeAscent + fakeDescent) * ppem))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	top := -int(math.Round(fakeAscent * ppem))
	bounds := image.Rect(0, top, w, top+h)

	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if gid == 0 {
				onEdge := x == bounds.Min.X || x == bounds.Max.X-1 ||
					y == bounds.Min.Y || y == bounds.Max.Y-1
				if !onEdge {
					continue
				}
			}
			mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}

	return &GlyphImage{Mask: mask, Bounds: bounds, Advance: adv}, nil
}
