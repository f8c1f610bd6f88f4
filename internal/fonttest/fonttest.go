// Package fonttest provides a deterministic font backend for tests.
//
// Real fonts make layout assertions awkward: advances are irregular and
// differ between font files. The fonttest parser reads a JSON Config
// instead of TTF data and reports exact, configuration-driven metrics, so
// a test can state expected glyph positions and line breaks as plain
// numbers. Glyphs rasterize as solid rectangles (hollow for notdef),
// which makes composited pixels predictable too.
package fonttest

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/reflow/text"
)

// ParserName is the registry name of the test font parser.
const ParserName = "fonttest"

// Config describes a fake font. Vertical metrics and the default advance
// are fractions of the font size, so a face at size 10 with Advance 0.5
// advances every glyph by 5 pixels.
type Config struct {
	// Name is the reported family name.
	Name string `json:"name"`

	// Ascent, Descent, and LineGap are fractions of the font size.
	// Descent is positive.
	Ascent  float64 `json:"ascent"`
	Descent float64 `json:"descent"`
	LineGap float64 `json:"lineGap"`

	// Advance is the default advance width as a fraction of the size.
	Advance float64 `json:"advance"`

	// Advances overrides the advance fraction for individual runes.
	Advances map[string]float64 `json:"advances,omitempty"`

	// Missing lists runes the font has no glyph for.
	Missing string `json:"missing,omitempty"`
}

// DefaultConfig returns a font with 3/4 ascent, 1/4 descent, no line gap,
// and uniform half-size advances.
func DefaultConfig() Config {
	return Config{
		Name:    "Fonttest",
		Ascent:  0.75,
		Descent: 0.25,
		Advance: 0.5,
	}
}

// Data encodes a Config as font data bytes for text.NewFontSource.
func Data(cfg Config) []byte {
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(fmt.Sprintf("fonttest: marshal config: %v", err))
	}
	return data
}

var registerOnce sync.Once

// Register installs the fonttest parser. Safe to call repeatedly.
func Register() {
	registerOnce.Do(func() {
		text.RegisterParser(ParserName, parser{})
	})
}

// NewSource builds a FontSource backed by the given Config.
func NewSource(t *testing.T, cfg Config) *text.FontSource {
	t.Helper()
	Register()
	src, err := text.NewFontSource(Data(cfg), text.WithParser(ParserName))
	if err != nil {
		t.Fatalf("fonttest: NewFontSource: %v", err)
	}
	return src
}

// NewCatalog builds a catalog with one default family backed by cfg.
func NewCatalog(t *testing.T, family string, cfg Config) *text.Catalog {
	t.Helper()
	c := text.NewCatalog()
	c.Add(family, NewSource(t, cfg))
	return c
}

type parser struct{}

func (parser) Parse(data []byte) (text.ParsedFont, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fonttest: decode config: %w", err)
	}
	return &parsedFont{cfg: cfg}, nil
}

type parsedFont struct {
	cfg Config
}

func (f *parsedFont) Name() string     { return f.cfg.Name }
func (f *parsedFont) FullName() string { return f.cfg.Name + " Regular" }
func (f *parsedFont) NumGlyphs() int   { return math.MaxUint16 }
func (f *parsedFont) UnitsPerEm() int  { return 1000 }

// GlyphIndex maps runes below U+8000 to themselves plus one, which keeps
// the notdef index 0 free. Test text stays within that range.
func (f *parsedFont) GlyphIndex(r rune) uint16 {
	if strings.ContainsRune(f.cfg.Missing, r) {
		return 0
	}
	return uint16(r&0x7FFF) + 1
}

func (f *parsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	frac := f.cfg.Advance
	if glyphIndex != 0 {
		r := rune(glyphIndex - 1)
		if override, ok := f.cfg.Advances[string(r)]; ok {
			frac = override
		}
	}
	return frac * ppem
}

func (f *parsedFont) GlyphBounds(glyphIndex uint16, ppem float64) text.Rect {
	return text.Rect{
		MinX: 0,
		MinY: -f.cfg.Ascent * ppem,
		MaxX: f.GlyphAdvance(glyphIndex, ppem),
		MaxY: f.cfg.Descent * ppem,
	}
}

func (f *parsedFont) Metrics(ppem float64) text.FontMetrics {
	return text.FontMetrics{
		Ascent:    f.cfg.Ascent * ppem,
		Descent:   -f.cfg.Descent * ppem,
		LineGap:   f.cfg.LineGap * ppem,
		XHeight:   0.5 * f.cfg.Ascent * ppem,
		CapHeight: f.cfg.Ascent * ppem,
	}
}

// Rasterize draws mapped runes as solid rectangles covering the full
// advance-by-(ascent+descent) cell, and unmapped runes as a hollow
// one-pixel notdef frame. Whitespace produces no mask.
func (f *parsedFont) Rasterize(r rune, ppem float64) (*text.GlyphImage, error) {
	gid := f.GlyphIndex(r)
	adv := f.GlyphAdvance(gid, ppem)

	switch r {
	case ' ', '\u00A0', '\t', '\n', '\r', '\f', '\v':
		return &text.GlyphImage{Advance: adv}, nil
	}

	w := int(math.Round(adv))
	h := int(math.Round((f.cfg.Ascent + f.cfg.Descent) * ppem))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	top := -int(math.Round(f.cfg.Ascent * ppem))
	bounds := image.Rect(0, top, w, top+h)

	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if gid == 0 {
				// Hollow frame for notdef.
				onEdge := x == bounds.Min.X || x == bounds.Max.X-1 ||
					y == bounds.Min.Y || y == bounds.Max.Y-1
				if !onEdge {
					continue
				}
			}
			mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}

	return &text.GlyphImage{Mask: mask, Bounds: bounds, Advance: adv}, nil
}
