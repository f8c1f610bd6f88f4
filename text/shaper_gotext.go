package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// Compared to RunShaper it applies kerning pairs and OpenType features
// within a run, so measured advances match what a full shaping engine
// produces.
//
// Substitutions that merge several runes into one glyph (ligatures) are
// measured correctly but composite as the cluster's first rune, because
// rasterized masks are cached per codepoint. Text that depends on
// cluster-level rendering is out of scope for this engine.
//
// GoTextShaper is an opt-in replacement for RunShaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per Shape() call (font.Face is NOT safe for concurrent use).
// The HarfbuzzShaper instances are pooled via sync.Pool since they also
// are not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	// This avoids re-parsing the font data on every Shape() call.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
// It shapes the run through HarfBuzz and maps the output back onto the
// package's glyph contract: input order, accumulated offsets, break
// flags derived from the source runes, Missing for unmapped runes.
func (s *GoTextShaper) Shape(run Run) []ShapedGlyph {
	if run.Text == "" || run.Face == nil {
		return nil
	}

	face := run.Face
	source := face.Source()
	if source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		Logger().Warn("go-text font parse failed, falling back to RunShaper",
			"font", source.Name(), "err", err)
		return (&RunShaper{}).Shape(run)
	}

	// font.Face is NOT safe for concurrent use, so each Shape() call
	// gets its own instance. font.NewFace is cheap; it wraps the
	// thread-safe *Font and initializes glyph caches.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(run.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goTextFace,
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return s.convertGlyphs(output.Glyphs, runes, run)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
// font.Font is read-only and safe for concurrent use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	// Fast path: check cache with read lock.
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	// Slow path: parse font and update cache with write lock.
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	reader := bytes.NewReader(source.data)
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// convertGlyphs maps go-text output glyphs onto ShapedGlyphs.
func (s *GoTextShaper) convertGlyphs(glyphs []shaping.Glyph, runes []rune, run Run) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	face := run.Face
	m := face.Metrics()
	result := make([]ShapedGlyph, 0, len(glyphs))

	var x float64
	lastCluster := -1

	for _, g := range glyphs {
		ci := g.TextIndex()
		if ci < 0 || ci >= len(runes) {
			ci = 0
		}
		r := runes[ci]

		missing := g.GlyphID == 0
		if missing {
			Logger().Warn("missing glyph, substituting notdef",
				"rune", string(r),
				"font", face.Source().Name())
		}

		// A break opportunity applies to the first glyph of a cluster
		// only; cluster-internal glyphs never start a line.
		breakBefore := false
		if ci != lastCluster && ci > 0 {
			breakBefore = BreakAfter(runes[ci-1])
		}
		lastCluster = ci

		adv := fixedToFloat64(g.Advance)
		result = append(result, ShapedGlyph{
			Rune:        r,
			Face:        face,
			Color:       run.Color,
			Offset:      x + fixedToFloat64(g.XOffset),
			Advance:     adv,
			Ascent:      m.Ascent,
			Descent:     m.Descent,
			LineGap:     m.LineGap,
			BreakBefore: breakBefore,
			Missing:     missing,
		})

		x += adv
	}

	return result
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if isSpaceRune(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
