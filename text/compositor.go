package text

import (
	"image"
	"image/draw"
	"math"
)

// Compositor renders a Line onto a single surface by blitting cached
// per-glyph masks. The font backend can only rasterize one glyph at a
// time, so whole-line pixels are assembled here: each mask is colored
// with its run's fill color and composited source-over at its pen
// position, aligned to the line's common baseline.
//
// A Compositor is stateless apart from the cache it reads through and
// is safe for concurrent use.
type Compositor struct {
	cache *GlyphCache
}

// NewCompositor creates a Compositor that reads masks through cache.
// A nil cache means the global glyph cache.
func NewCompositor(cache *GlyphCache) *Compositor {
	if cache == nil {
		cache = GetGlobalGlyphCache()
	}
	return &Compositor{cache: cache}
}

// Cache returns the glyph cache the compositor reads through.
func (c *Compositor) Cache() *GlyphCache {
	return c.cache
}

// Composite renders the line onto a fresh RGBA surface.
//
// The surface is FullWidth wide (so trailing whitespace stays
// addressable) and line-height tall, with a transparent background.
// The baseline sits at the line's max ascent; every glyph's mask is
// placed at (round(pen) + bearing, baseline + ink top), which keeps
// mixed faces and sizes on one shared baseline.
//
// Glyphs pass through the cache even when blank, so rasterize-once
// accounting covers whitespace; blank masks simply blit nothing.
func (c *Compositor) Composite(line *Line) (*image.RGBA, error) {
	if line == nil {
		return nil, nil
	}

	w := int(math.Ceil(line.FullWidth))
	if w < 1 {
		w = 1
	}
	h := int(math.Ceil(line.Height()))
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	baseline := int(math.Round(line.Baseline()))

	for i := range line.Glyphs {
		g := &line.Glyphs[i]

		img, err := c.cache.GetOrRasterize(g.Face, g.Rune)
		if err != nil {
			return nil, err
		}
		if img.Mask == nil || img.Bounds.Empty() {
			continue
		}

		penX := int(math.Round(g.Offset))
		target := img.Bounds.Add(image.Pt(penX, baseline))

		draw.DrawMask(dst, target,
			image.NewUniform(g.Color), image.Point{},
			img.Mask, img.Bounds.Min,
			draw.Over)
	}

	return dst, nil
}
