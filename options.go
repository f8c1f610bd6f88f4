package reflow

import "github.com/gogpu/reflow/text"

// engineConfig collects option values before an Engine is built.
type engineConfig struct {
	shaper     text.Shaper
	cache      *text.GlyphCache
	compositor *text.Compositor
	resolver   StyleResolver
}

// EngineOption configures a layout engine.
type EngineOption func(*engineConfig)

// WithShaper makes the engine shape text with the given shaper. By
// default the engine follows the process-wide shaper, including later
// text.SetShaper calls; this option pins one shaper for the engine.
func WithShaper(s text.Shaper) EngineOption {
	return func(c *engineConfig) { c.shaper = s }
}

// WithGlyphCache makes the engine rasterize glyphs through the given
// cache instead of the global one. Ignored when WithCompositor is also
// given, since a compositor carries its own cache.
func WithGlyphCache(gc *text.GlyphCache) EngineOption {
	return func(c *engineConfig) { c.cache = gc }
}

// WithCompositor replaces the compositor used to paint text lines.
func WithCompositor(comp *text.Compositor) EngineOption {
	return func(c *engineConfig) { c.compositor = comp }
}

// WithResolver replaces the default NodeStyles style resolver.
func WithResolver(r StyleResolver) EngineOption {
	return func(c *engineConfig) { c.resolver = r }
}
