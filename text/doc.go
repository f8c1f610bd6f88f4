// Package text provides the text side of the reflow engine: font
// loading and metrics, shaping, line breaking, glyph caching, and
// line compositing.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight metrics provider at a specific size
//   - Catalog: family-name index with deterministic fallback
//   - Shaper: text run -> positioned glyphs with break flags
//   - BreakLines: greedy splitting of shaped glyphs into Lines
//   - GlyphCache: at-most-once rasterization per (font, size, rune)
//   - Compositor: cached masks -> one surface per line
//
// # Example usage
//
//	// Load font (do once, share across the application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face := source.Face(16)
//	run := text.NewRun("the quick brown fox", face, color.NRGBA{A: 255})
//	glyphs := text.Shape(run)
//	lines := text.BreakLines(glyphs, 120)
//
//	comp := text.NewCompositor(nil) // global glyph cache
//	for i := range lines {
//	    surface, err := comp.Composite(&lines[i])
//	    // blit surface at the line's position
//	    _ = surface
//	    _ = err
//	}
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// # Missing glyphs
//
// A rune the font cannot map never aborts the pipeline: shapers take
// the notdef glyph's metrics and mark the glyph Missing, and the
// rasterizer renders the notdef box. The condition is logged through
// SetLogger at Warn level.
package text
