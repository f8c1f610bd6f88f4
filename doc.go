// Package reflow lays out styled content trees and renders them to pixels.
//
// # Overview
//
// reflow is a Pure Go layout and text rendering engine. It implements a
// small browser-style pipeline: a styled content tree is converted into a
// box tree, the box tree is laid out with CSS-like block flow, inline text
// is shaped and broken into lines, and the result is painted into a pixel
// buffer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/reflow"
//	    "github.com/gogpu/reflow/text"
//	)
//
//	// Load a font and build a catalog.
//	fonts := text.NewCatalog()
//	fonts.AddFile("sans", "DejaVuSans.ttf")
//
//	// Build a content tree.
//	root := reflow.Element("body", reflow.Style{
//	    Display:    reflow.DisplayBlock,
//	    FontFamily: "sans",
//	    FontSize:   16,
//	    Color:      reflow.Black,
//	    Padding:    reflow.UniformEdges(8),
//	}, reflow.Text("The quick brown fox jumps over the lazy dog."))
//
//	// Lay it out and render to a PNG.
//	engine := reflow.NewEngine(fonts)
//	box, _ := engine.Layout(root, 640)
//	canvas := reflow.Render(box)
//	canvas.SavePNG("output.png")
//
// # Pipeline
//
// The library is organized as a chain of small stages:
//   - Content tree: ContentNode, Style (input model)
//   - Box tree: BuildBoxTree (block, inline, and anonymous boxes)
//   - Layout: Engine.Layout (block flow, inline line breaking)
//   - Display list: BuildDisplayList (rects and line surfaces)
//   - Painting: Paint, Render (software compositing into a Pixmap)
//
// Text handling (font parsing, shaping, line breaking, glyph caching,
// rasterization) lives in the text subpackage and can be used on its own.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All layout lengths are in pixels (float64)
//
// # Scope
//
// reflow implements block flow and inline text only. There is no float,
// table, or flex layout, no margin collapsing, no bidirectional text, and
// no incremental relayout. Layout is deterministic: the same tree and the
// same viewport width always produce the same geometry.
package reflow

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
