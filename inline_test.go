package reflow

import (
	"image"
	"testing"

	"github.com/gogpu/reflow/internal/fonttest"
)

func TestLayoutInlineTwoLines(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10}, Text("a quick brown fox"))

	box, err := e.Layout(root, 45)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	anon := box.Children[0]
	if anon.Kind != BoxAnonymous {
		t.Fatalf("child Kind = %v, want BoxAnonymous", anon.Kind)
	}
	if len(anon.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(anon.Lines))
	}

	first, second := anon.Lines[0], anon.Lines[1]
	if first.Line.Width != 35 || first.Line.FullWidth != 40 {
		t.Errorf("first line widths = %v/%v, want 35/40", first.Line.Width, first.Line.FullWidth)
	}
	if got, want := first.Rect, (Rect{X: 0, Y: 0, W: 40, H: 10}); got != want {
		t.Errorf("first line rect = %+v, want %+v", got, want)
	}
	if second.Line.Width != 45 {
		t.Errorf("second line width = %v, want 45", second.Line.Width)
	}
	if got, want := second.Rect, (Rect{X: 0, Y: 10, W: 45, H: 10}); got != want {
		t.Errorf("second line rect = %+v, want %+v", got, want)
	}
	if got := first.Line.Baseline(); got != 7.5 {
		t.Errorf("baseline = %v, want 7.5", got)
	}

	if anon.Dims.Content.H != 20 {
		t.Errorf("container height = %v, want 20", anon.Dims.Content.H)
	}
	if box.Dims.Content.H != 20 {
		t.Errorf("root height = %v, want 20", box.Dims.Content.H)
	}
}

func TestLayoutInlineSurfaces(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10}, Text("a quick brown fox"))

	box, err := e.Layout(root, 45)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	lines := box.Children[0].Lines
	wantSizes := []image.Rectangle{
		image.Rect(0, 0, 40, 10),
		image.Rect(0, 0, 45, 10),
	}
	for i, lb := range lines {
		if lb.Surface == nil {
			t.Fatalf("line %d has nil surface", i)
		}
		if lb.Surface.Bounds() != wantSizes[i] {
			t.Errorf("line %d surface bounds = %v, want %v", i, lb.Surface.Bounds(), wantSizes[i])
		}
	}
}

func TestLayoutInlineBreakAtRunBoundary(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10},
		Text("ab "),
		Text("cd"),
	)

	box, err := e.Layout(root, 10)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	lines := box.Children[0].Lines
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (break between runs)", len(lines))
	}

	// The first run, trailing space included, stays on line one.
	if lines[0].Line.Width != 10 || lines[0].Line.FullWidth != 15 {
		t.Errorf("first line widths = %v/%v, want 10/15",
			lines[0].Line.Width, lines[0].Line.FullWidth)
	}
	for _, g := range lines[0].Line.Glyphs {
		if g.Run != 0 {
			t.Errorf("first line glyph %q from run %d, want 0", g.Rune, g.Run)
		}
	}
	for _, g := range lines[1].Line.Glyphs {
		if g.Run != 1 {
			t.Errorf("second line glyph %q from run %d, want 1", g.Rune, g.Run)
		}
	}
}

func TestLayoutInlineMixedSizesShareBaseline(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10},
		Element("span", Style{Display: DisplayInline, FontSize: 20}, Text("aa")),
		Text("bb"),
	)

	box, err := e.Layout(root, 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	anon := box.Children[0]
	if len(anon.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(anon.Lines))
	}

	line := anon.Lines[0]
	// Vertical metrics come from the tallest face on the line.
	if line.Line.Ascent != 15 || line.Line.Descent != 5 {
		t.Errorf("line metrics = %v/%v, want 15/5", line.Line.Ascent, line.Line.Descent)
	}
	if got, want := line.Rect, (Rect{X: 0, Y: 0, W: 30, H: 20}); got != want {
		t.Errorf("line rect = %+v, want %+v", got, want)
	}
	if anon.Dims.Content.H != 20 {
		t.Errorf("container height = %v, want 20", anon.Dims.Content.H)
	}
}

func TestLayoutInlineBoxGeometry(t *testing.T) {
	e := newTestEngine(t)
	span := Element("span", Style{Display: DisplayInline}, Text("cd"))
	root := Element("div", Style{FontSize: 10},
		Text("ab"),
		span,
		Text("ef"),
	)

	box, err := e.Layout(root, 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	anon := box.Children[0]
	if len(anon.Children) != 3 {
		t.Fatalf("anonymous box has %d children, want 3", len(anon.Children))
	}

	wantContent := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 10, Y: 0, W: 10, H: 10},
		{X: 20, Y: 0, W: 10, H: 10},
	}
	for i, want := range wantContent {
		if got := anon.Children[i].Dims.Content; got != want {
			t.Errorf("inline box %d content = %+v, want %+v", i, got, want)
		}
	}

	// The span's geometry is the union of its own text child.
	spanBox := anon.Children[1]
	if len(spanBox.Children) != 1 {
		t.Fatalf("span box has %d children, want 1", len(spanBox.Children))
	}
	if got := spanBox.Children[0].Dims.Content; got != wantContent[1] {
		t.Errorf("span text content = %+v, want %+v", got, wantContent[1])
	}
}

func TestLayoutInlineSpanAcrossLines(t *testing.T) {
	e := newTestEngine(t)
	span := Element("span", Style{Display: DisplayInline}, Text("bb cc"))
	root := Element("div", Style{FontSize: 10}, Text("aa "), span)

	// Width 25 holds "aa bb" plus trailing space; "cc" wraps.
	box, err := e.Layout(root, 25)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	anon := box.Children[0]
	if len(anon.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(anon.Lines))
	}
	if w := anon.Lines[0].Line.Width; w != 25 {
		t.Errorf("first line width = %v, want 25", w)
	}

	// The span contributed glyphs to both lines, so its box is the
	// union: from "bb " on line one through "cc" at the start of line
	// two, spanning both line heights.
	spanBox := anon.Children[1]
	if got, want := spanBox.Dims.Content, (Rect{X: 0, Y: 0, W: 30, H: 20}); got != want {
		t.Errorf("span content = %+v, want %+v", got, want)
	}
}

func TestLayoutInlineMissingGlyph(t *testing.T) {
	cfg := fonttest.DefaultConfig()
	cfg.Missing = "€"
	e := NewEngine(fonttest.NewCatalog(t, "test", cfg))

	root := Element("div", Style{FontSize: 10}, Text("a€b"))
	box, err := e.Layout(root, 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	lines := box.Children[0].Lines
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	glyphs := lines[0].Line.Glyphs
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3 (missing glyph still shaped)", len(glyphs))
	}
	if !glyphs[1].Missing {
		t.Error("middle glyph should be marked missing")
	}
	if glyphs[0].Missing || glyphs[2].Missing {
		t.Error("mapped glyphs marked missing")
	}
}

func TestLayoutInlineEmptyText(t *testing.T) {
	e := newTestEngine(t)
	box, err := e.Layout(Element("div", Style{FontSize: 10}, Text("")), 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	anon := box.Children[0]
	if len(anon.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(anon.Lines))
	}
	if box.Dims.Content.H != 0 {
		t.Errorf("root height = %v, want 0", box.Dims.Content.H)
	}
}

func TestLayoutInlineWhitespaceOnly(t *testing.T) {
	e := newTestEngine(t)
	box, err := e.Layout(Element("div", Style{FontSize: 10}, Text("   ")), 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	lines := box.Children[0].Lines
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Line.Width != 0 || lines[0].Line.FullWidth != 15 {
		t.Errorf("line widths = %v/%v, want 0/15",
			lines[0].Line.Width, lines[0].Line.FullWidth)
	}
	if box.Dims.Content.H != 10 {
		t.Errorf("root height = %v, want one line height 10", box.Dims.Content.H)
	}
}

func TestLayoutInlineForcedSplit(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10}, Text("abcdefgh"))

	box, err := e.Layout(root, 12)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	lines := box.Children[0].Lines
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (word split mid-run)", len(lines))
	}
	for i, lb := range lines {
		if lb.Line.Width != 10 {
			t.Errorf("line %d width = %v, want 10", i, lb.Line.Width)
		}
	}
	if box.Dims.Content.H != 40 {
		t.Errorf("root height = %v, want 40", box.Dims.Content.H)
	}
}

func TestLayoutInlineStackedBlocks(t *testing.T) {
	e := newTestEngine(t)
	root := Element("div", Style{FontSize: 10},
		Element("p", Style{}, Text("ab")),
		Element("p", Style{}, Text("cd")),
	)

	box, err := e.Layout(root, 100)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	firstLines := box.Children[0].Children[0].Lines
	secondLines := box.Children[1].Children[0].Lines
	if len(firstLines) != 1 || len(secondLines) != 1 {
		t.Fatalf("got %d/%d lines, want 1/1", len(firstLines), len(secondLines))
	}

	if firstLines[0].Rect.Y != 0 {
		t.Errorf("first paragraph line Y = %v, want 0", firstLines[0].Rect.Y)
	}
	// The second paragraph's text starts below the first paragraph.
	if secondLines[0].Rect.Y != 10 {
		t.Errorf("second paragraph line Y = %v, want 10", secondLines[0].Rect.Y)
	}
	if box.Dims.Content.H != 20 {
		t.Errorf("root height = %v, want 20", box.Dims.Content.H)
	}
}
