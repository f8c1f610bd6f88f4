package reflow

import "testing"

func TestDisplayString(t *testing.T) {
	tests := []struct {
		display Display
		want    string
	}{
		{DisplayBlock, "block"},
		{DisplayInline, "inline"},
		{DisplayNone, "none"},
		{Display(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.display.String(); got != tt.want {
			t.Errorf("Display(%d).String() = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestDisplayZeroValueIsBlock(t *testing.T) {
	var s Style
	if s.Display != DisplayBlock {
		t.Errorf("zero Style.Display = %v, want DisplayBlock", s.Display)
	}
}

func TestUniformEdges(t *testing.T) {
	e := UniformEdges(4)
	want := Edges{Top: 4, Right: 4, Bottom: 4, Left: 4}
	if e != want {
		t.Errorf("UniformEdges(4) = %+v, want %+v", e, want)
	}
}

func TestEdgesSums(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %v, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %v, want 4", got)
	}
}

func TestElementAndText(t *testing.T) {
	child := Text("hello")
	el := Element("div", Style{FontSize: 12}, child)

	if el.Kind != NodeElement {
		t.Errorf("Element Kind = %v, want NodeElement", el.Kind)
	}
	if el.Tag != "div" {
		t.Errorf("Element Tag = %q, want %q", el.Tag, "div")
	}
	if el.Style.FontSize != 12 {
		t.Errorf("Element FontSize = %v, want 12", el.Style.FontSize)
	}
	if len(el.Children) != 1 || el.Children[0] != child {
		t.Fatalf("Element Children = %v, want the text child", el.Children)
	}

	if child.Kind != NodeText {
		t.Errorf("Text Kind = %v, want NodeText", child.Kind)
	}
	if child.Text != "hello" {
		t.Errorf("Text = %q, want %q", child.Text, "hello")
	}
}

func TestNodeStylesTextInherits(t *testing.T) {
	parent := Style{
		Display:    DisplayBlock,
		FontFamily: "serif",
		FontSize:   20,
		Color:      Red,
		Background: Blue,
		Padding:    UniformEdges(5),
	}

	got := NodeStyles.Resolve(Text("x"), parent)

	if got.Display != DisplayInline {
		t.Errorf("text Display = %v, want DisplayInline", got.Display)
	}
	if got.FontFamily != "serif" || got.FontSize != 20 || got.Color != Red {
		t.Errorf("text did not inherit font properties: %+v", got)
	}
	// Box properties must not leak onto text leaves.
	if got.Background != (RGBA{}) {
		t.Errorf("text inherited Background = %v, want zero", got.Background)
	}
	if got.Padding != (Edges{}) {
		t.Errorf("text inherited Padding = %v, want zero", got.Padding)
	}
}

func TestNodeStylesElementInheritance(t *testing.T) {
	parent := Style{FontFamily: "mono", FontSize: 14, Color: Green}

	tests := []struct {
		name string
		node Style
		want Style
	}{
		{
			name: "unset inherits all",
			node: Style{},
			want: Style{FontFamily: "mono", FontSize: 14, Color: Green},
		},
		{
			name: "explicit values win",
			node: Style{FontFamily: "serif", FontSize: 9, Color: Blue},
			want: Style{FontFamily: "serif", FontSize: 9, Color: Blue},
		},
		{
			name: "partial override",
			node: Style{FontSize: 30},
			want: Style{FontFamily: "mono", FontSize: 30, Color: Green},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := Element("span", tt.node)
			got := NodeStyles.Resolve(el, parent)
			if got.FontFamily != tt.want.FontFamily {
				t.Errorf("FontFamily = %q, want %q", got.FontFamily, tt.want.FontFamily)
			}
			if got.FontSize != tt.want.FontSize {
				t.Errorf("FontSize = %v, want %v", got.FontSize, tt.want.FontSize)
			}
			if got.Color != tt.want.Color {
				t.Errorf("Color = %v, want %v", got.Color, tt.want.Color)
			}
		})
	}
}

func TestNodeStylesNonInheritedStayLocal(t *testing.T) {
	parent := Style{Background: Red, Margin: UniformEdges(10), Width: 300}

	got := NodeStyles.Resolve(Element("div", Style{}), parent)

	if got.Background != (RGBA{}) {
		t.Errorf("Background inherited: %v", got.Background)
	}
	if got.Margin != (Edges{}) {
		t.Errorf("Margin inherited: %v", got.Margin)
	}
	if got.Width != 0 {
		t.Errorf("Width inherited: %v", got.Width)
	}
}
