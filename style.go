package reflow

// Display controls which box a node generates.
type Display int

const (
	// DisplayBlock generates a block-level box. Blocks stack vertically
	// and fill the containing block's width. This is the zero value.
	DisplayBlock Display = iota

	// DisplayInline generates an inline-level box that participates in
	// line layout together with its siblings.
	DisplayInline

	// DisplayNone generates no box: the node and its entire subtree are
	// skipped during box tree construction.
	DisplayNone
)

// String returns the CSS keyword for the display value.
func (d Display) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	case DisplayNone:
		return "none"
	default:
		return "unknown"
	}
}

// Edges holds per-side lengths for margin, border, and padding.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// UniformEdges returns Edges with all four sides set to v.
func UniformEdges(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right edges.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of the top and bottom edges.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// DefaultFontSize is used when neither a node nor any of its ancestors
// sets an explicit font size.
const DefaultFontSize = 16.0

// Style is the computed style attached to a content node. It is a flat
// value: there is no cascade, only the inheritance applied by a
// StyleResolver during box tree construction.
//
// Lengths are in pixels. Zero means "unset": an unset Width or Height is
// derived during layout, an unset FontSize or FontFamily is inherited,
// and zero edge widths simply contribute nothing.
type Style struct {
	// Display selects block, inline, or none. The zero value is
	// DisplayBlock.
	Display Display

	// FontFamily names a catalog family for text inside this node.
	// Empty inherits from the parent; if the whole chain is empty the
	// catalog's default family is used.
	FontFamily string

	// FontSize is the text size in pixels. Zero inherits.
	FontSize float64

	// Color is the text fill color. The zero value inherits.
	Color RGBA

	// Background fills the padding box. Transparent paints nothing.
	Background RGBA

	// BorderColor is the color for all four border edges. A per-edge
	// color, if set, takes precedence for that edge.
	BorderColor RGBA

	// Per-edge border colors. The zero value falls back to BorderColor.
	BorderTopColor    RGBA
	BorderRightColor  RGBA
	BorderBottomColor RGBA
	BorderLeftColor   RGBA

	// Margin, BorderWidth, and Padding are the box model edges.
	Margin      Edges
	BorderWidth Edges
	Padding     Edges

	// Width and Height override the derived content size when positive.
	// Zero means auto: blocks fill the containing width and derive
	// height from their children.
	Width  float64
	Height float64
}

// NodeKind discriminates element nodes from text nodes.
type NodeKind int

const (
	// NodeElement is a styled container with children.
	NodeElement NodeKind = iota

	// NodeText is a leaf holding raw text. Text nodes have no style of
	// their own; they inherit font and color from their parent element.
	NodeText
)

// ContentNode is a node in the input content tree. Trees are built with
// Element and Text and are not modified by layout.
type ContentNode struct {
	Kind     NodeKind
	Tag      string
	Text     string
	Style    Style
	Children []*ContentNode
}

// Element creates an element node with the given tag, style, and children.
// The tag is informational only; layout never interprets it.
func Element(tag string, style Style, children ...*ContentNode) *ContentNode {
	return &ContentNode{
		Kind:     NodeElement,
		Tag:      tag,
		Style:    style,
		Children: children,
	}
}

// Text creates a text leaf node.
func Text(s string) *ContentNode {
	return &ContentNode{Kind: NodeText, Text: s}
}

// StyleResolver computes the effective style of a node given its parent's
// effective style. BuildBoxTree calls it once per node, top-down.
//
// The default resolver, NodeStyles, reads Style fields straight off the
// node and applies font and color inheritance. A custom resolver can
// implement a stylesheet cascade without changing the tree model.
type StyleResolver interface {
	Resolve(node *ContentNode, parent Style) Style
}

// NodeStyles is the default StyleResolver: node styles are authoritative,
// with FontFamily, FontSize, and Color inherited when unset.
var NodeStyles StyleResolver = nodeStyles{}

type nodeStyles struct{}

func (nodeStyles) Resolve(node *ContentNode, parent Style) Style {
	if node.Kind == NodeText {
		// Text leaves carry only inherited text properties. Box
		// properties stay zero so a text box never paints its own
		// background or borders.
		return Style{
			Display:    DisplayInline,
			FontFamily: parent.FontFamily,
			FontSize:   parent.FontSize,
			Color:      parent.Color,
		}
	}

	s := node.Style
	if s.FontFamily == "" {
		s.FontFamily = parent.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = parent.FontSize
	}
	if s.Color == (RGBA{}) {
		s.Color = parent.Color
	}
	return s
}

// rootParentStyle seeds inheritance at the tree root.
func rootParentStyle() Style {
	return Style{FontSize: DefaultFontSize, Color: Black}
}
