package reflow

// Rect is an axis-aligned rectangle in canvas coordinates. X and Y locate
// the top-left corner; W and H extend right and down.
type Rect struct {
	X, Y, W, H float64
}

// ExpandedBy grows the rectangle outward by the given edges.
func (r Rect) ExpandedBy(e Edges) Rect {
	return Rect{
		X: r.X - e.Left,
		Y: r.Y - e.Top,
		W: r.W + e.Horizontal(),
		H: r.H + e.Vertical(),
	}
}

// Dimensions is the box model geometry of one layout box: a content
// rectangle surrounded by padding, border, and margin edges.
type Dimensions struct {
	Content Rect
	Padding Edges
	Border  Edges
	Margin  Edges
}

// PaddingBox returns the area covered by content plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox returns the area covered by content, padding, and border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox returns the total area including the margin. Adjacent margin
// boxes stack edge to edge; margins never collapse.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BoxKind classifies a layout box.
type BoxKind int

const (
	// BoxBlock is a block-level box generated by a display:block node.
	BoxBlock BoxKind = iota

	// BoxInline is an inline-level box generated by a display:inline
	// node or a text leaf.
	BoxInline

	// BoxAnonymous is a generated block box that wraps consecutive
	// inline-level children of a block parent. It has no content node.
	BoxAnonymous
)

// String returns a short name for the box kind.
func (k BoxKind) String() string {
	switch k {
	case BoxBlock:
		return "block"
	case BoxInline:
		return "inline"
	case BoxAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// LayoutBox is a node in the box tree. BuildBoxTree creates the tree with
// zero Dims; Engine.LayoutTree fills in the geometry.
type LayoutBox struct {
	Kind BoxKind

	// Node is the content node that generated this box. Nil for
	// anonymous boxes.
	Node *ContentNode

	// Style is the resolved style. Anonymous boxes have a zero style.
	Style Style

	// Dims is the computed geometry, valid after layout.
	Dims Dimensions

	Children []*LayoutBox

	// Lines holds the laid-out text lines of a box that contains inline
	// content. Filled during layout.
	Lines []LineBox
}

// BuildBoxTree converts a content tree into a box tree.
//
// Each visible node generates one box. Consecutive inline-level children
// of a block box are wrapped in an anonymous block box, so after
// construction every block box has only block-level children. Nodes with
// display:none generate nothing, subtree included; a hidden root is an
// error because it leaves nothing to lay out.
func BuildBoxTree(root *ContentNode, resolver StyleResolver) (*LayoutBox, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if resolver == nil {
		resolver = NodeStyles
	}
	style := resolver.Resolve(root, rootParentStyle())
	if style.Display == DisplayNone {
		return nil, ErrRootHidden
	}
	return buildBox(root, style, resolver), nil
}

func buildBox(node *ContentNode, style Style, resolver StyleResolver) *LayoutBox {
	kind := BoxBlock
	if node.Kind == NodeText || style.Display == DisplayInline {
		kind = BoxInline
	}
	box := &LayoutBox{Kind: kind, Node: node, Style: style}

	for _, child := range node.Children {
		cs := resolver.Resolve(child, style)
		if child.Kind == NodeElement && cs.Display == DisplayNone {
			continue
		}
		childBox := buildBox(child, cs, resolver)
		if kind == BoxBlock && childBox.Kind == BoxInline {
			parent := box.inlineContainer()
			parent.Children = append(parent.Children, childBox)
		} else {
			box.Children = append(box.Children, childBox)
		}
	}
	return box
}

// inlineContainer returns the box that inline-level children of a block
// should be appended to. The trailing anonymous box is reused so that
// consecutive inline siblings share one line flow; a block sibling in
// between closes the run and a new anonymous box starts after it.
func (b *LayoutBox) inlineContainer() *LayoutBox {
	if n := len(b.Children); n > 0 {
		if last := b.Children[n-1]; last.Kind == BoxAnonymous {
			return last
		}
	}
	anon := &LayoutBox{Kind: BoxAnonymous}
	b.Children = append(b.Children, anon)
	return anon
}

// countBoxes returns the number of boxes in the subtree, for diagnostics.
func countBoxes(b *LayoutBox) int {
	n := 1
	for _, c := range b.Children {
		n += countBoxes(c)
	}
	return n
}
