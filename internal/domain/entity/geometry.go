package entity

// Rect is an integer screen rectangle relative to the workspace container.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PaneRect represents a leaf's screen position and size.
// Used for geometric navigation to find adjacent panes by position.
type PaneRect struct {
	Node NodeID
	Rect
}

// Layout computes every leaf's rectangle inside bounds, the way a paned
// container allocates: a split of extent E gives its first child
// floor((E-gap)*ratio) and the second the remainder, gap pixels apart.
// Leaves are returned in traversal order.
func (t *PaneTree) Layout(bounds Rect, handleGap int) []PaneRect {
	var out []PaneRect
	t.layout(t.root, bounds, handleGap, &out)
	return out
}

func (t *PaneTree) layout(id NodeID, b Rect, gap int, out *[]PaneRect) {
	n, ok := t.Node(id)
	if !ok {
		return
	}
	if n.IsLeaf() {
		*out = append(*out, PaneRect{Node: id, Rect: b})
		return
	}

	first, second := b, b
	switch n.Orientation {
	case Horizontal:
		avail := max(b.W-gap, 0)
		fw := int(float64(avail) * n.Ratio)
		first.W = fw
		second.X = b.X + fw + gap
		second.W = avail - fw
	case Vertical:
		avail := max(b.H-gap, 0)
		fh := int(float64(avail) * n.Ratio)
		first.H = fh
		second.Y = b.Y + fh + gap
		second.H = avail - fh
	}
	t.layout(n.First, first, gap, out)
	t.layout(n.Second, second, gap, out)
}
