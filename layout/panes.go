// Package layout owns the pane/tab structure of a window: a binary split
// tree per tab deciding which terminal occupies which pixel rectangle,
// and the ordered tab collection above it.
package layout

import "math"

// Orientation selects the axis a split divides.
type Orientation uint8

const (
	// Vertical splits left/right (divides width).
	Vertical Orientation = iota
	// Horizontal splits top/bottom (divides height).
	Horizontal
)

// MinSplitRatio and MaxSplitRatio clamp divider drags so neither side of
// a split can collapse to zero.
const (
	MinSplitRatio = 0.1
	MaxSplitRatio = 0.9
)

// PaneLayout is the computed pixel rectangle for one pane.
type PaneLayout struct {
	PaneID        int
	X, Y          float32
	Width, Height float32
}

// Divider describes one draggable boundary between two pane regions.
type Divider struct {
	Orientation Orientation
	// Position is the pixel position of the divider line: x for vertical
	// splits, y for horizontal.
	Position float32
	// Origin and Span are the start and extent of the split dimension.
	Origin float32
	Span   float32
	// PerpStart and PerpEnd bound the divider along the other axis for
	// hit-testing.
	PerpStart float32
	PerpEnd   float32
	// Path addresses the split node from the root: false descends left,
	// true descends right.
	Path []bool
}

// node is either a leaf holding a pane or a two-child split.
type node struct {
	// Leaf state: valid when left == nil.
	paneID int

	// Split state.
	orientation Orientation
	ratio       float32
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil }

func (n *node) paneCount() int {
	if n.isLeaf() {
		return 1
	}
	return n.left.paneCount() + n.right.paneCount()
}

func (n *node) collectPaneIDs(ids *[]int) {
	if n.isLeaf() {
		*ids = append(*ids, n.paneID)
		return
	}
	n.left.collectPaneIDs(ids)
	n.right.collectPaneIDs(ids)
}

// splitPane replaces the leaf holding targetID with a split whose left
// child is the old leaf and right child a new leaf. Reports whether the
// target was found.
func (n *node) splitPane(targetID int, o Orientation, newID int) bool {
	if n.isLeaf() {
		if n.paneID != targetID {
			return false
		}
		n.left = &node{paneID: n.paneID}
		n.right = &node{paneID: newID}
		n.orientation = o
		n.ratio = 0.5
		n.paneID = 0
		return true
	}
	return n.left.splitPane(targetID, o, newID) || n.right.splitPane(targetID, o, newID)
}

// removePane removes the leaf holding targetID and collapses its parent
// to the sibling subtree. Returns the replacement for n (possibly n
// itself) and whether the target was found. The root leaf is never
// removed here; CloseActive guards that case.
func (n *node) removePane(targetID int) (*node, bool) {
	if n.isLeaf() {
		return n, false
	}
	if n.left.isLeaf() && n.left.paneID == targetID {
		return n.right, true
	}
	if n.right.isLeaf() && n.right.paneID == targetID {
		return n.left, true
	}
	if repl, ok := n.left.removePane(targetID); ok {
		n.left = repl
		return n, true
	}
	if repl, ok := n.right.removePane(targetID); ok {
		n.right = repl
		return n, true
	}
	return n, false
}

func (n *node) calculateLayouts(x, y, w, h float32, out *[]PaneLayout) {
	if n.isLeaf() {
		*out = append(*out, PaneLayout{PaneID: n.paneID, X: x, Y: y, Width: w, Height: h})
		return
	}
	switch n.orientation {
	case Vertical:
		leftW := float32(math.Floor(float64(w * n.ratio)))
		n.left.calculateLayouts(x, y, leftW, h, out)
		n.right.calculateLayouts(x+leftW, y, w-leftW, h, out)
	case Horizontal:
		topH := float32(math.Floor(float64(h * n.ratio)))
		n.left.calculateLayouts(x, y, w, topH, out)
		n.right.calculateLayouts(x, y+topH, w, h-topH, out)
	}
}

func (n *node) collectDividers(x, y, w, h float32, path []bool, out *[]Divider) {
	if n.isLeaf() {
		return
	}
	switch n.orientation {
	case Vertical:
		leftW := float32(math.Floor(float64(w * n.ratio)))
		*out = append(*out, Divider{
			Orientation: Vertical,
			Position:    x + leftW,
			Origin:      x,
			Span:        w,
			PerpStart:   y,
			PerpEnd:     y + h,
			Path:        append([]bool(nil), path...),
		})
		n.left.collectDividers(x, y, leftW, h, append(path, false), out)
		n.right.collectDividers(x+leftW, y, w-leftW, h, append(path, true), out)
	case Horizontal:
		topH := float32(math.Floor(float64(h * n.ratio)))
		*out = append(*out, Divider{
			Orientation: Horizontal,
			Position:    y + topH,
			Origin:      y,
			Span:        h,
			PerpStart:   x,
			PerpEnd:     x + w,
			Path:        append([]bool(nil), path...),
		})
		n.left.collectDividers(x, y, w, topH, append(path, false), out)
		n.right.collectDividers(x, y+topH, w, h-topH, append(path, true), out)
	}
}

func (n *node) setRatioAt(path []bool, ratio float32) {
	if n.isLeaf() {
		return
	}
	if len(path) == 0 {
		n.ratio = ratio
		return
	}
	if path[0] {
		n.right.setRatioAt(path[1:], ratio)
	} else {
		n.left.setRatioAt(path[1:], ratio)
	}
}

// PaneTree is one tab's binary tree of pane splits. Every pane id appears
// in exactly one leaf; every split has exactly two children.
type PaneTree struct {
	root   *node
	active int
	zoomed bool
}

// NewPaneTree creates a tree holding a single pane.
func NewPaneTree(paneID int) *PaneTree {
	return &PaneTree{root: &node{paneID: paneID}, active: paneID}
}

// PaneCount returns the number of leaves.
func (t *PaneTree) PaneCount() int { return t.root.paneCount() }

// ActivePaneID returns the focused pane id.
func (t *PaneTree) ActivePaneID() int { return t.active }

// SetActive focuses a pane id. The id must exist in the tree.
func (t *PaneTree) SetActive(paneID int) { t.active = paneID }

// Zoomed reports whether the active pane is zoomed to full size.
func (t *PaneTree) Zoomed() bool { return t.zoomed }

// ToggleZoom flips zoom; the tree structure is untouched.
func (t *PaneTree) ToggleZoom() { t.zoomed = !t.zoomed }

// PaneIDs returns all pane ids in depth-first traversal order, which is
// also the focus-cycling order.
func (t *PaneTree) PaneIDs() []int {
	var ids []int
	t.root.collectPaneIDs(&ids)
	return ids
}

// SplitActive replaces the active leaf with a split; the new pane goes on
// the right/bottom at ratio 0.5 and becomes active.
func (t *PaneTree) SplitActive(o Orientation, newID int) {
	t.root.splitPane(t.active, o, newID)
	t.active = newID
	t.zoomed = false
}

// CloseActive removes the active leaf. Returns true when it was the last
// pane, in which case the tree is untouched and the caller closes the
// tab. Otherwise the sibling subtree replaces the parent and focus moves
// to the leaf preceding the closed one in traversal order (the first leaf
// when the closed pane was first).
func (t *PaneTree) CloseActive() bool {
	if t.root.isLeaf() {
		return true
	}

	ids := t.PaneIDs()
	idx := indexOf(ids, t.active)

	repl, ok := t.root.removePane(t.active)
	if !ok {
		return false
	}
	t.root = repl

	survivors := t.PaneIDs()
	if idx > 0 && idx <= len(survivors) {
		t.active = survivors[idx-1]
	} else {
		t.active = survivors[0]
	}
	t.zoomed = false
	return false
}

// FocusNext cycles focus forward through the leaves, wrapping at the end.
func (t *PaneTree) FocusNext() {
	ids := t.PaneIDs()
	if len(ids) <= 1 {
		return
	}
	idx := indexOf(ids, t.active)
	t.active = ids[(idx+1)%len(ids)]
	t.zoomed = false
}

// FocusPrev cycles focus backward, wrapping at the start.
func (t *PaneTree) FocusPrev() {
	ids := t.PaneIDs()
	if len(ids) <= 1 {
		return
	}
	idx := indexOf(ids, t.active)
	if idx == 0 {
		idx = len(ids)
	}
	t.active = ids[idx-1]
	t.zoomed = false
}

// CalculateLayouts partitions the viewport rectangle across all panes.
// Pure function of the tree and dimensions; when zoomed only the active
// pane is returned, at full size.
func (t *PaneTree) CalculateLayouts(width, height float32) []PaneLayout {
	if t.zoomed {
		return []PaneLayout{{PaneID: t.active, Width: width, Height: height}}
	}
	var out []PaneLayout
	t.root.calculateLayouts(0, 0, width, height, &out)
	return out
}

// CollectDividers enumerates all split boundaries for hit-testing, with
// their root paths for SetRatioAt.
func (t *PaneTree) CollectDividers(width, height float32) []Divider {
	var out []Divider
	t.root.collectDividers(0, 0, width, height, nil, &out)
	return out
}

// SetRatioAt updates the ratio of the split addressed by path, clamped so
// neither side vanishes.
func (t *PaneTree) SetRatioAt(path []bool, ratio float32) {
	t.root.setRatioAt(path, min(max(ratio, MinSplitRatio), MaxSplitRatio))
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return 0
}
