package bsp

import (
	"fmt"

	"github.com/katalvlaran/bspgen/geom"
)

// New returns an empty tree. capacityHint is the number of splits the caller
// expects; storage for 2·capacityHint+1 slots is reserved up front.
// Complexity: O(capacityHint) for the reservation.
func New(capacityHint int, opts ...Option) *Tree {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Tree{
		nodes: make([]*Node, 0, 2*capacityHint+1),
		cfg:   newTreeConfig(opts...),
	}
}

// SetRoot installs the root region at index 0. It fails with
// ErrRootAlreadySet if the tree already has any slot, so a root is set
// exactly once.
// Complexity: O(1).
func (t *Tree) SetRoot(bounds geom.Rect) error {
	return t.SetRootNode(Node{Bounds: bounds})
}

// SetRootNode is SetRoot for a prepared node. The node's ID is forced to 0
// and its child pointers to NoChild; its Room is kept.
func (t *Tree) SetRootNode(n Node) error {
	if len(t.nodes) != 0 {
		return fmt.Errorf("SetRoot: %w", ErrRootAlreadySet)
	}
	root := n.clone()
	root.ID = 0
	root.Left, root.Right = NoChild, NoChild
	t.nodes = append(t.nodes[:0], root)

	return nil
}

// Len returns the number of slots, occupied or not.
func (t *Tree) Len() int { return len(t.nodes) }

// Count returns the number of occupied slots.
// Complexity: O(Len).
func (t *Tree) Count() int {
	n := 0
	for _, node := range t.nodes {
		if node != nil {
			n++
		}
	}
	return n
}

// Node returns a copy of the node at index and whether the slot is occupied.
func (t *Tree) Node(index int) (Node, bool) {
	n := t.at(index)
	if n == nil {
		return Node{}, false
	}
	return *n.clone(), true
}

// Root returns a copy of the root node, if set.
func (t *Tree) Root() (Node, bool) {
	return t.Node(0)
}

// Nodes returns copies of all occupied nodes in increasing index order.
// Complexity: O(Len).
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		if n != nil {
			out = append(out, *n.clone())
		}
	}
	return out
}

// Rooms returns every assigned room in increasing node index order.
func (t *Tree) Rooms() []geom.Rect {
	var out []geom.Rect
	for _, n := range t.nodes {
		if n != nil && n.Room != nil {
			out = append(out, *n.Room)
		}
	}
	return out
}

// Paths returns a copy of the corridor paths in the order they were generated.
func (t *Tree) Paths() [][]geom.Point {
	out := make([][]geom.Point, len(t.paths))
	for i, p := range t.paths {
		out[i] = append([]geom.Point(nil), p...)
	}
	return out
}

// ClearPaths drops every generated path.
func (t *Tree) ClearPaths() {
	t.paths = nil
}

// IsLeaf reports whether the slot at index is occupied and has no live
// child. Dangling pointers count as absent children.
func (t *Tree) IsLeaf(index int) bool {
	n := t.at(index)
	return n != nil && t.isLeaf(n)
}

// Parent returns the index of the node whose Left or Right is index.
// Heap addressing is tried first; renumbered trees fall back to a scan.
// Complexity: O(1) for heap-addressed trees, O(Len) otherwise.
func (t *Tree) Parent(index int) (int, bool) {
	if index <= 0 || t.at(index) == nil {
		return NoChild, false
	}
	p := (index - 1) / 2
	if n := t.at(p); n != nil && (n.Left == index || n.Right == index) {
		return p, true
	}
	for i, n := range t.nodes {
		if n != nil && (n.Left == index || n.Right == index) {
			return i, true
		}
	}
	return NoChild, false
}

// at returns the node in slot index, or nil for empty and out-of-range slots.
func (t *Tree) at(index int) *Node {
	if index < 0 || index >= len(t.nodes) {
		return nil
	}
	return t.nodes[index]
}

// isLeaf treats empty or out-of-range child slots as absent subtrees.
func (t *Tree) isLeaf(n *Node) bool {
	return t.at(n.Left) == nil && t.at(n.Right) == nil
}

// grow extends storage to at least size slots, filling with empty slots.
func (t *Tree) grow(size int) {
	if size <= len(t.nodes) {
		return
	}
	t.nodes = append(t.nodes, make([]*Node, size-len(t.nodes))...)
}
