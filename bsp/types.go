package bsp

import "github.com/katalvlaran/bspgen/geom"

// NoChild marks an absent Left or Right pointer.
const NoChild = -1

// Node is one region of the partition.
//
// ID equals the node's slot index in its Tree. Left and Right are slot
// indices of the children, both set or both NoChild. Room is set only on
// leaves large enough to hold one, and only by BuildRooms.
type Node struct {
	ID     int        `json:"id"`
	Bounds geom.Rect  `json:"bounds"`
	Room   *geom.Rect `json:"room,omitempty"`
	Left   int        `json:"left"`
	Right  int        `json:"right"`
}

// HasChildren reports whether n carries child pointers. A pointer may
// dangle after Prune; Tree.IsLeaf resolves that case against the tree.
func (n Node) HasChildren() bool {
	return n.Left != NoChild || n.Right != NoChild
}

// clone returns a deep copy of n (the room rectangle is not shared).
func (n *Node) clone() *Node {
	c := *n
	if n.Room != nil {
		room := *n.Room
		c.Room = &room
	}
	return &c
}

// Tree is a binary space partition stored with heap addressing.
// The zero value is not usable; construct with New.
type Tree struct {
	// nodes[i] is the node with ID i, or nil for an empty slot.
	nodes []*Node
	// paths are the corridors appended by GeneratePaths, in discovery order.
	paths [][]geom.Point
	cfg   treeConfig
	// renumbered is set on trees built by Subtree, where a slot may be
	// named by a node other than its heap parent.
	renumbered bool
}
