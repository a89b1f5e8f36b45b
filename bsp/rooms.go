package bsp

import "github.com/katalvlaran/bspgen/geom"

// minRoomExtent: a leaf whose width or height is at most this gets no room.
const minRoomExtent = 3

// BuildRooms carves a room into every leaf: the leaf's bounds shrunk by
// insets. Leaves with width or height ≤ 3 are skipped and their room
// cleared; interior nodes never hold a room. It returns the number of rooms
// assigned.
//
// The result is not checked for degeneracy: insets larger than the leaf
// produce an inverted room, which callers must avoid.
// Complexity: O(Len).
func (t *Tree) BuildRooms(insets geom.Insets) int {
	built := 0
	for _, n := range t.nodes {
		if n == nil {
			continue
		}
		if !t.isLeaf(n) {
			n.Room = nil
			continue
		}
		if n.Bounds.Width() <= minRoomExtent || n.Bounds.Height() <= minRoomExtent {
			n.Room = nil
			continue
		}
		room := n.Bounds.Inset(insets)
		n.Room = &room
		built++
	}

	return built
}
