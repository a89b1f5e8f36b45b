// Package: bspgen/bsp
//
// subtree.go: extraction of a child subtree as an independent Tree.
//
// Identity:
//   • The copy is renumbered 0,1,2,… in the pre-order produced by Descendants,
//     so the extracted child becomes the new root and ID == index holds again.
//   • Left/Right are rewritten through the old→new index map; a dangling
//     pointer in the source becomes NoChild in the copy.
//   • Rooms are deep-copied; paths are not carried over.
//   • The copy's generator is reseeded, never shared with the source.

package bsp

// Subtree extracts the left (left == true) or right child of index together
// with all of its descendants into a new Tree. It reports false when index is
// not occupied or the requested child is absent; a leaf has no subtree.
//
// The copy uses pre-order numbering rather than heap addressing. Split on it
// still works for leaves whose target slots are free and not named by any
// other node; otherwise it reports ErrSlotOccupied instead of overwriting.
//
// Complexity: O(k) for a subtree of k nodes.
func (t *Tree) Subtree(index int, left bool) (*Tree, bool) {
	n := t.at(index)
	if n == nil {
		return nil, false
	}
	childIdx := n.Right
	if left {
		childIdx = n.Left
	}
	child := t.at(childIdx)
	if child == nil {
		return nil, false
	}

	order := t.preorder(child, []int{childIdx})
	remap := make(map[int]int, len(order))
	for newID, oldID := range order {
		remap[oldID] = newID
	}

	sub := &Tree{
		nodes:      make([]*Node, len(order)),
		cfg:        t.cfg.detached(),
		renumbered: true,
	}
	for newID, oldID := range order {
		c := t.nodes[oldID].clone()
		c.ID = newID
		c.Left = remapChild(remap, c.Left)
		c.Right = remapChild(remap, c.Right)
		sub.nodes[newID] = c
	}

	return sub, true
}

func remapChild(remap map[int]int, old int) int {
	if id, ok := remap[old]; ok {
		return id
	}
	return NoChild
}
