package bsp

import "fmt"

// Prune clears the slot at index and every slot of its subtree.
//
// The walk is iterative: descend the left spine pushing nodes; on each pop,
// record the node and continue with its right child. Recorded slots are
// cleared once the walk is done. Pointers into the pruned region from the
// parent are left dangling; traversals read them as absent children, and
// Unsplit is the variant that also clears the parent's pointers.
//
// Errors: ErrIndexNotFound if index is not occupied.
// Complexity: O(k) time for k removed nodes, O(height) stack.
func (t *Tree) Prune(index int) error {
	if t.at(index) == nil {
		return fmt.Errorf("Prune(%d): %w", index, ErrIndexNotFound)
	}

	var (
		stack  []int
		remove []int
		curr   = index
	)
	for len(stack) > 0 || curr != NoChild {
		if curr != NoChild {
			n := t.at(curr)
			if n == nil {
				curr = NoChild
				continue
			}
			stack = append(stack, curr)
			curr = n.Left
			continue
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		remove = append(remove, curr)
		curr = t.nodes[curr].Right
	}

	for _, idx := range remove {
		t.nodes[idx] = nil
	}

	return nil
}

// Unsplit prunes both child subtrees of index and clears its child pointers,
// turning it back into a leaf. Its room, if any, is kept. Unsplit on a leaf
// only clears dangling pointers.
//
// Errors: ErrIndexNotFound if index is not occupied.
func (t *Tree) Unsplit(index int) error {
	n := t.at(index)
	if n == nil {
		return fmt.Errorf("Unsplit(%d): %w", index, ErrIndexNotFound)
	}
	for _, c := range [2]int{n.Left, n.Right} {
		if t.at(c) != nil {
			if err := t.Prune(c); err != nil {
				return fmt.Errorf("Unsplit(%d): %w", index, err)
			}
		}
	}
	n.Left, n.Right = NoChild, NoChild

	return nil
}
