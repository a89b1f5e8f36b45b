package bsp

import "fmt"

// Validate checks the structural invariants of every occupied slot:
//
//   - ID equals the slot index;
//   - Left and Right are both NoChild or both set;
//   - set pointers are larger than the node's own index (no cycles);
//   - no slot is named as a child by two nodes (no shared descendants).
//
// Dangling pointers left by Prune are tolerated, and so is a room left on a
// node split after BuildRooms.
// Errors: ErrInvariant wrapped with the first offending index.
// Complexity: O(Len).
func (t *Tree) Validate() error {
	owner := make(map[int]int)
	for i, n := range t.nodes {
		if n == nil {
			continue
		}
		switch {
		case n.ID != i:
			return fmt.Errorf("Validate: slot %d holds id %d: %w", i, n.ID, ErrInvariant)
		case (n.Left == NoChild) != (n.Right == NoChild):
			return fmt.Errorf("Validate: slot %d has one child pointer (%d,%d): %w", i, n.Left, n.Right, ErrInvariant)
		case n.Left != NoChild && (n.Left <= i || n.Right <= i):
			return fmt.Errorf("Validate: slot %d points backwards (%d,%d): %w", i, n.Left, n.Right, ErrInvariant)
		case n.Left == NoChild:
			continue
		case n.Left == n.Right:
			return fmt.Errorf("Validate: slot %d names %d twice: %w", i, n.Left, ErrInvariant)
		}
		for _, c := range [2]int{n.Left, n.Right} {
			if p, ok := owner[c]; ok {
				return fmt.Errorf("Validate: slot %d is a child of both %d and %d: %w", c, p, i, ErrInvariant)
			}
			owner[c] = i
		}
	}

	return nil
}
