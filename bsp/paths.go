package bsp

import (
	"fmt"

	"github.com/katalvlaran/bspgen/corridor"
)

// GeneratePaths appends one corridor for every lowest branch (a node whose
// two children are occupied leaves), in increasing index order. Each
// corridor runs from the left child's center to the right child's center;
// the center function is set with WithCenter.
//
// Deeper hierarchy levels are not connected: the result is a set of
// pairwise links, not a spanning network. Existing paths are kept, so a
// second call appends duplicates; use ClearPaths to start over.
// It returns the number of paths appended.
//
// A root split once is itself a lowest branch and gets one corridor.
//
// Errors: ErrNoLeaves if no lowest branch exists (empty tree, un-split root).
// Complexity: O(Len + Σ path length).
func (t *Tree) GeneratePaths() (int, error) {
	branches := t.lowestBranches()
	if len(branches) == 0 {
		return 0, fmt.Errorf("GeneratePaths: %w", ErrNoLeaves)
	}
	for _, idx := range branches {
		n := t.nodes[idx]
		from := t.cfg.center(t.nodes[n.Left].Bounds)
		to := t.cfg.center(t.nodes[n.Right].Bounds)
		t.paths = append(t.paths, corridor.Route(from, to))
	}

	return len(branches), nil
}
