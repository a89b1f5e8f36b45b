package bsp

import (
	"fmt"

	"github.com/katalvlaran/bspgen/geom"
)

const (
	// minSplitExtent is the smallest extent along the split axis that leaves
	// both children non-degenerate after their 1-cell margins.
	minSplitExtent = 5
	// minCrossExtent is the smallest extent across the split axis.
	minCrossExtent = 3
)

// Split divides the region at index into two children at 2·index+1 (left or
// top) and 2·index+2 (right or bottom). vertical splits along X, otherwise
// along Y.
//
// The split coordinate is lo + ⌊extent·r⌋ with r drawn from the configured
// ratio range (default [0.35, 0.75)), clamped so both children keep a
// positive extent. Each child is inset by one cell on the sides it shares
// with the parent's outline, and the right/bottom child starts one cell past
// the split line, so neighbouring regions never share a wall cell.
//
// Splitting an already split node replaces its children; their own
// descendants are left in place unreachable (Unsplit first to reclaim them).
// Storage only grows; empty slots are nil, never copies of the parent.
//
// Errors: ErrIndexNotFound, ErrRegionTooSmall, ErrSlotOccupied.
// Complexity: O(1) amortized, plus O(index) when storage must grow; O(Len)
// on trees built by Subtree.
func (t *Tree) Split(vertical bool, index int) error {
	parent := t.at(index)
	if parent == nil {
		return fmt.Errorf("Split(%d): %w", index, ErrIndexNotFound)
	}
	b := parent.Bounds
	lo, hi, cross := b.Y1, b.Y2, b.Width()
	if vertical {
		lo, hi, cross = b.X1, b.X2, b.Height()
	}
	if hi-lo < minSplitExtent || cross < minCrossExtent {
		return fmt.Errorf("Split(%d) %v: %w", index, b, ErrRegionTooSmall)
	}

	left, right := 2*index+1, 2*index+2
	for _, slot := range [2]int{left, right} {
		if parent.Left == slot || parent.Right == slot {
			continue
		}
		if t.at(slot) != nil || t.referenced(slot) {
			return fmt.Errorf("Split(%d): slot %d: %w", index, slot, ErrSlotOccupied)
		}
	}

	s := t.splitCoord(lo, hi)
	var lb, rb geom.Rect
	if vertical {
		lb = geom.R(b.X1+1, b.Y1+1, s, b.Y2-1)
		rb = geom.R(s+1, b.Y1+1, b.X2-1, b.Y2-1)
	} else {
		lb = geom.R(b.X1+1, b.Y1+1, b.X2-1, s)
		rb = geom.R(b.X1+1, s+1, b.X2-1, b.Y2-1)
	}

	t.grow(right + 1)
	t.nodes[left] = &Node{ID: left, Bounds: lb, Left: NoChild, Right: NoChild}
	t.nodes[right] = &Node{ID: right, Bounds: rb, Left: NoChild, Right: NoChild}
	parent.Left, parent.Right = left, right

	return nil
}

// splitCoord draws the split position in [lo+2, hi-3].
func (t *Tree) splitCoord(lo, hi int) int {
	r := t.cfg.ratioMin + t.cfg.rng.Float64()*(t.cfg.ratioMax-t.cfg.ratioMin)
	s := lo + int(float64(hi-lo)*r)
	if s < lo+2 {
		s = lo + 2
	}
	if s > hi-3 {
		s = hi - 3
	}
	return s
}

// referenced reports whether any node still points at slot, dangling or not.
// Heap-addressed trees only point at 2i+1 and 2i+2 from i, so just renumbered
// trees need the scan.
func (t *Tree) referenced(slot int) bool {
	if !t.renumbered {
		return false
	}
	for _, n := range t.nodes {
		if n != nil && (n.Left == slot || n.Right == slot) {
			return true
		}
	}
	return false
}
