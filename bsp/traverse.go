package bsp

import "fmt"

// Descendants returns every node index reachable from index through Left and
// Right pointers, in depth-first pre-order (left subtree before right), not
// including index itself. Empty or out-of-range child slots are skipped.
//
// An explicit stack bounds auxiliary memory by the tree height instead of
// using the call stack. Heap addressing makes every child index larger than
// its parent's, so no slot is visited twice.
//
// Errors: ErrIndexNotFound if index is not occupied.
// Complexity: O(k) time for k descendants, O(height) stack.
func (t *Tree) Descendants(index int) ([]int, error) {
	n := t.at(index)
	if n == nil {
		return nil, fmt.Errorf("Descendants(%d): %w", index, ErrIndexNotFound)
	}
	return t.preorder(n, nil), nil
}

// preorder appends the descendants of n to out in pre-order.
func (t *Tree) preorder(n *Node, out []int) []int {
	stack := make([]int, 0, 16)
	pushChildren := func(n *Node) {
		// right first so left is popped first
		if t.at(n.Right) != nil {
			stack = append(stack, n.Right)
		}
		if t.at(n.Left) != nil {
			stack = append(stack, n.Left)
		}
	}
	pushChildren(n)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, idx)
		pushChildren(t.nodes[idx])
	}
	return out
}

// lowestBranches returns, in increasing index order, every node whose two
// children are both occupied leaves.
func (t *Tree) lowestBranches() []int {
	var out []int
	for i, n := range t.nodes {
		if n == nil {
			continue
		}
		l, r := t.at(n.Left), t.at(n.Right)
		if l != nil && r != nil && t.isLeaf(l) && t.isLeaf(r) {
			out = append(out, i)
		}
	}
	return out
}

// Leaves returns copies of every occupied node without live children, in
// increasing index order.
//
// Errors: ErrNoLeaves if the tree is empty or holds only an un-split root.
// Complexity: O(Len).
func (t *Tree) Leaves() ([]Node, error) {
	var out []Node
	for _, n := range t.nodes {
		if n != nil && t.isLeaf(n) {
			out = append(out, *n.clone())
		}
	}
	if len(out) == 0 || (len(out) == 1 && out[0].ID == 0) {
		return nil, fmt.Errorf("Leaves: %w", ErrNoLeaves)
	}
	return out, nil
}
