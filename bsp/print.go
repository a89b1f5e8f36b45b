package bsp

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// String renders the tree hierarchically, one line per node:
//
//	#0 (0,0,64,64)
//	├── #1 (1,1,30,63)
//	└── #2 (31,1,63,63) room (33,3,61,61)
//
// An empty tree renders as "<empty>".
func (t *Tree) String() string {
	root := t.at(0)
	if root == nil {
		return "<empty>"
	}

	type frame struct {
		idx    int
		branch treeprint.Tree
	}
	out := treeprint.NewWithRoot(nodeLabel(root))
	stack := []frame{{idx: 0, branch: out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.idx]
		for _, c := range [2]int{n.Left, n.Right} {
			child := t.at(c)
			if child == nil {
				continue
			}
			if t.isLeaf(child) {
				f.branch.AddNode(nodeLabel(child))
				continue
			}
			stack = append(stack, frame{idx: c, branch: f.branch.AddBranch(nodeLabel(child))})
		}
	}

	return out.String()
}

// Print writes String() to w.
func (t *Tree) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func nodeLabel(n *Node) string {
	if n.Room != nil {
		return fmt.Sprintf("#%d %v room %v", n.ID, n.Bounds, *n.Room)
	}
	return fmt.Sprintf("#%d %v", n.ID, n.Bounds)
}
