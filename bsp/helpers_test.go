package bsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// evenTree returns a 64×64 tree whose splits always land on the midpoint.
func evenTree(t testing.TB) *bsp.Tree {
	t.Helper()
	tr := bsp.New(4, bsp.WithSplitRatio(0.5, 0.5))
	require.NoError(t, tr.SetRoot(geom.R(0, 0, 64, 64)))
	return tr
}

// chainTree splits the root vertically, then node 1 and node 3 horizontally:
//
//	0 ─┬─ 1 ─┬─ 3 ─┬─ 7
//	   │     │     └─ 8
//	   │     └─ 4
//	   └─ 2
//
// Leaves: 2, 4, 7, 8. Lowest branch: 3 only.
func chainTree(t testing.TB) *bsp.Tree {
	t.Helper()
	tr := evenTree(t)
	require.NoError(t, tr.Split(true, 0))
	require.NoError(t, tr.Split(false, 1))
	require.NoError(t, tr.Split(false, 3))
	return tr
}

// balancedTree splits the root vertically, then both children horizontally.
// Leaves: 3, 4, 5, 6. Lowest branches: 1 and 2.
func balancedTree(t testing.TB) *bsp.Tree {
	t.Helper()
	tr := evenTree(t)
	require.NoError(t, tr.Split(true, 0))
	require.NoError(t, tr.Split(false, 1))
	require.NoError(t, tr.Split(false, 2))
	return tr
}

// requireWellFormed asserts the id/index and both-or-neither invariants.
func requireWellFormed(t testing.TB, tr *bsp.Tree) {
	t.Helper()
	require.NoError(t, tr.Validate())
	for i := 0; i < tr.Len(); i++ {
		n, ok := tr.Node(i)
		if !ok {
			continue
		}
		require.Equal(t, i, n.ID, "node id must equal its index")
		require.Equal(t, n.Left == bsp.NoChild, n.Right == bsp.NoChild, "node %d has exactly one child", i)
	}
}

func leafIDs(nodes []bsp.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
