package bsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

func TestDescendants_PreOrder(t *testing.T) {
	tr := chainTree(t)

	got, err := tr.Descendants(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 7, 8, 4, 2}, got)

	got, err = tr.Descendants(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 8, 4}, got)

	got, err = tr.Descendants(8)
	require.NoError(t, err)
	assert.Empty(t, got, "a leaf has no descendants")
}

func TestDescendants_Errors(t *testing.T) {
	tr := chainTree(t)
	for _, idx := range []int{-1, 5, 6, 9, 1000} {
		_, err := tr.Descendants(idx)
		assert.ErrorIs(t, err, bsp.ErrIndexNotFound, "index %d", idx)
	}
}

func TestDescendants_MatchesCount(t *testing.T) {
	tr := balancedTree(t)
	got, err := tr.Descendants(0)
	require.NoError(t, err)
	assert.Len(t, got, tr.Count()-1)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestLeaves(t *testing.T) {
	leaves, err := chainTree(t).Leaves()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 7, 8}, leafIDs(leaves))

	leaves, err = balancedTree(t).Leaves()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, leafIDs(leaves))
}

func TestLeaves_NoLeaves(t *testing.T) {
	_, err := bsp.New(0).Leaves()
	assert.ErrorIs(t, err, bsp.ErrNoLeaves, "empty tree")

	_, err = evenTree(t).Leaves()
	assert.ErrorIs(t, err, bsp.ErrNoLeaves, "un-split root")
}

func TestIsLeaf(t *testing.T) {
	tr := chainTree(t)
	for idx, want := range map[int]bool{0: false, 1: false, 2: true, 3: false, 4: true, 5: false, 7: true, 8: true, 42: false} {
		assert.Equal(t, want, tr.IsLeaf(idx), "index %d", idx)
	}
}

func TestRooms_OrderFollowsIndex(t *testing.T) {
	tr := balancedTree(t)
	require.Equal(t, 4, tr.BuildRooms(geom.Uniform(2)))
	rooms := tr.Rooms()
	require.Len(t, rooms, 4)
	assert.Equal(t, geom.R(4, 4, 29, 30), rooms[0])
	assert.Equal(t, geom.R(36, 35, 60, 60), rooms[3])
}
