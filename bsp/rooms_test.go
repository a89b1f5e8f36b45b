package bsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

func TestBuildRooms_LeavesOnly(t *testing.T) {
	tr := chainTree(t)
	require.Equal(t, 4, tr.BuildRooms(geom.Uniform(2)))

	for _, n := range tr.Nodes() {
		if tr.IsLeaf(n.ID) {
			require.NotNil(t, n.Room, "leaf %d", n.ID)
			assert.Equal(t, n.Bounds.Inset(geom.Uniform(2)), *n.Room)
			continue
		}
		assert.Nil(t, n.Room, "interior node %d", n.ID)
	}
}

func TestBuildRooms_SkipsThinLeaves(t *testing.T) {
	cases := []struct {
		name   string
		bounds geom.Rect
		insets geom.Insets
		want   *geom.Rect
	}{
		{"height 3", geom.R(0, 0, 10, 3), geom.Uniform(1), nil},
		{"width 3", geom.R(0, 0, 3, 10), geom.Uniform(1), nil},
		{"smallest", geom.R(0, 0, 4, 4), geom.Uniform(1), &geom.Rect{X1: 1, Y1: 1, X2: 3, Y2: 3}},
		{"asymmetric", geom.R(10, 10, 30, 20), geom.Insets{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}, &geom.Rect{X1: 11, Y1: 12, X2: 27, Y2: 16}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := bsp.New(0)
			require.NoError(t, tr.SetRoot(tc.bounds))
			built := tr.BuildRooms(tc.insets)
			root, _ := tr.Root()
			assert.Equal(t, tc.want, root.Room)
			if tc.want == nil {
				assert.Equal(t, 0, built)
			} else {
				assert.Equal(t, 1, built)
			}
		})
	}
}

func TestBuildRooms_AfterResplit(t *testing.T) {
	tr := evenTree(t)
	require.Equal(t, 1, tr.BuildRooms(geom.Uniform(2)), "an un-split root is a leaf")

	require.NoError(t, tr.Split(true, 0))
	root, _ := tr.Root()
	assert.NotNil(t, root.Room, "Split does not touch rooms")
	assert.NoError(t, tr.Validate())

	require.Equal(t, 2, tr.BuildRooms(geom.Uniform(2)))
	root, _ = tr.Root()
	assert.Nil(t, root.Room, "rebuilding clears rooms on interior nodes")
	assert.Len(t, tr.Rooms(), 2)
}

func TestBuildRooms_Empty(t *testing.T) {
	assert.Equal(t, 0, bsp.New(0).BuildRooms(geom.Uniform(1)))
}
