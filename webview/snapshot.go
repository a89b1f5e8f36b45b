package webview

import (
	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// Snapshot is the JSON view of one tree.
type Snapshot struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Seed   int64          `json:"seed"`
	Nodes  []bsp.Node     `json:"nodes"`
	Rooms  []geom.Rect    `json:"rooms"`
	Paths  [][]geom.Point `json:"paths"`
}

// NewSnapshot copies the read-out of t. Width and Height span the root's
// far corner; an empty tree yields a zero-sized snapshot.
func NewSnapshot(t *bsp.Tree, seed int64) Snapshot {
	s := Snapshot{
		Seed:  seed,
		Nodes: t.Nodes(),
		Rooms: t.Rooms(),
		Paths: t.Paths(),
	}
	if root, ok := t.Root(); ok {
		s.Width, s.Height = root.Bounds.X2+1, root.Bounds.Y2+1
	}
	if s.Rooms == nil {
		s.Rooms = []geom.Rect{}
	}
	if s.Paths == nil {
		s.Paths = [][]geom.Point{}
	}
	return s
}

// request is a client message on /stream.
type request struct {
	Type string `json:"type"`
	Seed *int64 `json:"seed,omitempty"`
}
