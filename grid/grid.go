package grid

import (
	"fmt"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// New returns a width×height grid of Blank tiles.
// Returns ErrEmptyGrid unless both dimensions are positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	g := &Grid{Width: width, Height: height, tiles: make([]Tile, width*height)}
	for i := range g.tiles {
		g.tiles[i] = Blank
	}

	return g, nil
}

// FromTree rasterizes t onto a grid sized to its root's far corner.
//
// Occupied nodes are drawn in index order, each as a Wall outline with a
// Blank interior, so children overwrite their parent's interior. Rooms are
// then filled with Floor, and every corridor cell becomes Floor, cutting
// doors through the outlines it crosses. Cells outside the grid are clipped.
func FromTree(t *bsp.Tree) (*Grid, error) {
	root, ok := t.Root()
	if !ok {
		return nil, ErrEmptyTree
	}
	g, err := New(root.Bounds.X2+1, root.Bounds.Y2+1)
	if err != nil {
		return nil, fmt.Errorf("FromTree: root %v: %w", root.Bounds, err)
	}

	for _, n := range t.Nodes() {
		g.Fill(n.Bounds, Blank)
		g.Outline(n.Bounds, Wall)
	}
	for _, room := range t.Rooms() {
		g.Fill(room, Floor)
	}
	for _, path := range t.Paths() {
		for _, p := range path {
			g.Set(p, Floor)
		}
	}

	return g, nil
}

// InBounds reports whether p lies on the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p, or Blank off the grid.
func (g *Grid) At(p geom.Point) Tile {
	if !g.InBounds(p) {
		return Blank
	}
	return g.tiles[g.index(p)]
}

// Set stores tile at p; points off the grid are ignored.
func (g *Grid) Set(p geom.Point, tile Tile) {
	if g.InBounds(p) {
		g.tiles[g.index(p)] = tile
	}
}

// Fill sets every cell of the closed rectangle r to tile.
// Inverted rectangles fill nothing.
func (g *Grid) Fill(r geom.Rect, tile Tile) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			g.Set(geom.Pt(x, y), tile)
		}
	}
}

// Outline sets the border cells of the closed rectangle r to tile.
func (g *Grid) Outline(r geom.Rect, tile Tile) {
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return
	}
	for x := r.X1; x <= r.X2; x++ {
		g.Set(geom.Pt(x, r.Y1), tile)
		g.Set(geom.Pt(x, r.Y2), tile)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		g.Set(geom.Pt(r.X1, y), tile)
		g.Set(geom.Pt(r.X2, y), tile)
	}
}

// Count returns how many cells hold tile.
func (g *Grid) Count(tile Tile) int {
	n := 0
	for _, t := range g.tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Row returns row y as text, or "" off the grid.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.Height {
		return ""
	}
	row := g.tiles[y*g.Width : (y+1)*g.Width]
	b := make([]byte, len(row))
	for i, t := range row {
		b[i] = byte(t)
	}
	return string(b)
}

// index maps p to its row-major offset: y*Width + x.
func (g *Grid) index(p geom.Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major offset back to a point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) geom.Point {
	return geom.Pt(idx%g.Width, idx/g.Width)
}
