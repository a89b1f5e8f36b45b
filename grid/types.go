package grid

import "github.com/katalvlaran/bspgen/geom"

// Tile is the content of one cell; its value is the byte written by WriteASCII.
type Tile byte

const (
	// Blank is background and region interior.
	Blank Tile = ' '
	// Wall is a region outline.
	Wall Tile = '*'
	// Floor is walkable room or corridor space.
	Floor Tile = '.'
)

// Grid is a rectangular tile map. Cells are stored row-major.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// fourNeighbors are the N, E, S, W offsets used by region analysis.
var fourNeighbors = [4]geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
