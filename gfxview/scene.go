package gfxview

import (
	"image"
	"image/color"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// Shape is one filled rectangle in screen pixels.
type Shape struct {
	Rect  image.Rectangle
	Color color.RGBA
}

var (
	background = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	pathColor  = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	palette    = [...]color.RGBA{
		{R: 255, G: 0, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
	}
)

// buildScene lays out t with cell×cell pixels per grid cell: region
// outlines (if regions is set), then corridor cells, then rooms.
func buildScene(t *bsp.Tree, cell int, regions bool) []Shape {
	var shapes []Shape
	if regions {
		for i, n := range t.Nodes() {
			shapes = appendOutline(shapes, n.Bounds, cell, palette[i%len(palette)])
		}
	}
	for _, path := range t.Paths() {
		for _, p := range path {
			shapes = append(shapes, Shape{Rect: cellRect(geom.R(p.X, p.Y, p.X, p.Y), cell), Color: pathColor})
		}
	}
	for i, room := range t.Rooms() {
		shapes = append(shapes, Shape{Rect: cellRect(room, cell), Color: palette[i%len(palette)]})
	}
	return shapes
}

// appendOutline adds the four one-cell-thick sides of r.
func appendOutline(shapes []Shape, r geom.Rect, cell int, c color.RGBA) []Shape {
	return append(shapes,
		Shape{Rect: cellRect(geom.R(r.X1, r.Y1, r.X2, r.Y1), cell), Color: c},
		Shape{Rect: cellRect(geom.R(r.X1, r.Y2, r.X2, r.Y2), cell), Color: c},
		Shape{Rect: cellRect(geom.R(r.X1, r.Y1, r.X1, r.Y2), cell), Color: c},
		Shape{Rect: cellRect(geom.R(r.X2, r.Y1, r.X2, r.Y2), cell), Color: c},
	)
}

// cellRect converts a closed cell rectangle to pixels.
func cellRect(r geom.Rect, cell int) image.Rectangle {
	return image.Rect(r.X1*cell, r.Y1*cell, (r.X2+1)*cell, (r.Y2+1)*cell)
}
