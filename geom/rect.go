package geom

import (
	"fmt"
	"image"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String implements fmt.Stringer as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with corners (X1,Y1) and (X2,Y2).
// Well-formed rectangles satisfy X1 < X2 and Y1 < Y2; the type itself does
// not enforce it.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// R is shorthand for Rect{x1, y1, x2, y2}.
func R(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2-X1. It is negative for inverted rectangles.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns Y2-Y1. It is negative for inverted rectangles.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Empty reports whether r has no positive area (inverted or degenerate).
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Center returns the integer centroid ((X1+X2)/2, (Y1+Y2)/2).
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// HalfFarCorner returns (X2/2, Y2/2): the far corner halved. This is not a
// centroid unless the rectangle starts at the origin; it is kept for callers
// reproducing layouts made with that formula.
func (r Rect) HalfFarCorner() Point {
	return Point{X: r.X2 / 2, Y: r.Y2 / 2}
}

// Contains reports whether p lies within the closed rectangle [X1,X2]×[Y1,Y2].
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Inset shrinks r by the given insets. The result may be inverted when the
// insets exceed the extent; no validation is performed.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X1: r.X1 + in.MinX,
		Y1: r.Y1 + in.MinY,
		X2: r.X2 - in.MaxX,
		Y2: r.Y2 - in.MaxY,
	}
}

// Image converts r to an image.Rectangle with the same corners (no Canon call).
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: r.X1, Y: r.Y1}, Max: image.Point{X: r.X2, Y: r.Y2}}
}

// String implements fmt.Stringer as "(x1,y1,x2,y2)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Insets are per-side margins: MinX/MinY move the near corner inwards,
// MaxX/MaxY move the far corner inwards.
type Insets struct {
	MinX, MinY, MaxX, MaxY int
}

// Uniform returns Insets with the same margin n on every side.
func Uniform(n int) Insets {
	return Insets{MinX: n, MinY: n, MaxX: n, MaxY: n}
}
