// Package geom provides the integer geometry primitives shared by the
// partition tree, the corridor router and the presentation packages.
//
// What:
//
//   - Rect: axis-aligned rectangle given by its corners (X1,Y1)-(X2,Y2).
//   - Point: integer grid point.
//   - Insets: per-side margins used to carve a room out of a region.
//   - Direction: 8-sector compass classification of one point relative to another.
//
// Coordinates follow screen convention: X grows to the east, Y grows to the
// south, so North means a smaller Y.
//
// Invariants:
//
//   - Rect does not enforce X1 < X2 or Y1 < Y2; producers (bsp.Tree.Split,
//     bsp.Tree.BuildRooms) are responsible for keeping rectangles well formed.
//
// Complexity: every operation in this package is O(1).
package geom
