// Package grid rasterizes a partition tree into a tile map and analyses it.
//
// What:
//
//   - Grid is a Width×Height map of Tile values addressed as (x, y), y down.
//   - FromTree draws every region outline as Wall, leaves interiors Blank,
//     then fills rooms and corridor paths with Floor.
//   - WriteASCII / WriteFile dump the map one text row per line.
//   - FloorRegions finds 4-connected floor components.
//
// Rectangles are closed: a region (x1,y1,x2,y2) covers columns x1…x2 and
// rows y1…y2, so the map of a tree with root (0,0,W,H) is (W+1)×(H+1).
//
// Complexity:
//
//   - FromTree:     O(W×H + Σ path length) time, O(W×H) memory.
//   - FloorRegions: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions.
//   - ErrEmptyTree: the tree has no root.
//   - ErrComponentIndex: requested region index out of range.
package grid
