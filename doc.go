// Package bspgen generates dungeon layouts by binary space partitioning.
//
// A rectangular region is split recursively into a complete binary tree of
// sub-regions. Leaves receive inset rooms and sibling subtrees are joined by
// rasterized corridors. The pieces live in subpackages:
//
//	geom/       points, closed rectangles, insets
//	corridor/   straight and L-shaped cell paths between two points
//	bsp/        the heap-indexed partition tree: split, prune, subtree, rooms, paths
//	grid/       tile map rasterization, ASCII output, floor connectivity
//	dungeon/    the round-based generator driven by Config
//	termview/   interactive terminal viewer (tcell)
//	webview/    HTTP page plus websocket stream of snapshots
//	gfxview/    windowed viewer (ebiten)
//
// Commands cmd/bspgen and cmd/bspview wire these together.
package bspgen
