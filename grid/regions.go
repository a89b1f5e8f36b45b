package grid

import (
	"fmt"

	"github.com/katalvlaran/bspgen/geom"
)

// FloorRegions finds every 4-connected region of Floor cells.
// Regions are ordered by their first cell in row-major order; the cells of a
// region are listed in BFS order from that cell.
//
// The count is a diagnostic: a partition whose corridors only join siblings
// normally yields one region per lowest branch plus one per lone room.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) FloorRegions() [][]geom.Point {
	seen := make([]bool, len(g.tiles))
	var regions [][]geom.Point

	for i0, t := range g.tiles {
		if t != Floor || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []geom.Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, d := range fourNeighbors {
				v := u.Add(d)
				if !g.InBounds(v) || g.At(v) != Floor {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Region returns the i-th floor region as listed by FloorRegions.
// Returns ErrComponentIndex if i is out of range.
func (g *Grid) Region(i int) ([]geom.Point, error) {
	regions := g.FloorRegions()
	if i < 0 || i >= len(regions) {
		return nil, fmt.Errorf("Region(%d) of %d: %w", i, len(regions), ErrComponentIndex)
	}
	return regions[i], nil
}
