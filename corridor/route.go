package corridor

import "github.com/katalvlaran/bspgen/geom"

// elbowLegs holds the leg order for each diagonal sector: first leg, second leg.
var elbowLegs = map[geom.Direction][2]geom.Direction{
	geom.NorthEast: {geom.East, geom.North},
	geom.SouthEast: {geom.South, geom.East},
	geom.SouthWest: {geom.West, geom.South},
	geom.NorthWest: {geom.North, geom.West},
}

// Route returns the corridor from a to b, both endpoints included.
// Coincident points yield the single point a.
func Route(a, b geom.Point) []geom.Point {
	switch {
	case a.Y == b.Y:
		return straight(a, b.X-a.X, geom.DirectionTo(a, geom.Pt(b.X, a.Y)))
	case a.X == b.X:
		return straight(a, b.Y-a.Y, geom.DirectionTo(a, geom.Pt(a.X, b.Y)))
	}

	dir := geom.DirectionTo(a, b)
	legs := elbowLegs[dir]
	h, v := legLengths(a, b)

	path := make([]geom.Point, 0, 1+h+v)
	path = append(path, a)
	cur := a
	for _, d := range legs {
		n := v
		if d == geom.East || d == geom.West {
			n = h
		}
		step := d.Unit()
		for i := 0; i < n; i++ {
			cur = cur.Add(step)
			path = append(path, cur)
		}
	}

	return path
}

// Elbow returns the corner of the diagonal route from a to b. For orthogonal
// pairs there is no corner and b is returned.
func Elbow(a, b geom.Point) geom.Point {
	if a.X == b.X || a.Y == b.Y {
		return b
	}
	first := elbowLegs[geom.DirectionTo(a, b)][0]
	if first == geom.East || first == geom.West {
		return geom.Pt(b.X, a.Y)
	}
	return geom.Pt(a.X, b.Y)
}

// straight emits |n|+1 points starting at a and stepping towards dir.
func straight(a geom.Point, n int, dir geom.Direction) []geom.Point {
	n = abs(n)
	path := make([]geom.Point, 0, n+1)
	path = append(path, a)
	step := dir.Unit()
	cur := a
	for i := 0; i < n; i++ {
		cur = cur.Add(step)
		path = append(path, cur)
	}
	return path
}

// legLengths returns the horizontal and vertical leg lengths of the elbow
// route from a to b. Along a right-angle elbow the legs are exactly the
// coordinate deltas, so a 45° pair gets two equal legs and every route ends
// on b.
func legLengths(a, b geom.Point) (h, v int) {
	return abs(b.X - a.X), abs(b.Y - a.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
