package geom

// Direction is the compass sector of one point as seen from another.
type Direction int

const (
	// Same means both points coincide.
	Same Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	Same:      "Same",
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// String returns the short compass name ("N", "NE", ...) or "Same".
func (d Direction) String() string {
	if d < Same || int(d) >= len(directionNames) {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Diagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) Diagonal() bool {
	switch d {
	case NorthEast, SouthEast, SouthWest, NorthWest:
		return true
	}
	return false
}

// DirectionTo classifies to relative to from by the signs of the coordinate
// deltas. Y grows southwards.
func DirectionTo(from, to Point) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == 0:
		return Same
	case dx == 0 && dy < 0:
		return North
	case dx == 0:
		return South
	case dy == 0 && dx > 0:
		return East
	case dy == 0:
		return West
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0:
		return SouthEast
	case dy > 0:
		return SouthWest
	default:
		return NorthWest
	}
}

// Unit returns the single-step vector for d; Same yields the zero Point.
func (d Direction) Unit() Point {
	switch d {
	case North:
		return Point{0, -1}
	case NorthEast:
		return Point{1, -1}
	case East:
		return Point{1, 0}
	case SouthEast:
		return Point{1, 1}
	case South:
		return Point{0, 1}
	case SouthWest:
		return Point{-1, 1}
	case West:
		return Point{-1, 0}
	case NorthWest:
		return Point{-1, -1}
	}
	return Point{}
}
