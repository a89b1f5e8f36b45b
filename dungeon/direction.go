package dungeon

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/bspgen/geom"
)

// Direction is the split axis policy.
type Direction int

const (
	// Random draws the axis from the generator for every split.
	Random Direction = iota
	// AlwaysVertical splits along X only.
	AlwaysVertical
	// AlwaysHorizontal splits along Y only.
	AlwaysHorizontal
	// Alternate splits vertically on even rounds and horizontally on odd ones.
	Alternate
	// Aspect splits across the longer side; regions within 25% of square
	// fall back to a random draw.
	Aspect
)

var directionNames = [...]string{
	Random:           "random",
	AlwaysVertical:   "vertical",
	AlwaysHorizontal: "horizontal",
	Alternate:        "alternate",
	Aspect:           "aspect",
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d.valid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Set parses s by name, so *Direction can be used with flag.Var.
func (d *Direction) Set(s string) error {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q (want one of %s): %w",
		s, strings.Join(directionNames[:], ", "), ErrBadConfig)
}

// flexible policies may use the other axis when the chosen one is too small.
func (d Direction) flexible() bool {
	return d == Random || d == Aspect
}

func (d Direction) valid() bool {
	return d >= Random && d <= Aspect
}

// vertical decides the axis for a split of bounds in the given round.
func (d Direction) vertical(round int, bounds geom.Rect, rng *rand.Rand) bool {
	switch d {
	case AlwaysVertical:
		return true
	case AlwaysHorizontal:
		return false
	case Alternate:
		return round%2 == 0
	case Aspect:
		w, h := float64(bounds.Width()), float64(bounds.Height())
		switch {
		case w > h*1.25:
			return true
		case h > w*1.25:
			return false
		}
	}
	return rng.Intn(2) == 0
}
