package dungeon

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bspgen/geom"
)

// ErrBadConfig indicates a Config that cannot produce a layout.
var ErrBadConfig = errors.New("dungeon: invalid config")

// MaxSplits bounds Config.Splits; storage grows as 2^(Splits+1) slots.
const MaxSplits = 16

// Config describes one generated layout.
type Config struct {
	// Width and Height of the root region (0,0,Width,Height).
	Width, Height int
	// Splits is the number of rounds; each round splits every leaf once.
	Splits int
	// Homogeneity in [0,1] narrows the split ratio range towards the middle:
	// 0 gives [0.35,0.75], 1 always splits at 0.55. Out-of-range values are
	// clamped.
	Homogeneity float64
	// Direction picks the split axis for each split.
	Direction Direction
	// Insets shrink each leaf into its room.
	Insets geom.Insets
	// Seed for the generator; 0 selects the default seed.
	Seed int64
	// Center picks corridor endpoints; nil uses geom.Rect.Center.
	Center func(geom.Rect) geom.Point
}

// DefaultConfig returns a 128×128 layout with four random split rounds.
func DefaultConfig() Config {
	return Config{
		Width:       128,
		Height:      128,
		Splits:      4,
		Homogeneity: 0.5,
		Direction:   Random,
		Insets:      geom.Uniform(2),
		Seed:        1,
	}
}

// Validate reports the first problem with c, wrapped around ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("size %d×%d: %w", c.Width, c.Height, ErrBadConfig)
	case c.Splits < 0 || c.Splits > MaxSplits:
		return fmt.Errorf("splits %d not in [0,%d]: %w", c.Splits, MaxSplits, ErrBadConfig)
	case math.IsNaN(c.Homogeneity):
		return fmt.Errorf("homogeneity NaN: %w", ErrBadConfig)
	case c.Insets.MinX < 0 || c.Insets.MinY < 0 || c.Insets.MaxX < 0 || c.Insets.MaxY < 0:
		return fmt.Errorf("negative insets %+v: %w", c.Insets, ErrBadConfig)
	case !c.Direction.valid():
		return fmt.Errorf("direction %d: %w", int(c.Direction), ErrBadConfig)
	}
	return nil
}

// ratioRange maps Homogeneity to the split ratio range.
func (c Config) ratioRange() (lo, hi float64) {
	h := math.Max(0, math.Min(1, c.Homogeneity))
	spread := 0.2 * (1 - h)
	return 0.55 - spread, 0.55 + spread
}
