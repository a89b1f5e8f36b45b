package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// Generate builds the layout described by cfg.
//
// Each round splits every leaf produced by the previous round. Under Random
// and Aspect a leaf too small along the chosen axis is retried along the
// other one; a leaf that cannot be split is kept as a leaf for good. After
// the last round rooms are built and sibling leaves joined; a root that never
// split simply has no corridors.
//
// Errors: ErrBadConfig (wrapped) for an invalid cfg.
func Generate(cfg Config) (*bsp.Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	rng := rand.New(bsp.NewSource(cfg.Seed))
	lo, hi := cfg.ratioRange()
	opts := []bsp.Option{bsp.WithSeed(cfg.Seed), bsp.WithRand(rng), bsp.WithSplitRatio(lo, hi)}
	if cfg.Center != nil {
		opts = append(opts, bsp.WithCenter(cfg.Center))
	}

	t := bsp.New(1<<cfg.Splits, opts...)
	if err := t.SetRoot(geom.R(0, 0, cfg.Width, cfg.Height)); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	frontier := []int{0}
	for round := 0; round < cfg.Splits && len(frontier) > 0; round++ {
		next := make([]int, 0, 2*len(frontier))
		for _, idx := range frontier {
			split, err := splitLeaf(t, idx, cfg.Direction, round, rng)
			if err != nil {
				return nil, fmt.Errorf("Generate: round %d: %w", round, err)
			}
			if split {
				next = append(next, 2*idx+1, 2*idx+2)
			}
		}
		frontier = next
	}

	t.BuildRooms(cfg.Insets)
	if _, err := t.GeneratePaths(); err != nil && !errors.Is(err, bsp.ErrNoLeaves) {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return t, nil
}

// splitLeaf splits idx along the policy's axis. It reports whether a split
// happened.
func splitLeaf(t *bsp.Tree, idx int, d Direction, round int, rng *rand.Rand) (bool, error) {
	n, ok := t.Node(idx)
	if !ok {
		return false, nil
	}
	vertical := d.vertical(round, n.Bounds, rng)
	err := t.Split(vertical, idx)
	if errors.Is(err, bsp.ErrRegionTooSmall) && d.flexible() {
		err = t.Split(!vertical, idx)
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bsp.ErrRegionTooSmall):
		return false, nil
	default:
		return false, err
	}
}
