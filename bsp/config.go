// Package: bspgen/bsp
//
// config.go: resolved tree configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = CMWC source seeded with defaultSeed
//   • ratioMin = 0.35, ratioMax = 0.75
//   • center   = geom.Rect.Center

package bsp

import (
	"math/rand"

	"github.com/katalvlaran/bspgen/geom"
)

// treeConfig aggregates the knobs a Tree consults while splitting and routing.
type treeConfig struct {
	// seed the default generator was built from; Subtree reseeds copies from it.
	seed int64
	// rng draws split ratios. Never nil after newTreeConfig.
	rng *rand.Rand
	// Split ratio range, 0 < ratioMin <= ratioMax < 1.
	ratioMin, ratioMax float64
	// center maps a child region to its corridor endpoint.
	center func(geom.Rect) geom.Point
}

const (
	defaultRatioMin = 0.35
	defaultRatioMax = 0.75
)

// newTreeConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newTreeConfig(opts ...Option) treeConfig {
	cfg := treeConfig{
		ratioMin: defaultRatioMin,
		ratioMax: defaultRatioMax,
		center:   geom.Rect.Center,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}

	return cfg
}

// detached returns a copy of cfg with an independent generator, so a
// detached subtree never advances the source tree's stream.
func (c treeConfig) detached() treeConfig {
	c.rng = rngFromSeed(c.seed)
	return c
}
