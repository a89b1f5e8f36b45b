// Package: bspgen/bsp
//
// options.go: functional options for Tree construction.
//
// Contract:
//   • Options are functional (type Option func(*treeConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     tree operations themselves never panic.
//   • Determinism is explicit: randomness flows only through WithSeed,
//     WithRand or WithSource.

package bsp

import (
	"math/rand"

	"github.com/katalvlaran/bspgen/geom"
)

// Option customizes a Tree before any node is added.
type Option func(*treeConfig)

// WithSeed seeds the tree's default CMWC generator. Seed 0 selects the
// package default seed, so WithSeed(0) and no option give the same trees.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *treeConfig) {
		c.seed = seed
		c.rng = rngFromSeed(seed)
	}
}

// WithRand makes the tree draw split positions from r. The tree takes
// ownership of r: do not share it with other goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bsp: WithRand(nil)")
	}
	return func(c *treeConfig) {
		c.rng = r
	}
}

// WithSource wraps src in a *rand.Rand for split draws. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("bsp: WithSource(nil)")
	}
	return func(c *treeConfig) {
		c.rng = rand.New(src)
	}
}

// WithSplitRatio sets the range [lo, hi] the split ratio is drawn from: the
// split lands at lo·extent … hi·extent from the near edge. A narrow range
// around 0.5 gives homogeneous regions; lo == hi makes splits deterministic.
// Panics unless 0 < lo <= hi < 1.
func WithSplitRatio(lo, hi float64) Option {
	if !(lo > 0 && lo <= hi && hi < 1) {
		panic("bsp: WithSplitRatio requires 0 < lo <= hi < 1")
	}
	return func(c *treeConfig) {
		c.ratioMin, c.ratioMax = lo, hi
	}
}

// WithCenter sets how GeneratePaths picks the corridor endpoint inside a
// child region. The default is geom.Rect.Center; geom.Rect.HalfFarCorner
// reproduces the far-corner-halved endpoints of older layouts.
// Panics on nil.
func WithCenter(fn func(geom.Rect) geom.Point) Option {
	if fn == nil {
		panic("bsp: WithCenter(nil)")
	}
	return func(c *treeConfig) {
		c.center = fn
	}
}
