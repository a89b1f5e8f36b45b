package bsp

import (
	"math/rand"

	"github.com/runningwild/cmwc"
)

// defaultSeed is used whenever a caller passes seed 0 or no seed at all.
const defaultSeed int64 = 1

// newSource returns a deterministic CMWC source for seed (0 ⇒ defaultSeed).
func newSource(seed int64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}
	c := cmwc.MakeGoodCmwc()
	c.Seed(seed)
	return c
}

// rngFromSeed returns a *rand.Rand over newSource(seed).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(newSource(seed))
}

// NewSource exposes the tree's default generator so callers can share one
// seed policy across trees and their own draws (e.g. split directions).
func NewSource(seed int64) rand.Source {
	return newSource(seed)
}
