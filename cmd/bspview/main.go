// Command bspview opens a window showing generated BSP dungeons.
// Space draws the next seed, T toggles partition outlines, Esc quits.
package main

import (
	"flag"
	"log"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/dungeon"
	"github.com/katalvlaran/bspgen/geom"
	"github.com/katalvlaran/bspgen/gfxview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bspview: ")

	cfg := dungeon.DefaultConfig()
	inset := cfg.Insets.MinX
	cell := flag.Int("cell", 6, "pixels per map cell")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "root region width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "root region height")
	flag.IntVar(&cfg.Splits, "splits", cfg.Splits, "split rounds")
	flag.Float64Var(&cfg.Homogeneity, "homogeneity", cfg.Homogeneity, "split evenness in [0,1]")
	flag.Var(&cfg.Direction, "direction", "split axis: random, vertical, horizontal, alternate or aspect")
	flag.IntVar(&inset, "inset", inset, "room margin inside each leaf")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "first seed")
	flag.Parse()

	cfg.Insets = geom.Uniform(inset)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := gfxview.NewGame(func(seed int64) (*bsp.Tree, error) {
		c := cfg
		c.Seed = seed
		return dungeon.Generate(c)
	}, cfg.Seed, *cell)
	if err != nil {
		log.Fatal(err)
	}
	if err := gfxview.Run(game, "BSP Dungeon"); err != nil {
		log.Fatal(err)
	}
}
