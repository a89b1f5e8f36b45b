// Command bspgen generates a BSP dungeon layout and shows it.
//
// Modes:
//
//	ascii  write the tile map to -out (default dung.out, "-" for stdout)
//	tree   print the partition hierarchy
//	term   interactive terminal viewer
//	serve  HTTP viewer on -addr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/dungeon"
	"github.com/katalvlaran/bspgen/geom"
	"github.com/katalvlaran/bspgen/grid"
	"github.com/katalvlaran/bspgen/termview"
	"github.com/katalvlaran/bspgen/webview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bspgen: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// options are the parsed command line.
type options struct {
	cfg    dungeon.Config
	mode   string
	out    string
	addr   string
	center string
}

func parse(args []string, stderr io.Writer) (options, error) {
	o := options{cfg: dungeon.DefaultConfig()}
	var inset int

	fs := flag.NewFlagSet("bspgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.cfg.Width, "width", o.cfg.Width, "root region width")
	fs.IntVar(&o.cfg.Height, "height", o.cfg.Height, "root region height")
	fs.IntVar(&o.cfg.Splits, "splits", o.cfg.Splits, "split rounds")
	fs.Float64Var(&o.cfg.Homogeneity, "homogeneity", o.cfg.Homogeneity, "split evenness in [0,1]")
	fs.Var(&o.cfg.Direction, "direction", "split axis: random, vertical, horizontal, alternate or aspect")
	fs.IntVar(&inset, "inset", o.cfg.Insets.MinX, "room margin inside each leaf")
	fs.Int64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "generator seed")
	fs.StringVar(&o.center, "center", "centroid", "corridor endpoints: centroid or halfcorner")
	fs.StringVar(&o.mode, "mode", "ascii", "ascii, tree, term or serve")
	fs.StringVar(&o.out, "out", grid.DefaultFile, `ascii output file ("-" for stdout)`)
	fs.StringVar(&o.addr, "addr", ":8080", "serve listen address")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	o.cfg.Insets = geom.Uniform(inset)
	switch o.center {
	case "centroid":
	case "halfcorner":
		o.cfg.Center = geom.Rect.HalfFarCorner
	default:
		return o, fmt.Errorf("unknown -center %q", o.center)
	}
	return o, o.cfg.Validate()
}

// generator returns a seed-indexed generator over cfg.
func generator(cfg dungeon.Config) func(int64) (*bsp.Tree, error) {
	return func(seed int64) (*bsp.Tree, error) {
		c := cfg
		c.Seed = seed
		return dungeon.Generate(c)
	}
}

func run(args []string, stdout io.Writer) error {
	o, err := parse(args, os.Stderr)
	if err != nil {
		return err
	}
	gen := generator(o.cfg)

	switch o.mode {
	case "ascii":
		t, err := gen(o.cfg.Seed)
		if err != nil {
			return err
		}
		g, err := grid.FromTree(t)
		if err != nil {
			return err
		}
		if o.out == "-" {
			return g.WriteASCII(stdout)
		}
		if err := g.WriteFile(o.out); err != nil {
			return err
		}
		log.Printf("wrote %dx%d map to %s: %d rooms, %d paths, %d floor regions",
			g.Width, g.Height, o.out, len(t.Rooms()), len(t.Paths()), len(g.FloorRegions()))
		return nil
	case "tree":
		t, err := gen(o.cfg.Seed)
		if err != nil {
			return err
		}
		return t.Print(stdout)
	case "term":
		return termview.Run(termview.Generator(gen), o.cfg.Seed)
	case "serve":
		srv := webview.NewServer(webview.Generator(gen), o.cfg.Seed, log.Default())
		log.Printf("listening on %s", o.addr)
		return http.ListenAndServe(o.addr, srv)
	default:
		return fmt.Errorf("unknown -mode %q", o.mode)
	}
}
