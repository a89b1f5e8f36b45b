package termview

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
)

// Generator builds the tree shown for seed.
type Generator func(seed int64) (*bsp.Tree, error)

const (
	block = '█'
	floor = '.'
)

var palette = [...]tcell.Color{
	tcell.ColorFuchsia,
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorWhite,
	tcell.ColorGreen,
	tcell.ColorYellow,
}

// Viewer draws one tree at a time on a tcell screen.
type Viewer struct {
	screen  tcell.Screen
	gen     Generator
	seed    int64
	tree    *bsp.Tree
	regions bool
}

// New returns a viewer that shows gen(seed) on screen. The screen must be
// initialized by the caller.
func New(screen tcell.Screen, gen Generator, seed int64) (*Viewer, error) {
	v := &Viewer{screen: screen, gen: gen, seed: seed, regions: true}
	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

// Seed returns the seed of the tree on screen.
func (v *Viewer) Seed() int64 { return v.seed }

// Regenerate replaces the tree with the one for the next seed.
func (v *Viewer) Regenerate() error {
	v.seed++
	return v.load()
}

// ToggleRegions switches region outlines on or off.
func (v *Viewer) ToggleRegions() { v.regions = !v.regions }

func (v *Viewer) load() error {
	t, err := v.gen(v.seed)
	if err != nil {
		return fmt.Errorf("termview: seed %d: %w", v.seed, err)
	}
	v.tree = t
	return nil
}

// Draw renders the current tree and the status line, then shows the screen.
func (v *Viewer) Draw() {
	v.screen.Clear()

	if v.regions {
		for i, n := range v.tree.Nodes() {
			v.outline(n.Bounds, styleFor(i))
		}
	}
	dots := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, path := range v.tree.Paths() {
		for _, p := range path {
			v.screen.SetContent(p.X, p.Y, floor, nil, dots)
		}
	}
	for i, room := range v.tree.Rooms() {
		st := styleFor(i)
		for y := room.Y1; y <= room.Y2; y++ {
			for x := room.X1; x <= room.X2; x++ {
				v.screen.SetContent(x, y, block, nil, st)
			}
		}
		c := room.Center()
		v.text(c.X, c.Y, strconv.Itoa(i), tcell.StyleDefault.Reverse(true))
	}

	_, h := v.screen.Size()
	v.text(0, h-1, v.status(), tcell.StyleDefault)
	v.screen.Show()
}

func (v *Viewer) status() string {
	return fmt.Sprintf("seed %d  rooms %d  paths %d  [r]egenerate [t]oggle [q]uit",
		v.seed, len(v.tree.Rooms()), len(v.tree.Paths()))
}

func (v *Viewer) outline(r geom.Rect, st tcell.Style) {
	for x := r.X1; x <= r.X2; x++ {
		v.screen.SetContent(x, r.Y1, block, nil, st)
		v.screen.SetContent(x, r.Y2, block, nil, st)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		v.screen.SetContent(r.X1, y, block, nil, st)
		v.screen.SetContent(r.X2, y, block, nil, st)
	}
}

func (v *Viewer) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func styleFor(ordinal int) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[ordinal%len(palette)])
}
