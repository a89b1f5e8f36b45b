package gfxview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/bspgen/bsp"
)

// Generator builds the tree shown for seed.
type Generator func(seed int64) (*bsp.Tree, error)

// statusHeight is the strip below the map reserved for the status line.
const statusHeight = 16

// Game implements ebiten.Game.
type Game struct {
	gen     Generator
	seed    int64
	cell    int
	regions bool

	tree          *bsp.Tree
	scene         []Shape
	width, height int

	// pressed reports keys pressed this tick.
	pressed func(ebiten.Key) bool
}

// NewGame returns a game showing gen(seed) with cell pixels per grid cell.
func NewGame(gen Generator, seed int64, cell int) (*Game, error) {
	if cell < 1 {
		cell = 1
	}
	g := &Game{
		gen:     gen,
		seed:    seed,
		cell:    cell,
		regions: true,
		pressed: inpututil.IsKeyJustPressed,
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed returns the seed of the tree on screen.
func (g *Game) Seed() int64 { return g.seed }

// Scene returns a copy of the shapes Draw paints.
func (g *Game) Scene() []Shape {
	return append([]Shape(nil), g.scene...)
}

func (g *Game) load() error {
	t, err := g.gen(g.seed)
	if err != nil {
		return fmt.Errorf("gfxview: seed %d: %w", g.seed, err)
	}
	g.tree = t
	g.width, g.height = g.cell, g.cell
	if root, ok := t.Root(); ok {
		g.width, g.height = (root.Bounds.X2+1)*g.cell, (root.Bounds.Y2+1)*g.cell
	}
	g.scene = buildScene(t, g.cell, g.regions)
	return nil
}

// Update handles input.
func (g *Game) Update() error {
	switch {
	case g.pressed(ebiten.KeyEscape):
		return ebiten.Termination
	case g.pressed(ebiten.KeySpace):
		g.seed++
		return g.load()
	case g.pressed(ebiten.KeyT):
		g.regions = !g.regions
		g.scene = buildScene(g.tree, g.cell, g.regions)
	}
	return nil
}

// Draw paints the scene and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, s := range g.scene {
		r := s.Rect
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y),
			float64(r.Dx()), float64(r.Dy()), s.Color)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 2, g.height)
}

func (g *Game) status() string {
	return fmt.Sprintf("seed %d  rooms %d  paths %d  SPACE: regenerate  T: regions  ESC: quit",
		g.seed, len(g.tree.Rooms()), len(g.tree.Paths()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height + statusHeight
}

// Run opens a window titled title and runs g until Esc or the window closes.
func Run(g *Game, title string) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
