package grid_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bspgen/bsp"
	"github.com/katalvlaran/bspgen/geom"
	"github.com/katalvlaran/bspgen/grid"
)

// twoRooms builds a 12×8 root split once down the middle, with rooms inset
// by insets and, if paths is set, the corridor joining them.
func twoRooms(t *testing.T, insets int, paths bool) *bsp.Tree {
	t.Helper()
	tr := bsp.New(1, bsp.WithSplitRatio(0.5, 0.5))
	if err := tr.SetRoot(geom.R(0, 0, 12, 8)); err != nil {
		t.Fatalf("SetRoot: %v", err)
	}
	if err := tr.Split(true, 0); err != nil {
		t.Fatalf("Split: %v", err)
	}
	tr.BuildRooms(geom.Uniform(insets))
	if paths {
		if _, err := tr.GeneratePaths(); err != nil {
			t.Fatalf("GeneratePaths: %v", err)
		}
	}
	return tr
}

// TestFromTree_ASCII pins the full rendering of a two-room layout.
//
// Left region (1,1,6,7) holds room (3,3,4,5); right region (7,1,11,7) holds
// room (9,3,9,5); the corridor runs along y=4 from (3,4) to (9,4).
func TestFromTree_ASCII(t *testing.T) {
	g, err := grid.FromTree(twoRooms(t, 2, true))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if g.Width != 13 || g.Height != 9 {
		t.Fatalf("size = %d×%d; want 13×9", g.Width, g.Height)
	}

	want := strings.Join([]string{
		"*************",
		"*************",
		"**    **   **",
		"** .. ** . **",
		"** ....... **",
		"** .. ** . **",
		"**    **   **",
		"*************",
		"*************",
		"",
	}, "\n")
	var buf bytes.Buffer
	if err := g.WriteASCII(&buf); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("ASCII mismatch:\n%s\nwant:\n%s", got, want)
	}
	if got := g.Row(4); got != "** ....... **" {
		t.Errorf("Row(4) = %q", got)
	}
	if n := g.Count(grid.Floor); n != 13 {
		t.Errorf("floor cells = %d; want 13", n)
	}
}

// TestFloorRegions_Corridor checks that the corridor merges both rooms.
func TestFloorRegions_Corridor(t *testing.T) {
	g, err := grid.FromTree(twoRooms(t, 2, true))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	regions := g.FloorRegions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions; want 1", len(regions))
	}
	if len(regions[0]) != 13 {
		t.Errorf("region size = %d; want 13", len(regions[0]))
	}
	if regions[0][0] != geom.Pt(3, 3) {
		t.Errorf("region starts at %v; want (3,3)", regions[0][0])
	}
}

// TestFloorRegions_NoCorridor: without paths each room is its own region.
func TestFloorRegions_NoCorridor(t *testing.T) {
	g, err := grid.FromTree(twoRooms(t, 2, false))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	regions := g.FloorRegions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	if len(regions[0]) != 6 || len(regions[1]) != 3 {
		t.Errorf("region sizes = %d,%d; want 6,3", len(regions[0]), len(regions[1]))
	}

	r, err := g.Region(1)
	if err != nil || r[0] != geom.Pt(9, 3) {
		t.Errorf("Region(1) = %v, %v", r, err)
	}
	if _, err := g.Region(2); !errors.Is(err, grid.ErrComponentIndex) {
		t.Errorf("Region(2): got %v; want ErrComponentIndex", err)
	}
	if _, err := g.Region(-1); !errors.Is(err, grid.ErrComponentIndex) {
		t.Errorf("Region(-1): got %v; want ErrComponentIndex", err)
	}
}

// TestFromTree_Errors covers the empty tree and an unusable root.
func TestFromTree_Errors(t *testing.T) {
	if _, err := grid.FromTree(bsp.New(0)); !errors.Is(err, grid.ErrEmptyTree) {
		t.Errorf("empty tree: got %v; want ErrEmptyTree", err)
	}
	tr := bsp.New(0)
	_ = tr.SetRoot(geom.R(-5, -5, -2, -2))
	if _, err := grid.FromTree(tr); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("negative root: got %v; want ErrEmptyGrid", err)
	}
}

// TestNew_Errors ensures non-positive dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		if _, err := grid.New(dims[0], dims[1]); !errors.Is(err, grid.ErrEmptyGrid) {
			t.Errorf("New(%d,%d): got %v; want ErrEmptyGrid", dims[0], dims[1], err)
		}
	}
}

// TestGrid_Clipping: drawing off the grid is ignored, reads return Blank.
func TestGrid_Clipping(t *testing.T) {
	g, _ := grid.New(3, 2)
	g.Fill(geom.R(-4, -4, 10, 10), grid.Floor)
	if n := g.Count(grid.Floor); n != 6 {
		t.Errorf("floor cells = %d; want 6", n)
	}
	g.Fill(geom.R(2, 2, 0, 0), grid.Wall)
	g.Outline(geom.R(2, 2, 0, 0), grid.Wall)
	if n := g.Count(grid.Wall); n != 0 {
		t.Errorf("inverted rect drew %d walls", n)
	}
	if got := g.At(geom.Pt(7, 7)); got != grid.Blank {
		t.Errorf("At off grid = %q; want blank", got)
	}
	if got := g.Row(5); got != "" {
		t.Errorf("Row(5) = %q; want empty", got)
	}
}

// TestWriteFile round-trips the map through a temporary file.
func TestWriteFile(t *testing.T) {
	g, err := grid.FromTree(twoRooms(t, 1, true))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	path := filepath.Join(t.TempDir(), grid.DefaultFile)
	if err := g.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != g.Height {
		t.Fatalf("got %d lines; want %d", len(lines), g.Height)
	}
	for y, line := range lines {
		if line != g.Row(y) {
			t.Errorf("line %d = %q; want %q", y, line, g.Row(y))
		}
		if strings.Trim(line, "*. ") != "" {
			t.Errorf("line %d has unexpected characters: %q", y, line)
		}
	}

	if err := g.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x")); err == nil {
		t.Error("WriteFile into a missing directory: want error")
	}
}
