package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultFile is the file name the command line tools dump maps to.
const DefaultFile = "dung.out"

// WriteASCII writes the grid to w, one row per line, each line ending in '\n'.
func (g *Grid) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if err := bw.WriteByte(byte(g.tiles[y*g.Width+x])); err != nil {
				return fmt.Errorf("WriteASCII: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("WriteASCII: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteASCII: %w", err)
	}

	return nil
}

// WriteFile writes the ASCII map to path, creating or truncating it.
// An empty path selects DefaultFile.
func (g *Grid) WriteFile(path string) (err error) {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return g.WriteASCII(f)
}
