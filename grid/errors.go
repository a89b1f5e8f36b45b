package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrEmptyTree indicates the tree has no root to size the grid from.
	ErrEmptyTree = errors.New("grid: tree has no root")
	// ErrComponentIndex indicates a requested region index is out of range.
	ErrComponentIndex = errors.New("grid: region index out of range")
)
