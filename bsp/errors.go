package bsp

import "errors"

// Sentinel errors for tree operations. Operations wrap them with the method
// context ("Split(4): bsp: index not found"); match with errors.Is.
var (
	// ErrRootAlreadySet indicates SetRoot was called on a non-empty tree.
	ErrRootAlreadySet = errors.New("bsp: root already set")

	// ErrIndexNotFound indicates the referenced slot is empty or out of range.
	ErrIndexNotFound = errors.New("bsp: index not found")

	// ErrNoLeaves indicates an operation needing at least one leaf (or one
	// lowest branch) found none.
	ErrNoLeaves = errors.New("bsp: no leaves")

	// ErrRegionTooSmall indicates a region is too narrow along the split axis
	// (extent < 5) or across it (extent < 3) to hold two margined children.
	ErrRegionTooSmall = errors.New("bsp: region too small to split")

	// ErrSlotOccupied indicates a child slot already holds a node that does
	// not belong to the node being split. Only renumbered trees produced by
	// Subtree can reach this state.
	ErrSlotOccupied = errors.New("bsp: child slot occupied by another node")

	// ErrInvariant indicates Validate found a structural violation.
	ErrInvariant = errors.New("bsp: invariant violated")
)
