// Package bsp implements the binary space partition tree behind dungeon
// layouts: a rectangle is split recursively into sub-regions, every leaf
// region receives an inset room, and every pair of sibling leaf rooms is
// joined by a corridor.
//
// What:
//
//   - Tree stores its nodes in a flat, sparse slice using heap addressing:
//     the root lives at index 0 and the children of node i at 2i+1 and 2i+2.
//     Empty slots are nil. Detaching a subtree is a bulk clear of slots, not
//     pointer surgery.
//   - Split, Prune, Unsplit, Subtree and Descendants edit and walk the tree.
//   - BuildRooms carves rooms inside leaves; GeneratePaths routes corridors
//     between the children of every lowest branch (an interior node whose two
//     children are both leaves).
//   - Nodes, Leaves, Rooms and Paths are read-only queries for presentation
//     layers; they always return copies.
//
// Pipeline:
//
//	t := bsp.New(8, bsp.WithSeed(42))
//	_ = t.SetRoot(geom.R(0, 0, 64, 64))
//	_ = t.Split(true, 0)
//	_ = t.Split(false, 1)
//	_ = t.Split(false, 2)
//	t.BuildRooms(geom.Uniform(2))
//	_, _ = t.GeneratePaths()
//
// Invariants:
//
//   - Every occupied slot holds a Node whose ID equals the slot index.
//   - Left and Right are both set or both NoChild.
//   - A child pointer may dangle after Prune; every traversal treats an empty
//     or out-of-range slot as an absent subtree.
//
// Randomness:
//
//   - The split position is the only random choice. It is drawn from the
//     tree's own *rand.Rand (a CMWC source by default), configured with
//     WithSeed, WithRand or WithSource. There is no global generator; the same
//     seed and the same call sequence always give the same tree.
//
// Concurrency:
//
//   - A Tree has no internal locking. One goroutine owns it for the whole
//     pipeline; concurrent readers are safe only once mutation has stopped.
//
// Errors:
//
//   - ErrRootAlreadySet: SetRoot on a tree that already has slots.
//   - ErrIndexNotFound:  operation on an absent or out-of-range slot.
//   - ErrNoLeaves:       no leaf (or no lowest branch) where one is required.
//   - ErrRegionTooSmall: the region cannot be split without degenerate children.
//   - ErrSlotOccupied:   a split would overwrite a node that is not a child of the split node.
//   - ErrInvariant:      Validate found a structural violation.
package bsp
