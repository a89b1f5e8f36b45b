// Package dungeon drives a whole partition pipeline from one Config:
// root region, split rounds, rooms and corridors.
//
// Generate builds a bsp.Tree by splitting every leaf once per round, with
// the split axis chosen by a Direction policy and the split ratio range
// derived from Homogeneity. Leaves too small to split stay leaves. Rooms
// are then carved with the configured insets and corridors joined between
// sibling leaves.
//
// One generator drives both the split positions and the Random direction
// draws, so a Config with the same Seed always yields the same tree.
package dungeon
