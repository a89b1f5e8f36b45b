// Package gfxview shows partition trees in a window using ebiten.
//
// The tree is turned into a flat list of coloured pixel rectangles (a
// Scene) that Draw paints every frame. Space regenerates with the next
// seed, T toggles region outlines and Esc closes the window.
package gfxview
