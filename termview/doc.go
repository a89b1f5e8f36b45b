// Package termview is an interactive terminal viewer for partition trees.
//
// Region outlines are drawn with a cycling six-colour palette, corridors as
// dots and rooms as solid blocks labelled with their ordinal. A status line
// at the bottom shows the seed and counts.
//
// Keys: r regenerates with the next seed, t toggles region outlines, and
// c, q or Esc quit.
package termview
