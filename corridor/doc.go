// Package corridor computes walkable point sequences between two grid points.
//
// What:
//
//   - Route(a, b): the corridor from a to b as a slice of unit steps.
//   - Elbow(a, b): the corner where a diagonal route turns.
//
// Routing rules:
//
//   - Shared Y: a horizontal run over every integer X from a to b, inclusive.
//   - Shared X: a vertical run over every integer Y from a to b, inclusive.
//   - Otherwise b lies in one of the diagonal sectors NE/SE/SW/NW of a and the
//     route is two straight legs meeting at a right-angle elbow. The leg
//     lengths are d·cos θ and d·sin θ, where d is the straight-line distance
//     and θ the angle of b above the horizontal; with |dx| = |dy| this is the
//     45° split d·cos45°, d·sin45°. Leg order per sector:
//
//     NE: east, then north
//     SE: south, then east
//     SW: west, then south
//     NW: north, then west
//
// Orthogonal routes are reversible: Route(b, a) is Route(a, b) reversed.
// Diagonal routes are not, since the sector (and so the elbow) changes.
//
// Complexity: O(|dx| + |dy|) time and memory per route.
package corridor
