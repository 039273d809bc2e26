// Package geom provides the integer grid primitives shared by the rest of
// github.com/katalvlaran/blockgroup.
//
// What:
//
//   - Point is a comparable value type and is used directly as a map key.
//     There is no packing of (x, y) into a single integer, so negative
//     coordinates need no special handling.
//   - Rect is a half-open cell rectangle [X, X+W) × [Y, Y+H).
//   - Square builds the footprint of a building of a given size.
//   - SideAdjacent decides whether two footprints share a boundary segment of
//     positive length. A touching corner is not adjacency.
//
// Complexity:
//
//   - Every function in this package is O(1).
package geom
