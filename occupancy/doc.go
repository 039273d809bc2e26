// Package occupancy maps every grid cell to the anchor of the building that
// currently covers it.
//
// The map is the admission check for new buildings (TryOccupy refuses any
// footprint that touches an occupied cell) and the cheap source of neighbor
// candidates (NeighborsOf only looks at the ring of cells just outside a
// footprint's four sides).
//
// Invariants:
//
//   - A cell has at most one owner.
//   - All cells of a footprint are claimed and released together.
//
// Complexity:
//
//   - TryOccupy, Release: O(size²).
//   - NeighborsOf: O(size).
//   - Query: O(area of the queried rectangle).
//
// A Map is not safe for concurrent use.
package occupancy
