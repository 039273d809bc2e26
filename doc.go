// Package blockgroup keeps grid-aligned square buildings partitioned into
// connected groups while they are placed and destroyed.
//
// Two buildings belong to the same group when a chain of side-adjacent
// buildings links them and a caller-supplied grouping function accepted
// every link in that chain. Corner contact never links.
//
// Everything is organized under four subpackages:
//
//	geom/       Point, Rect, Square footprints and the side-adjacency test
//	occupancy/  cell → anchor map: overlap rejection and neighbor discovery
//	adjacency/  undirected anchor graph with restricted BFS components
//	grouping/   Index[T] and Group[T]: merge on insert, split on remove
//
// Quick ASCII example:
//
//	A A . B        Insert(2,0) → A A X B   one group
//	. . . .                      . . . .
//
//	Remove(2,0) → A A . B   two groups again
//
// The index is single-threaded by contract: call it from the host's
// simulation tick. See examples/ for a runnable host loop.
//
//	go get github.com/katalvlaran/blockgroup
package blockgroup
