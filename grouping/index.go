package grouping

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/blockgroup/adjacency"
	"github.com/katalvlaran/blockgroup/geom"
	"github.com/katalvlaran/blockgroup/occupancy"
)

// Index tracks buildings and keeps their grouping up to date.
type Index[T any] struct {
	fn     GroupingFunc[T]
	logger *slog.Logger

	cells     *occupancy.Map
	graph     *adjacency.Graph
	buildings map[geom.Point]Building[T]

	owner  map[geom.Point]*Group[T] // anchor → group holding it
	groups map[*Group[T]]struct{}
}

// New returns an empty Index grouping adjacent buildings with fn.
// A nil fn groups every adjacent pair (see Always).
func New[T any](fn GroupingFunc[T], opts ...Option) *Index[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if fn == nil {
		fn = Always[T]()
	}

	return &Index[T]{
		fn:        fn,
		logger:    o.logger.With("logger", "blockgroup.grouping"),
		cells:     occupancy.New(),
		graph:     adjacency.New(),
		buildings: make(map[geom.Point]Building[T]),
		owner:     make(map[geom.Point]*Group[T]),
		groups:    make(map[*Group[T]]struct{}),
	}
}

// Grouping returns the predicate the index was built with.
func (ix *Index[T]) Grouping() GroupingFunc[T] { return ix.fn }

// Insert places a size×size building at (x, y) carrying data.
//
// Implementation:
//   - Stage 1: Reject size < 1 with ErrInvalidSize before touching any state.
//   - Stage 2: Claim the footprint; if any cell is taken return false.
//   - Stage 3: Register the building and its graph node.
//   - Stage 4: For each side-adjacent neighbor accepted by the grouping
//     function, add an edge and note the neighbor's group.
//   - Stage 5: Replace the noted groups (zero, one or many) by a single group
//     that also holds the new building.
//
// Returns:
//   - true if the building was placed; false if its footprint overlaps one
//     already in the index.
//
// Complexity: O(size² + Σ|merged groups|).
func (ix *Index[T]) Insert(x, y, size int, data T) (bool, error) {
	if size < 1 {
		return false, fmt.Errorf("%w: got %d at %s", ErrInvalidSize, size, geom.Pt(x, y))
	}
	anchor := geom.Pt(x, y)
	if !ix.cells.TryOccupy(anchor, size) {
		return false, nil
	}

	b := Building[T]{Anchor: anchor, Size: size, Data: data}
	ix.buildings[anchor] = b
	ix.graph.AddNode(anchor)

	var (
		merging []*Group[T]
		noted   = make(map[*Group[T]]struct{})
	)
	for _, n := range ix.cells.NeighborsOf(anchor, size) {
		if !ix.fn(data, ix.buildings[n].Data) {
			continue
		}
		// n lies outside the new footprint, so this is never a self-loop.
		if err := ix.graph.AddEdge(anchor, n); err != nil {
			panic(fmt.Sprintf("grouping: link %s-%s: %v", anchor, n, err))
		}
		g := ix.owner[n]
		if _, dup := noted[g]; !dup {
			noted[g] = struct{}{}
			merging = append(merging, g)
		}
	}
	ix.merge(b, merging)

	return true, nil
}

// merge replaces groups by one group holding all their members plus b.
// With no groups this is b's singleton group; with one it is that group
// extended by b.
func (ix *Index[T]) merge(b Building[T], groups []*Group[T]) {
	size := 1
	for _, g := range groups {
		size += g.Len()
	}
	members := make([]Building[T], 0, size)
	bounds := b.Footprint()
	for _, g := range groups {
		members = append(members, g.members...)
		bounds = bounds.Union(g.bounds)
		delete(ix.groups, g)
	}
	members = append(members, b)

	merged := ix.adopt(members, bounds)
	if len(groups) > 1 {
		ix.logger.Debug("groups merged",
			slog.String("anchor", b.Anchor.String()),
			slog.Int("merged", len(groups)),
			slog.Int("members", merged.Len()),
			slog.String("bounds", merged.bounds.String()))
	}
}

// adopt registers a new group and points each member's owner entry at it.
func (ix *Index[T]) adopt(members []Building[T], bounds geom.Rect) *Group[T] {
	g := newGroup(members, bounds)
	ix.groups[g] = struct{}{}
	for _, m := range members {
		ix.owner[m.Anchor] = g
	}

	return g
}

// Remove deletes the building anchored at (x, y) and returns it.
// If no building is anchored there, Remove does nothing and returns false.
//
// Implementation:
//   - Stage 1: Capture the owning group and the building's degree before the
//     graph forgets its edges.
//   - Stage 2: Release its cells and drop its node, edges and group.
//   - Stage 3: A singleton group simply disappears. Otherwise the survivors
//     are re-partitioned by a BFS restricted to the old group, and each
//     component becomes a group with bounds rescanned from its members.
//
// A building with at most one link cannot disconnect its group, so the BFS
// is skipped in that case; the bounds are still rescanned.
//
// Complexity: O(size² + |G| + edges inside G), G being the old group.
func (ix *Index[T]) Remove(x, y int) (Building[T], bool) {
	anchor := geom.Pt(x, y)
	b, ok := ix.buildings[anchor]
	if !ok {
		return b, false
	}
	g := ix.owner[anchor]
	degree := ix.graph.Degree(anchor)

	ix.cells.Release(anchor, b.Size)
	ix.graph.RemoveNode(anchor)
	delete(ix.buildings, anchor)
	delete(ix.owner, anchor)
	delete(ix.groups, g)

	if g.Len() > 1 {
		ix.split(g, anchor, degree)
	}

	return b, true
}

// split re-partitions the members of g other than removed.
func (ix *Index[T]) split(g *Group[T], removed geom.Point, degree int) {
	survivors := make([]Building[T], 0, g.Len()-1)
	for _, m := range g.members {
		if m.Anchor != removed {
			survivors = append(survivors, m)
		}
	}
	if degree <= 1 {
		ix.adopt(survivors, boundsOf(survivors))
		return
	}

	seeds := make([]geom.Point, len(survivors))
	for i, m := range survivors {
		seeds[i] = m.Anchor
	}
	comps := ix.graph.Components(seeds, adjacency.Set(g.anchors))

	// Keep survivor order inside each piece.
	piece := make(map[geom.Point]int, len(survivors))
	for i, comp := range comps {
		for _, p := range comp {
			piece[p] = i
		}
	}
	parts := make([][]Building[T], len(comps))
	for _, m := range survivors {
		i := piece[m.Anchor]
		parts[i] = append(parts[i], m)
	}
	for _, members := range parts {
		ix.adopt(members, boundsOf(members))
	}
	if len(parts) > 1 {
		ix.logger.Debug("group split",
			slog.String("anchor", removed.String()),
			slog.Int("members", len(survivors)),
			slog.Int("parts", len(parts)))
	}
}

// RemoveAll empties the index and reports whether it held anything.
//
// Complexity: O(1) plus garbage collection of the dropped maps.
func (ix *Index[T]) RemoveAll() bool {
	if len(ix.buildings) == 0 {
		return false
	}
	ix.cells.Clear()
	ix.graph.Clear()
	ix.buildings = make(map[geom.Point]Building[T])
	ix.owner = make(map[geom.Point]*Group[T])
	ix.groups = make(map[*Group[T]]struct{})

	return true
}

// Groups returns the current groups ordered by their smallest anchor
// (row-major). The slice is a fresh snapshot; the groups in it are never
// modified by later calls on ix.
//
// Complexity: O(k log k) for k groups.
func (ix *Index[T]) Groups() []*Group[T] {
	out := make([]*Group[T], 0, len(ix.groups))
	for g := range ix.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].first.Less(out[j].first) })

	return out
}

// GroupOf returns the group of the building anchored at (x, y), or nil.
func (ix *Index[T]) GroupOf(x, y int) *Group[T] {
	return ix.owner[geom.Pt(x, y)]
}

// Get returns the building anchored at (x, y).
func (ix *Index[T]) Get(x, y int) (Building[T], bool) {
	b, ok := ix.buildings[geom.Pt(x, y)]
	return b, ok
}

// At returns the building whose footprint covers cell (x, y).
func (ix *Index[T]) At(x, y int) (Building[T], bool) {
	anchor, ok := ix.cells.At(geom.Pt(x, y))
	if !ok {
		return Building[T]{}, false
	}

	return ix.buildings[anchor], true
}

// Exists reports whether a building is anchored at (x, y).
func (ix *Index[T]) Exists(x, y int) bool {
	_, ok := ix.buildings[geom.Pt(x, y)]
	return ok
}

// Adjacent returns every building sharing a side with the building anchored
// at (x, y), whether or not the grouping function linked them.
func (ix *Index[T]) Adjacent(x, y int) []Building[T] {
	b, ok := ix.buildings[geom.Pt(x, y)]
	if !ok {
		return nil
	}

	return ix.lookup(ix.cells.NeighborsOf(b.Anchor, b.Size))
}

// Query returns the buildings covering at least one cell of r.
func (ix *Index[T]) Query(r geom.Rect) []Building[T] {
	return ix.lookup(ix.cells.Query(r))
}

// Buildings returns every building, ordered row-major by anchor.
func (ix *Index[T]) Buildings() []Building[T] {
	out := make([]Building[T], 0, len(ix.buildings))
	for _, b := range ix.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Anchor.Less(out[j].Anchor) })

	return out
}

func (ix *Index[T]) lookup(anchors []geom.Point) []Building[T] {
	if len(anchors) == 0 {
		return nil
	}
	out := make([]Building[T], len(anchors))
	for i, a := range anchors {
		out[i] = ix.buildings[a]
	}

	return out
}

// Len returns the number of buildings.
func (ix *Index[T]) Len() int { return len(ix.buildings) }

// NodeCount returns the number of nodes in the link graph, one per building.
func (ix *Index[T]) NodeCount() int { return ix.graph.NodeCount() }

// EdgeCount returns the number of links between buildings.
func (ix *Index[T]) EdgeCount() int { return ix.graph.EdgeCount() }
