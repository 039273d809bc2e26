package grouping

import "github.com/katalvlaran/blockgroup/geom"

// Group is one connected component of linked buildings.
// Its membership never changes after construction.
type Group[T any] struct {
	members []Building[T]
	anchors map[geom.Point]struct{}
	bounds  geom.Rect
	first   geom.Point // row-major smallest anchor, orders Index.Groups
}

// newGroup takes ownership of members. bounds must cover every footprint.
func newGroup[T any](members []Building[T], bounds geom.Rect) *Group[T] {
	g := &Group[T]{
		members: members,
		anchors: make(map[geom.Point]struct{}, len(members)),
		bounds:  bounds,
	}
	for i, b := range members {
		g.anchors[b.Anchor] = struct{}{}
		if i == 0 || b.Anchor.Less(g.first) {
			g.first = b.Anchor
		}
	}

	return g
}

// boundsOf scans the footprints of members.
func boundsOf[T any](members []Building[T]) geom.Rect {
	var r geom.Rect
	for _, b := range members {
		r = r.Union(b.Footprint())
	}

	return r
}

// Buildings returns a copy of the members of g.
func (g *Group[T]) Buildings() []Building[T] {
	out := make([]Building[T], len(g.members))
	copy(out, g.members)

	return out
}

// Len returns the number of members.
func (g *Group[T]) Len() int { return len(g.members) }

// Contains reports whether a member of g is anchored at p.
func (g *Group[T]) Contains(p geom.Point) bool {
	_, ok := g.anchors[p]
	return ok
}

// Bounds returns the smallest rectangle covering every member footprint.
func (g *Group[T]) Bounds() geom.Rect { return g.bounds }

// X returns the left edge of Bounds.
func (g *Group[T]) X() int { return g.bounds.X }

// Y returns the top edge of Bounds.
func (g *Group[T]) Y() int { return g.bounds.Y }

// W returns the width of Bounds.
func (g *Group[T]) W() int { return g.bounds.W }

// H returns the height of Bounds.
func (g *Group[T]) H() int { return g.bounds.H }
