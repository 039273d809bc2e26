package adjacency

import (
	"errors"
	"sort"

	"github.com/katalvlaran/blockgroup/geom"
)

// ErrSelfLoop indicates an attempt to link a node to itself.
var ErrSelfLoop = errors.New("adjacency: self-loop not allowed")

// Allow restricts a traversal to the nodes it returns true for.
// A nil Allow admits every node.
type Allow func(p geom.Point) bool

// Set returns an Allow admitting exactly the members of set.
func Set(set map[geom.Point]struct{}) Allow {
	return func(p geom.Point) bool {
		_, ok := set[p]
		return ok
	}
}

// Graph is an undirected graph keyed by building anchor.
type Graph struct {
	nodes map[geom.Point]map[geom.Point]struct{}
	edges int // undirected edges, each counted once
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[geom.Point]map[geom.Point]struct{})}
}

// AddNode inserts p with no edges. Adding an existing node is a no-op.
func (g *Graph) AddNode(p geom.Point) {
	if _, ok := g.nodes[p]; !ok {
		g.nodes[p] = make(map[geom.Point]struct{})
	}
}

// HasNode reports whether p is a node of g.
func (g *Graph) HasNode(p geom.Point) bool {
	_, ok := g.nodes[p]
	return ok
}

// AddEdge links a and b in both directions, adding either endpoint if it is
// missing. Linking two nodes that are already linked is a no-op.
//
// Errors:
//   - ErrSelfLoop: if a == b.
func (g *Graph) AddEdge(a, b geom.Point) error {
	if a == b {
		return ErrSelfLoop
	}
	g.AddNode(a)
	g.AddNode(b)
	if _, dup := g.nodes[a][b]; dup {
		return nil
	}
	g.nodes[a][b] = struct{}{}
	g.nodes[b][a] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether a and b are linked.
func (g *Graph) HasEdge(a, b geom.Point) bool {
	_, ok := g.nodes[a][b]
	return ok
}

// RemoveEdge unlinks a and b and reports whether they were linked.
func (g *Graph) RemoveEdge(a, b geom.Point) bool {
	if !g.HasEdge(a, b) {
		return false
	}
	delete(g.nodes[a], b)
	delete(g.nodes[b], a)
	g.edges--

	return true
}

// RemoveNode deletes p together with every edge incident to it and reports
// whether p was present.
//
// The neighbor set of p is gone afterwards; callers that need it must read
// Neighbors(p) first.
//
// Complexity: O(deg(p)).
func (g *Graph) RemoveNode(p geom.Point) bool {
	nbrs, ok := g.nodes[p]
	if !ok {
		return false
	}
	for q := range nbrs {
		delete(g.nodes[q], p)
	}
	g.edges -= len(nbrs)
	delete(g.nodes, p)

	return true
}

// Neighbors returns the nodes linked to p, sorted row-major.
// The slice is a copy and may be retained by the caller.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(p geom.Point) []geom.Point {
	nbrs := g.nodes[p]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]geom.Point, 0, len(nbrs))
	for q := range nbrs {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Degree returns the number of nodes linked to p.
func (g *Graph) Degree(p geom.Point) int {
	return len(g.nodes[p])
}

// ComponentOf returns every node reachable from seed through nodes admitted
// by allow, seed first, in breadth-first order.
//
// Implementation:
//   - Stage 1: Return nil if seed is not a node or is not admitted.
//   - Stage 2: BFS from seed with a slice-backed queue; an edge is followed
//     only if its far endpoint is admitted and not yet seen.
//
// Complexity: O(|C| + edges incident to C), where C is the returned component.
func (g *Graph) ComponentOf(seed geom.Point, allow Allow) []geom.Point {
	return g.componentOf(seed, allow, make(map[geom.Point]struct{}))
}

// Components partitions seeds into connected components, restricted to
// the nodes admitted by allow. Components are returned in the order of their
// first seed; seeds that are absent, not admitted, or already covered by an
// earlier component do not start a new one.
//
// Complexity: O(Σ|C| + edges incident to the visited nodes).
func (g *Graph) Components(seeds []geom.Point, allow Allow) [][]geom.Point {
	var (
		comps [][]geom.Point
		seen  = make(map[geom.Point]struct{}, len(seeds))
	)
	for _, s := range seeds {
		if _, done := seen[s]; done {
			continue
		}
		if comp := g.componentOf(s, allow, seen); len(comp) > 0 {
			comps = append(comps, comp)
		}
	}

	return comps
}

// componentOf runs the BFS of ComponentOf, sharing seen across calls so that
// Components visits every node at most once.
func (g *Graph) componentOf(seed geom.Point, allow Allow, seen map[geom.Point]struct{}) []geom.Point {
	if _, ok := g.nodes[seed]; !ok || (allow != nil && !allow(seed)) {
		return nil
	}
	seen[seed] = struct{}{}
	queue := []geom.Point{seed}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v := range g.nodes[u] {
			if _, ok := seen[v]; ok {
				continue
			}
			if allow != nil && !allow(v) {
				continue
			}
			seen[v] = struct{}{}
			queue = append(queue, v)
		}
	}

	return queue
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int { return g.edges }

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.nodes = make(map[geom.Point]map[geom.Point]struct{})
	g.edges = 0
}
