// Package adjacency implements the undirected, unweighted graph that links
// side-adjacent building anchors.
//
// The graph G = (V, E) is stored as an adjacency set per node:
//
//	nodes[a] = {b, c, …}   ⇔   edges {a,b}, {a,c}, … ∈ E
//
// and is kept symmetric by every mutator: b ∈ nodes[a] ⇔ a ∈ nodes[b].
// Self-loops are rejected (ErrSelfLoop); parallel edges collapse into one.
//
// Core Methods:
//
//	AddNode(p)                       // O(1), idempotent
//	AddEdge(a, b) error              // O(1), creates missing endpoints
//	RemoveEdge(a, b) bool            // O(1)
//	RemoveNode(p) bool               // O(deg(p))
//	ComponentOf(seed, allow) []Point // O(|C| + edges inside C)
//	Components(seeds, allow)         // O(Σ|C| + edges inside them)
//	NodeCount(), EdgeCount()         // O(1)
//
// ComponentOf and Components accept an Allow predicate that restricts the
// traversal to a subset of nodes. This is how a group is split after one of
// its members is removed: only the surviving members of that group are
// visited, never the rest of the graph.
//
// A Graph is not safe for concurrent use.
package adjacency
