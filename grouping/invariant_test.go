package grouping_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockgroup/geom"
	"github.com/katalvlaran/blockgroup/grouping"
)

// partition is a canonical form of a grouping: one sorted anchor list per
// group, the groups sorted by their first anchor.
type partition [][]geom.Point

var sortPoints = cmpopts.SortSlices(func(a, b geom.Point) bool { return a.Less(b) })

// expectedPartition recomputes the grouping of bs from scratch: every
// side-adjacent pair with equal payloads is linked, and linked buildings
// are merged with a union-find.
func expectedPartition(bs []grouping.Building[int]) (partition, int) {
	parent := make([]int, len(bs))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	edges := 0
	for i := range bs {
		for j := i + 1; j < len(bs); j++ {
			if bs[i].Data != bs[j].Data || !geom.SideAdjacent(bs[i].Footprint(), bs[j].Footprint()) {
				continue
			}
			edges++
			parent[find(i)] = find(j)
		}
	}

	byRoot := make(map[int][]geom.Point)
	for i, b := range bs {
		r := find(i)
		byRoot[r] = append(byRoot[r], b.Anchor)
	}
	var out partition
	for _, members := range byRoot {
		out = append(out, members)
	}

	return canonical(out), edges
}

func actualPartition(ix *grouping.Index[int]) partition {
	var out partition
	for _, g := range ix.Groups() {
		var members []geom.Point
		for _, b := range g.Buildings() {
			members = append(members, b.Anchor)
		}
		out = append(out, members)
	}

	return canonical(out)
}

func canonical(p partition) partition {
	for _, members := range p {
		sort.Slice(members, func(i, j int) bool { return members[i].Less(members[j]) })
	}
	sort.Slice(p, func(i, j int) bool { return p[i][0].Less(p[j][0]) })

	return p
}

// checkInvariants compares the incremental state of ix with a from-scratch
// recomputation.
func checkInvariants(t *testing.T, ix *grouping.Index[int], step int) {
	t.Helper()
	bs := ix.Buildings()

	// No two footprints overlap.
	for i := range bs {
		for j := i + 1; j < len(bs); j++ {
			require.False(t, bs[i].Footprint().Overlaps(bs[j].Footprint()),
				"step %d: %v overlaps %v", step, bs[i], bs[j])
		}
	}

	want, edges := expectedPartition(bs)
	if diff := cmp.Diff(want, actualPartition(ix), sortPoints); diff != "" {
		t.Fatalf("step %d: partition mismatch (-want +got):\n%s", step, diff)
	}
	require.Equal(t, edges, ix.EdgeCount(), "step %d: edge count", step)
	require.Equal(t, len(bs), ix.NodeCount(), "step %d: node count", step)

	// Every building is in exactly one group and each group's bounds are tight.
	seen := 0
	for _, g := range ix.Groups() {
		var r geom.Rect
		for _, b := range g.Buildings() {
			r = r.Union(b.Footprint())
			require.Same(t, g, ix.GroupOf(b.Anchor.X, b.Anchor.Y), "step %d: owner of %v", step, b.Anchor)
		}
		require.Equal(t, r, g.Bounds(), "step %d: bounds", step)
		seen += g.Len()
	}
	require.Equal(t, len(bs), seen, "step %d: membership count", step)
}

func TestIndex_RandomOperationsKeepPartition(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		rng := rand.New(rand.NewSource(seed))
		ix := grouping.New(grouping.Equal[int]())

		for step := 0; step < 600; step++ {
			x, y := rng.Intn(16)-8, rng.Intn(16)-8
			switch op := rng.Intn(10); {
			case op < 6:
				_, err := ix.Insert(x, y, 1+rng.Intn(3), rng.Intn(2))
				require.NoError(t, err)
			case op < 9:
				// Prefer live anchors so removals actually happen.
				if bs := ix.Buildings(); len(bs) > 0 {
					b := bs[rng.Intn(len(bs))]
					x, y = b.Anchor.X, b.Anchor.Y
				}
				ix.Remove(x, y)
			default:
				if rng.Intn(8) == 0 {
					ix.RemoveAll()
				}
			}
			checkInvariants(t, ix, step)
		}
	}
}
