package occupancy

import "github.com/katalvlaran/blockgroup/geom"

// Map records which anchor owns each occupied cell.
type Map struct {
	cells map[geom.Point]geom.Point // cell → anchor of the covering footprint
}

// New returns an empty occupancy Map.
func New() *Map {
	return &Map{cells: make(map[geom.Point]geom.Point)}
}

// TryOccupy claims the size×size footprint rooted at anchor.
// It returns false, and leaves the map untouched, if any cell of the
// footprint is already owned. A non-positive size claims nothing and
// returns false.
//
// Complexity: O(size²).
func (m *Map) TryOccupy(anchor geom.Point, size int) bool {
	if size < 1 {
		return false
	}
	// Check every cell before writing any of them.
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			if _, taken := m.cells[anchor.Add(dx, dy)]; taken {
				return false
			}
		}
	}
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			m.cells[anchor.Add(dx, dy)] = anchor
		}
	}

	return true
}

// Release frees the footprint previously claimed by anchor.
// Cells inside the footprint owned by another anchor are left as they are.
func (m *Map) Release(anchor geom.Point, size int) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			cell := anchor.Add(dx, dy)
			if owner, ok := m.cells[cell]; ok && owner == anchor {
				delete(m.cells, cell)
			}
		}
	}
}

// At returns the anchor of the footprint covering cell p.
func (m *Map) At(p geom.Point) (geom.Point, bool) {
	anchor, ok := m.cells[p]

	return anchor, ok
}

// NeighborsOf returns the distinct anchors of every footprint that shares a
// side segment with the size×size footprint rooted at anchor, in discovery
// order (left, right, top and bottom sides, walked together cell by cell).
//
// Only the cells directly outside each side are scanned, never the four
// diagonal corner cells, so a footprint that merely touches a corner is not
// reported. Any footprint found this way covers a cell flush against one of
// the sides and therefore shares at least one unit of boundary, whatever its
// size.
//
// Complexity: O(size).
func (m *Map) NeighborsOf(anchor geom.Point, size int) []geom.Point {
	var (
		out  []geom.Point
		seen = make(map[geom.Point]struct{}, 4)
	)
	visit := func(cell geom.Point) {
		owner, ok := m.cells[cell]
		if !ok || owner == anchor {
			return
		}
		if _, dup := seen[owner]; dup {
			return
		}
		seen[owner] = struct{}{}
		out = append(out, owner)
	}
	for i := 0; i < size; i++ {
		visit(anchor.Add(-1, i))   // left
		visit(anchor.Add(size, i)) // right
		visit(anchor.Add(i, -1))   // top
		visit(anchor.Add(i, size)) // bottom
	}

	return out
}

// Query returns the distinct anchors owning at least one cell of r,
// in row-major order of the first cell found for each.
//
// Complexity: O(r.W × r.H).
func (m *Map) Query(r geom.Rect) []geom.Point {
	if r.Empty() {
		return nil
	}
	var out []geom.Point
	seen := make(map[geom.Point]struct{})
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			owner, ok := m.cells[geom.Pt(x, y)]
			if !ok {
				continue
			}
			if _, dup := seen[owner]; dup {
				continue
			}
			seen[owner] = struct{}{}
			out = append(out, owner)
		}
	}

	return out
}

// Len returns the number of occupied cells.
func (m *Map) Len() int { return len(m.cells) }

// Clear releases every cell.
func (m *Map) Clear() {
	m.cells = make(map[geom.Point]geom.Point)
}
