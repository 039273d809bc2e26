package geom

import "fmt"

// Point is a cell coordinate on the integer grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}

	return p.X < q.X
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a half-open rectangle of cells: [X, X+W) × [Y, Y+H).
// A Rect with W <= 0 or H <= 0 is empty.
type Rect struct {
	X, Y int // top-left cell
	W, H int // width and height in cells
}

// Square returns the size×size footprint rooted at anchor.
func Square(anchor Point, size int) Rect {
	return Rect{X: anchor.X, Y: anchor.Y, W: size, H: size}
}

// Min returns the top-left cell of r.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the exclusive bottom-right corner of r.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.W * r.H
}

// Contains reports whether cell p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether r and s share at least one cell.
func (r Rect) Overlaps(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}

	return overlap(r.X, r.X+r.W, s.X, s.X+s.W) > 0 &&
		overlap(r.Y, r.Y+r.H, s.Y, s.Y+s.H) > 0
}

// Union returns the smallest rectangle covering both r and s.
// Empty operands are ignored; the union of two empty rectangles is empty.
//
// Complexity: O(1).
func (r Rect) Union(s Rect) Rect {
	switch {
	case r.Empty():
		return s
	case s.Empty():
		return r
	}
	minX, minY := min(r.X, s.X), min(r.Y, s.Y)
	maxX, maxY := max(r.X+r.W, s.X+s.W), max(r.Y+r.H, s.Y+s.H)

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// String formats r as "x,y wxh".
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// SideAdjacent reports whether a and b share a boundary segment of positive
// length. Rectangles that only touch at a corner, overlap, or are apart
// are not side-adjacent.
//
// Two rectangles are side-adjacent when one's right (bottom) edge is the
// other's left (top) edge and their extents along that edge overlap by at
// least one cell.
//
// Complexity: O(1).
func SideAdjacent(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	// Vertical contact line: a|b or b|a.
	if a.X+a.W == b.X || b.X+b.W == a.X {
		return overlap(a.Y, a.Y+a.H, b.Y, b.Y+b.H) > 0
	}
	// Horizontal contact line.
	if a.Y+a.H == b.Y || b.Y+b.H == a.Y {
		return overlap(a.X, a.X+a.W, b.X, b.X+b.W) > 0
	}

	return false
}

// overlap returns the length of the intersection of [a0, a1) and [b0, b1),
// or a non-positive value when they are disjoint.
func overlap(a0, a1, b0, b1 int) int {
	return min(a1, b1) - max(a0, b0)
}
