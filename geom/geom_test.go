package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/blockgroup/geom"
)

func TestSideAdjacent(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Rect
		want bool
	}{
		{"shared vertical side", geom.Square(geom.Pt(0, 0), 1), geom.Square(geom.Pt(1, 0), 1), true},
		{"shared horizontal side", geom.Square(geom.Pt(0, 0), 1), geom.Square(geom.Pt(0, 1), 1), true},
		{"corner only", geom.Square(geom.Pt(0, 0), 1), geom.Square(geom.Pt(1, 1), 1), false},
		{"corner only, reversed", geom.Square(geom.Pt(1, 1), 1), geom.Square(geom.Pt(0, 0), 1), false},
		{"partial side overlap", geom.Square(geom.Pt(1, 1), 2), geom.Square(geom.Pt(3, 2), 2), true},
		{"big next to small", geom.Square(geom.Pt(0, 0), 10), geom.Square(geom.Pt(10, 9), 1), true},
		{"big corner to small", geom.Square(geom.Pt(0, 0), 10), geom.Square(geom.Pt(10, 10), 1), false},
		{"one cell gap", geom.Square(geom.Pt(0, 0), 6), geom.Square(geom.Pt(7, 0), 6), false},
		{"overlapping", geom.Square(geom.Pt(0, 0), 2), geom.Square(geom.Pt(1, 1), 2), false},
		{"negative coordinates", geom.Square(geom.Pt(-2, -2), 2), geom.Square(geom.Pt(0, -1), 1), true},
		{"empty rect", geom.Rect{X: 1, Y: 0}, geom.Square(geom.Pt(0, 0), 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SideAdjacent(tc.a, tc.b))
			assert.Equal(t, tc.want, geom.SideAdjacent(tc.b, tc.a), "must be symmetric")
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := geom.Square(geom.Pt(0, 0), 1)
	b := geom.Square(geom.Pt(3, 2), 2)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 5, H: 4}, a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))

	// Empty operands do not stretch the result towards the origin.
	assert.Equal(t, b, geom.Rect{}.Union(b))
	assert.Equal(t, b, b.Union(geom.Rect{}))
	assert.True(t, geom.Rect{}.Union(geom.Rect{}).Empty())
}

func TestRect_ContainsOverlaps(t *testing.T) {
	r := geom.Square(geom.Pt(-1, -1), 3)
	assert.True(t, r.Contains(geom.Pt(-1, -1)))
	assert.True(t, r.Contains(geom.Pt(1, 1)))
	assert.False(t, r.Contains(geom.Pt(2, 1)), "max edge is exclusive")
	assert.Equal(t, 9, r.Area())
	assert.Equal(t, geom.Pt(2, 2), r.Max())

	assert.True(t, r.Overlaps(geom.Square(geom.Pt(1, 1), 5)))
	assert.False(t, r.Overlaps(geom.Square(geom.Pt(2, -1), 1)))
	assert.False(t, r.Overlaps(geom.Rect{X: 0, Y: 0}))
}

func TestPoint(t *testing.T) {
	p := geom.Pt(3, -4)
	assert.Equal(t, geom.Pt(2, -3), p.Add(-1, 1))
	assert.Equal(t, "(3,-4)", p.String())
	assert.True(t, geom.Pt(9, 0).Less(geom.Pt(0, 1)), "row-major order compares Y first")
	assert.True(t, geom.Pt(0, 1).Less(geom.Pt(1, 1)))
	assert.False(t, p.Less(p))

	// Structural equality makes Point usable as a map key.
	m := map[geom.Point]int{geom.Pt(-1, -1): 1}
	assert.Equal(t, 1, m[geom.Pt(-1, -1)])
}
