package locus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/locus"
	"github.com/katalvlaran/planar/vec"
)

// points extracts the 0D results of a meet, failing on anything wider.
func points(t *testing.T, gs []locus.Locus) []vec.Vector {
	t.Helper()
	out := make([]vec.Vector, 0, len(gs))
	for _, g := range gs {
		p, ok := g.(locus.Point)
		require.True(t, ok, "expected 0D result, got %T", g)
		out = append(out, p.P)
	}

	return out
}

// sameMultiset compares two point sets modulo Epsilon and order.
func sameMultiset(a, b []vec.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, p := range a {
		for i, q := range b {
			if !used[i] && p.AboutEq(q) {
				used[i] = true
				continue outer
			}
		}

		return false
	}

	return true
}

// TestIntersect_PointMembership: a point meets any locus iff it lies on it.
func TestIntersect_PointMembership(t *testing.T) {
	on := locus.Point{P: vec.Vector{X: 2, Y: 0}}
	off := locus.Point{P: vec.Vector{X: 2, Y: 0.5}}
	circ := locus.Circle{C: vec.Zero, R: 2}

	assert.Equal(t, []locus.Locus{on}, locus.Intersect(on, circ))
	assert.Empty(t, locus.Intersect(off, circ))
	// Symmetric dispatch.
	assert.Equal(t, []locus.Locus{on}, locus.Intersect(circ, on))

	// Point on line, ray, halfplane and plane.
	line := locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf}
	assert.NotEmpty(t, locus.Intersect(on, line))
	ray := locus.Line{O: vec.Vector{X: 3, Y: 0}, V: vec.PosX, L: 0}
	assert.Empty(t, locus.Intersect(on, ray), "behind the ray origin")
	assert.NotEmpty(t, locus.Intersect(on, locus.All{}))
	assert.NotEmpty(t, locus.Intersect(on, locus.Half{O: vec.Zero, N: vec.PosX}))
	assert.Empty(t, locus.Intersect(on, locus.Half{O: vec.Zero, N: vec.NegX}))
}

// TestIntersect_LineLine covers crossing, parallel, coincident, and
// ray-bound rejection.
func TestIntersect_LineLine(t *testing.T) {
	xAxis := locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf}
	yAxis := locus.Line{O: vec.Zero, V: vec.PosY, L: vec.NegInf}

	got := points(t, locus.Intersect(xAxis, yAxis))
	require.Len(t, got, 1)
	assert.True(t, got[0].AboutEq(vec.Zero))

	// Oblique crossing away from the origins.
	l0 := locus.Line{O: vec.Vector{X: 0, Y: 1}, V: vec.PosX, L: vec.NegInf}
	l1, err := locus.LineThrough(vec.Vector{X: 2, Y: -1}, vec.Vector{X: 2, Y: 3}, vec.NegInf)
	require.NoError(t, err)
	got = points(t, locus.Intersect(l0, l1))
	require.Len(t, got, 1)
	assert.True(t, got[0].AboutEq(vec.Vector{X: 2, Y: 1}))

	// Parallel distinct lines: empty.
	shifted := locus.Line{O: vec.Vector{X: 0, Y: 1}, V: vec.PosX, L: vec.NegInf}
	assert.Empty(t, locus.Intersect(xAxis, shifted))

	// Coincident lines: also empty, coincidence is not a 0D meet.
	again := locus.Line{O: vec.Vector{X: 5, Y: 0}, V: vec.PosX, L: vec.NegInf}
	assert.Empty(t, locus.Intersect(xAxis, again))

	// Rays: the crossing must sit at t ≥ 0 on both.
	up := locus.Line{O: vec.Vector{X: 2, Y: -1}, V: vec.PosY, L: 0}
	assert.Len(t, locus.Intersect(xAxis, up), 1)
	down := locus.Line{O: vec.Vector{X: 2, Y: -1}, V: vec.NegY, L: 0}
	assert.Empty(t, locus.Intersect(xAxis, down))
}

// TestIntersect_CircleLine covers the three discriminant classes and the
// ray parameter bound.
func TestIntersect_CircleLine(t *testing.T) {
	circ := locus.Circle{C: vec.Zero, R: 1}

	// Secant: two crossings.
	got := points(t, locus.Intersect(circ, locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf}))
	assert.True(t, sameMultiset(got, []vec.Vector{{X: 1, Y: 0}, {X: -1, Y: 0}}))

	// Tangent: exactly one, at the touch point.
	got = points(t, locus.Intersect(circ, locus.Line{O: vec.Vector{X: -2, Y: 1}, V: vec.PosX, L: vec.NegInf}))
	require.Len(t, got, 1)
	assert.True(t, got[0].AboutEq(vec.Vector{X: 0, Y: 1}))

	// Miss: empty.
	assert.Empty(t, locus.Intersect(circ, locus.Line{O: vec.Vector{X: 0, Y: 2}, V: vec.PosX, L: vec.NegInf}))

	// A ray starting beyond the circle keeps no crossing.
	assert.Empty(t, locus.Intersect(circ, locus.Line{O: vec.Vector{X: 2, Y: 0}, V: vec.PosX, L: 0}))
	// A ray starting inside keeps exactly the forward one.
	got = points(t, locus.Intersect(circ, locus.Line{O: vec.Zero, V: vec.PosX, L: 0}))
	require.Len(t, got, 1)
	assert.True(t, got[0].AboutEq(vec.Vector{X: 1, Y: 0}))
}

// TestIntersect_CircleCircle covers separation, containment, tangency and
// the generic two-point crossing.
func TestIntersect_CircleCircle(t *testing.T) {
	a := locus.Circle{C: vec.Zero, R: 2}

	// Separated.
	assert.Empty(t, locus.Intersect(a, locus.Circle{C: vec.Vector{X: 10, Y: 0}, R: 1}))
	// Contained.
	assert.Empty(t, locus.Intersect(a, locus.Circle{C: vec.Vector{X: 0.5, Y: 0}, R: 0.5}))
	// Externally tangent: the single touch point.
	got := points(t, locus.Intersect(a, locus.Circle{C: vec.Vector{X: 3, Y: 0}, R: 1}))
	require.Len(t, got, 1)
	assert.True(t, got[0].AboutEq(vec.Vector{X: 2, Y: 0}))

	// Generic crossing: unit circles at distance 1 meet at (0.5, ±√3/2).
	b := locus.Circle{C: vec.Vector{X: 1, Y: 0}, R: 1}
	u := locus.Circle{C: vec.Zero, R: 1}
	got = points(t, locus.Intersect(u, b))
	h := math.Sqrt(3) / 2
	assert.True(t, sameMultiset(got, []vec.Vector{{X: 0.5, Y: h}, {X: 0.5, Y: -h}}))
}

// TestIntersect_TwoD: the plane is the identity, halfplanes pass through
// anything wider than a point.
func TestIntersect_TwoD(t *testing.T) {
	circ := locus.Circle{C: vec.Zero, R: 1}
	assert.Equal(t, []locus.Locus{circ}, locus.Intersect(locus.All{}, circ))
	assert.Equal(t, []locus.Locus{circ}, locus.Intersect(circ, locus.All{}))

	half := locus.Half{O: vec.Zero, N: vec.PosY}
	assert.Equal(t, []locus.Locus{circ}, locus.Intersect(half, circ))
	assert.Equal(t, []locus.Locus{circ}, locus.Intersect(circ, half))
}

// TestMeet_CartesianProduct: meet flattens pairwise intersections.
func TestMeet_CartesianProduct(t *testing.T) {
	u := locus.Circle{C: vec.Zero, R: 1}
	b := locus.Circle{C: vec.Vector{X: 1, Y: 0}, R: 1}
	xAxis := locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf}

	// {u} ⋈ {b, x-axis}: two crossings plus two axis points.
	got := points(t, locus.Meet([]locus.Locus{u}, []locus.Locus{b, xAxis}))
	assert.Len(t, got, 4)
}

// TestMeet_Commutative: meet results agree as point multisets either way
// round, across all 1D pairings.
func TestMeet_Commutative(t *testing.T) {
	cases := [][2]locus.Locus{
		{locus.Circle{C: vec.Zero, R: 1}, locus.Circle{C: vec.Vector{X: 1, Y: 0}, R: 1}},
		{locus.Circle{C: vec.Zero, R: 1}, locus.Line{O: vec.Vector{X: 0, Y: 0.5}, V: vec.PosX, L: vec.NegInf}},
		{
			locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf},
			locus.Line{O: vec.Vector{X: 1, Y: -1}, V: vec.PosY, L: vec.NegInf},
		},
	}
	for _, c := range cases {
		ab := points(t, locus.Meet([]locus.Locus{c[0]}, []locus.Locus{c[1]}))
		ba := points(t, locus.Meet([]locus.Locus{c[1]}, []locus.Locus{c[0]}))
		assert.True(t, sameMultiset(ab, ba), "meet must commute for %T × %T", c[0], c[1])
	}
}
