package locus

import (
	"math"

	"github.com/katalvlaran/planar/vec"
)

// Meet lifts Intersect to lists: the Cartesian product of pairwise
// intersections, flattened. Commutative and associative over multisets of
// points modulo Epsilon.
//
// Complexity: O(|a|·|b|) Intersect calls.
func Meet(a, b []Locus) []Locus {
	out := make([]Locus, 0, len(a)*len(b))
	for _, g0 := range a {
		for _, g1 := range b {
			out = append(out, Intersect(g0, g1)...)
		}
	}

	return out
}

// Intersect returns the exact intersection of two loci as a list of
// lower-dimensional loci. Dispatch order mirrors the dimensional strata:
//
//  1. Point vs anything: membership test through Dist.
//  2. All vs anything: identity. Half vs 1D/2D: pass-through (halfplanes
//     filter candidates, they do not reduce dimension; see package doc).
//  3. The three 1D×1D cases: line-line via Cramer's rule, circle-line via
//     the projected discriminant, circle-circle via the radical line.
func Intersect(g0, g1 Locus) []Locus {
	// 0D first: a point survives iff it lies on the other locus.
	if p, ok := g0.(Point); ok {
		return pointOn(p, g1)
	}
	if p, ok := g1.(Point); ok {
		return pointOn(p, g0)
	}

	// 2D next: the plane is the meet identity, halfplanes pass through.
	if _, ok := g0.(All); ok {
		return []Locus{g1}
	}
	if _, ok := g1.(All); ok {
		return []Locus{g0}
	}
	if _, ok := g0.(Half); ok {
		return []Locus{g1}
	}
	if _, ok := g1.(Half); ok {
		return []Locus{g0}
	}

	// Both operands are 1D from here on.
	switch a := g0.(type) {
	case Line:
		switch b := g1.(type) {
		case Line:
			return lineLine(a, b)
		case Circle:
			return circleLine(b, a)
		}
	case Circle:
		switch b := g1.(type) {
		case Line:
			return circleLine(a, b)
		case Circle:
			return circleCircle(a, b)
		}
	}

	return nil
}

// pointOn keeps p iff it lies on g within Epsilon.
func pointOn(p Point, g Locus) []Locus {
	if vec.AboutZero(g.Dist(p.P)) {
		return []Locus{p}
	}

	return nil
}

// lineLine solves o0 + t0·v0 = o1 + t1·v1 by Cramer's rule on the 2×2
// system in (t0, t1). An exactly zero determinant is treated as parallel,
// coincident lines included: coincidence is not reported as a 1D result.
func lineLine(a, b Line) []Locus {
	rhs := b.O.Sub(a.O)

	// Determinant of the column matrix [v0 | -v1].
	det := vec.Vector{X: a.V.X, Y: -b.V.X}.Cross(vec.Vector{X: a.V.Y, Y: -b.V.Y})
	if det == 0 {
		// Parallel (or coincident) directions: no 0D meet.
		return nil
	}

	t0 := vec.Vector{X: rhs.X, Y: -b.V.X}.Cross(vec.Vector{X: rhs.Y, Y: -b.V.Y}) / det
	t1 := vec.Vector{X: a.V.X, Y: rhs.X}.Cross(vec.Vector{X: a.V.Y, Y: rhs.Y}) / det
	if t0 < a.L || t1 < b.L {
		// The crossing lies behind one of the ray origins.
		return nil
	}

	return []Locus{Point{along(a.O, a.V, t0)}}
}

// circleLine intersects by projecting the line onto the centre offset:
// Δ = (v·(o-c))² - (|o-c|² - r²) decides between zero, one (tangent,
// Δ about zero) and two crossings, each kept only at parameters t ≥ L.
func circleLine(c Circle, l Line) []Locus {
	oc := l.O.Sub(c.C)
	voc := l.V.Dot(oc)
	delta := voc*voc - (oc.Dot(oc) - c.R*c.R)

	var ts []vec.Number
	switch {
	case delta < 0:
		return nil
	case vec.AboutZero(delta):
		ts = []vec.Number{-voc}
	default:
		sqrtDelta := math.Sqrt(delta)
		ts = []vec.Number{-voc + sqrtDelta, -voc - sqrtDelta}
	}

	out := make([]Locus, 0, len(ts))
	for _, t := range ts {
		if t >= l.L {
			out = append(out, Point{along(l.O, l.V, t)})
		}
	}

	return out
}

// circleCircle intersects along the centre line: with d = |c1-c0| the
// circles are disjoint when d < |r0-r1| (containment) or d > r0+r1,
// tangent at the single radical point when d is about r0+r1, and otherwise
// cross at the two points offset ±h perpendicular to the centre line.
func circleCircle(a, b Circle) []Locus {
	dir, d := b.C.Sub(a.C).UnitMag()
	if d < math.Abs(a.R-b.R) {
		// One circle contains the other.
		return nil
	}
	if d > a.R+b.R {
		// The circles are separated.
		return nil
	}

	off := (a.R*a.R - b.R*b.R + d*d) / (2 * d)
	base := a.C.Add(dir.Scale(off))
	if vec.AboutEq(d, a.R+b.R) {
		// External tangency: a single touch point.
		return []Locus{Point{base}}
	}

	h := math.Sqrt(a.R*a.R - off*off)
	hv := dir.Perp().Scale(h)

	return []Locus{Point{base.Add(hv)}, Point{base.Sub(hv)}}
}
