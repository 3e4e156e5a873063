package builder

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/katalvlaran/planar/figure"
	"github.com/katalvlaran/planar/vec"
)

// Constructor applies one deterministic shape recipe to a figure.
// Constructors MUST validate parameters before the first mutation and
// return sentinel errors; a failed constructor may leave points it already
// allocated behind, which is harmless: untouched points simply fail
// ordering later.
type Constructor func(f *figure.Figure) error

// BuildFigure creates a fresh figure and applies all constructors in
// order. Any constructor error is wrapped with "BuildFigure:" context and
// returned immediately.
func BuildFigure(cons ...Constructor) (*figure.Figure, error) {
	f := figure.New()
	for _, c := range cons {
		if err := c(f); err != nil {
			return nil, fmt.Errorf("BuildFigure: %w", err)
		}
	}

	return f, nil
}

// Segment appends two points constrained to lie length apart.
// Allocation order: the two endpoints.
func Segment(length vec.Number) Constructor {
	return func(f *figure.Figure) error {
		if length <= 0 {
			return fmt.Errorf("%w: segment length %v", ErrBadLength, length)
		}
		a, b := f.NewPoint(), f.NewPoint()
		_, err := f.AddConstraint(figure.Distance{Measure: length}, a, b)

		return err
	}
}

// Triangle appends three points with pairwise distances ab, bc and ca.
// The sides must satisfy the (strict) triangle inequality.
// Allocation order: the shared corner of ab/ca first, then the other two.
func Triangle(ab, bc, ca vec.Number) Constructor {
	return func(f *figure.Figure) error {
		for _, s := range []vec.Number{ab, bc, ca} {
			if s <= 0 {
				return fmt.Errorf("%w: triangle side %v", ErrBadLength, s)
			}
		}
		if ab+bc <= ca || bc+ca <= ab || ca+ab <= bc {
			return fmt.Errorf("%w: %v, %v, %v", ErrImpossibleTriangle, ab, bc, ca)
		}

		a, b, c := f.NewPoint(), f.NewPoint(), f.NewPoint()
		for _, d := range []struct {
			m      vec.Number
			p0, p1 figure.PID
		}{{ab, a, b}, {bc, b, c}, {ca, c, a}} {
			if _, err := f.AddConstraint(figure.Distance{Measure: d.m}, d.p0, d.p1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Rectangle appends four corners a, b, c, d (in that allocation order)
// with sides w = |ab| = |cd| and h = |bc| = |da|, and perpendicularity
// along the boundary: ab ⊥ bc and bc ⊥ cd.
func Rectangle(w, h vec.Number) Constructor {
	return func(f *figure.Figure) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%w: rectangle %v × %v", ErrBadLength, w, h)
		}

		a, b := f.NewPoint(), f.NewPoint()
		c, d := f.NewPoint(), f.NewPoint()
		steps := []struct {
			con figure.Constraint
			pts []figure.PID
		}{
			{figure.Distance{Measure: w}, []figure.PID{a, b}},
			{figure.Distance{Measure: h}, []figure.PID{b, c}},
			{figure.Distance{Measure: w}, []figure.PID{c, d}},
			{figure.Distance{Measure: h}, []figure.PID{d, a}},
			{figure.Perpendicular{}, []figure.PID{a, b, b, c}},
			{figure.Perpendicular{}, []figure.PID{b, c, c, d}},
		}
		for _, s := range steps {
			if _, err := f.AddConstraint(s.con, s.pts...); err != nil {
				return err
			}
		}

		return nil
	}
}

// Parallelogram appends four corners a, b, c, d (in that allocation order)
// with |ab| = w, |bc| = h, ab ∥ dc and ad ∥ bc. The interior angle is left
// free on purpose; the solver picks a representative for it.
func Parallelogram(w, h vec.Number) Constructor {
	return func(f *figure.Figure) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%w: parallelogram %v × %v", ErrBadLength, w, h)
		}

		a, b := f.NewPoint(), f.NewPoint()
		c, d := f.NewPoint(), f.NewPoint()
		steps := []struct {
			con figure.Constraint
			pts []figure.PID
		}{
			{figure.Distance{Measure: w}, []figure.PID{a, b}},
			{figure.Distance{Measure: h}, []figure.PID{b, c}},
			{figure.Parallel{}, []figure.PID{a, b, d, c}},
			{figure.Parallel{}, []figure.PID{a, d, b, c}},
		}
		for _, s := range steps {
			if _, err := f.AddConstraint(s.con, s.pts...); err != nil {
				return err
			}
		}

		return nil
	}
}

// RegularPolygon appends n ≥ 3 points p0..p(n-1) in allocation order, with
// every side length equal to side and the interior angle (n-2)·π/n
// declared at every vertex over its two neighbours.
func RegularPolygon(n int, side vec.Number) Constructor {
	return func(f *figure.Figure) error {
		if n < 3 {
			return fmt.Errorf("%w: n = %d", ErrTooFewSides, n)
		}
		if side <= 0 {
			return fmt.Errorf("%w: polygon side %v", ErrBadLength, side)
		}

		pts := make([]figure.PID, n)
		for i := range pts {
			pts[i] = f.NewPoint()
		}
		interior := unit.Angle(float64(n-2) * math.Pi / float64(n))
		for i := 0; i < n; i++ {
			next := pts[(i+1)%n]
			if _, err := f.AddConstraint(figure.Distance{Measure: side}, pts[i], next); err != nil {
				return err
			}
			prev := pts[(i+n-1)%n]
			if _, err := f.AddConstraint(figure.Angle{Measure: interior}, prev, pts[i], next); err != nil {
				return err
			}
		}

		return nil
	}
}
