package locus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/vec"
)

// ErrDegenerate is returned by constructors when the requested locus has no
// well-defined shape (coincident line anchors, non-positive circle radius).
var ErrDegenerate = errors.New("locus: degenerate construction")

// Locus is the closed sum of planar point sets the solver can intersect.
// The five variants (Point, Line, Circle, All, Half) are exhaustive; code
// dispatching on a Locus may type-switch without a default case.
type Locus interface {
	// Dist returns the distance from p to the locus: Euclidean for points
	// and lines, signed for circles (negative inside), zero anywhere inside
	// the plane or a halfplane.
	Dist(p vec.Vector) vec.Number

	// Choose picks the canonical representative position on the locus, used
	// when a point's remaining degrees of freedom are genuinely free.
	Choose() vec.Vector

	// sealed restricts implementations to this package.
	sealed()
}

// Point is the 0D locus: a single position.
type Point struct {
	P vec.Vector
}

// Line is a 1D parametric line O + t·V with unit direction V and lower
// parameter bound L ∈ {0, -∞}: L = 0 is a ray from O, L = -∞ the full
// infinite line. No upper bound is represented.
type Line struct {
	O, V vec.Vector
	L    vec.Number
}

// Circle is the 1D locus of points at distance R > 0 from C.
type Circle struct {
	C vec.Vector
	R vec.Number
}

// All is the 2D locus covering the whole plane.
type All struct{}

// Half is the closed halfplane of points p with (p - O)·N ≥ 0. N carries
// orientation only and need not be unit length.
type Half struct {
	O, N vec.Vector
}

func (Point) sealed()  {}
func (Line) sealed()   {}
func (Circle) sealed() {}
func (All) sealed()    {}
func (Half) sealed()   {}

// NewLine builds a Line through o with direction v, normalising v to unit
// length. Returns ErrDegenerate when v is about zero.
func NewLine(o, v vec.Vector, l vec.Number) (Line, error) {
	u, d := v.UnitMag()
	if vec.AboutZero(d) {
		return Line{}, fmt.Errorf("%w: zero direction through %v", ErrDegenerate, o)
	}

	return Line{O: o, V: u, L: l}, nil
}

// LineThrough builds the Line anchored at p0 pointing towards p1.
// Returns ErrDegenerate when the anchors coincide (about zero apart).
func LineThrough(p0, p1 vec.Vector, l vec.Number) (Line, error) {
	ln, err := NewLine(p0, p1.Sub(p0), l)
	if err != nil {
		return Line{}, fmt.Errorf("%w: coincident anchors %v, %v", ErrDegenerate, p0, p1)
	}

	return ln, nil
}

// NewCircle builds a Circle, rejecting non-positive (or about-zero) radii
// with ErrDegenerate.
func NewCircle(c vec.Vector, r vec.Number) (Circle, error) {
	if r < 0 || vec.AboutZero(r) {
		return Circle{}, fmt.Errorf("%w: circle radius %v", ErrDegenerate, r)
	}

	return Circle{C: c, R: r}, nil
}

// along returns the position at parameter t on the line o + t·v.
func along(o, v vec.Vector, t vec.Number) vec.Vector {
	return o.Add(v.Scale(t))
}

// closest returns the nearest point to p on the line, clamping the
// parameter to the lower bound so a ray never extends behind its origin.
func (g Line) closest(p vec.Vector) vec.Vector {
	t := p.Sub(g.O).Dot(g.V)
	if t < g.L {
		t = g.L
	}

	return along(g.O, g.V, t)
}

// Dist implementations, one per stratum.

func (g Point) Dist(p vec.Vector) vec.Number { return p.Dist(g.P) }

func (g Line) Dist(p vec.Vector) vec.Number { return p.Dist(g.closest(p)) }

// Dist for a circle is signed: negative inside, zero on the rim.
func (g Circle) Dist(p vec.Vector) vec.Number { return p.Dist(g.C) - g.R }

func (All) Dist(vec.Vector) vec.Number { return 0 }

// Dist for a halfplane is zero inside and the (scaled) violation depth
// outside; only its about-zero test is meaningful when N is not unit.
func (g Half) Dist(p vec.Vector) vec.Number {
	return max(0, -p.Sub(g.O).Dot(g.N))
}

// Choose implementations: the canonical representative per stratum.

func (g Point) Choose() vec.Vector { return g.P }

// Choose on a line steps one unit past the effective origin.
func (g Line) Choose() vec.Vector {
	return along(g.O, g.V, max(g.L, 0)+1)
}

// Choose on a circle lands on the +x rim point.
func (g Circle) Choose() vec.Vector {
	return g.C.Add(vec.PosX.Scale(g.R))
}

func (All) Choose() vec.Vector { return vec.Zero }

func (g Half) Choose() vec.Vector { return g.O.Add(g.N) }

// Dist returns the distance from p to g; see Locus.Dist.
func Dist(p vec.Vector, g Locus) vec.Number { return g.Dist(p) }

// Choose returns the canonical representative of g; see Locus.Choose.
func Choose(g Locus) vec.Vector { return g.Choose() }

// Representatives returns a short deterministic candidate list of positions
// on g, the first entry always equal to Choose(g). Only loci with free
// degrees of freedom offer more than one entry: a circle offers its four
// axis rim points and an infinite line a step in each direction, so a
// backtracking caller can escape a representative that happens to be
// degenerate for the surrounding figure.
func Representatives(g Locus) []vec.Vector {
	switch t := g.(type) {
	case Point:
		return []vec.Vector{t.P}
	case Line:
		base := max(t.L, 0) + 1
		if t.L == 0 {
			// A ray only extends forward.
			return []vec.Vector{along(t.O, t.V, base)}
		}

		return []vec.Vector{along(t.O, t.V, base), along(t.O, t.V, -base)}
	case Circle:
		return []vec.Vector{
			t.C.Add(vec.PosX.Scale(t.R)),
			t.C.Add(vec.PosY.Scale(t.R)),
			t.C.Add(vec.NegX.Scale(t.R)),
			t.C.Add(vec.NegY.Scale(t.R)),
		}
	case All:
		return []vec.Vector{vec.Zero}
	case Half:
		return []vec.Vector{t.O.Add(t.N)}
	}

	return nil
}
