package figure

import (
	"fmt"

	"github.com/soniakeys/unit"

	"github.com/katalvlaran/planar/locus"
	"github.com/katalvlaran/planar/vec"
)

// TargetedOp is a directed constraint: all participating points but one are
// bound to known PIDs, and evaluating Geo against their positions yields
// the locus the remaining target point must lie on.
//
// Ops are plain data (ids plus a measure); the solver never calls back into
// the constraint that produced them. Geo returns locus.ErrDegenerate when
// the known positions do not admit a well-defined locus, for example a
// zero-length baseline; the solver treats that as a numerical dead end and
// backtracks.
type TargetedOp interface {
	// Discretizing reports whether the op's locus is 1D and therefore cuts
	// one degree of freedom off the target. Chirality halfplanes are the
	// only non-discretizing ops.
	Discretizing() bool

	// Geo evaluates the target's locus against pos, indexed by PID. Only
	// the op's known ids are read.
	Geo(pos []vec.Vector) ([]locus.Locus, error)

	// sealed restricts implementations to this package.
	sealed()
}

// DistanceOp places the target on the circle of radius Measure around the
// known point.
type DistanceOp struct {
	Known   PID
	Measure vec.Number
}

// AngleEndOp places the target on one of the two rays leaving the vertex at
// ±Measure from the direction towards Other.
type AngleEndOp struct {
	Vertex  PID
	Other   PID
	Measure unit.Angle
}

// AngleVertexOp places the target at the vertex of an inscribed angle of
// Measure over the chord P0-P1: one circle when Measure is right (cos ≈ 0),
// otherwise the two arcs' circles offset either side of the chord.
type AngleVertexOp struct {
	P0, P1  PID
	Measure unit.Angle
}

// ParallelOp places the target on the line through Origin parallel to the
// known line P0-P1.
type ParallelOp struct {
	P0, P1 PID
	Origin PID
}

// PerpendicularOp places the target on the line through Origin
// perpendicular to the known line P0-P1.
type PerpendicularOp struct {
	P0, P1 PID
	Origin PID
}

// CollinearOp places the target on the infinite line through P0 and P1.
type CollinearOp struct {
	P0, P1 PID
}

// ChiralityOp constrains the target to the halfplane whose side of the
// directed edge P3→P4 matches (Pro) or mirrors (Anti) the signed turn of
// the fully-known reference triple P0, P1, P2.
type ChiralityOp struct {
	Pol        Polarity
	P0, P1, P2 PID // reference triple, all known
	P3, P4     PID // known pair of the target's triple, cyclic order
}

func (DistanceOp) sealed()      {}
func (AngleEndOp) sealed()      {}
func (AngleVertexOp) sealed()   {}
func (ParallelOp) sealed()      {}
func (PerpendicularOp) sealed() {}
func (CollinearOp) sealed()     {}
func (ChiralityOp) sealed()     {}

// Discretizing: every 1D-locus op cuts a degree of freedom; only the
// chirality halfplane does not.
func (DistanceOp) Discretizing() bool      { return true }
func (AngleEndOp) Discretizing() bool      { return true }
func (AngleVertexOp) Discretizing() bool   { return true }
func (ParallelOp) Discretizing() bool      { return true }
func (PerpendicularOp) Discretizing() bool { return true }
func (CollinearOp) Discretizing() bool     { return true }
func (ChiralityOp) Discretizing() bool     { return false }

// Geo for DistanceOp: the circle around the known anchor. A zero or
// negative measure is rejected as degenerate.
func (op DistanceOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	c, err := locus.NewCircle(pos[op.Known], op.Measure)
	if err != nil {
		return nil, err
	}

	return []locus.Locus{c}, nil
}

// Geo for AngleEndOp: the two rays from the vertex at ±Measure off the
// baseline towards Other. Both have lower bound 0: the target cannot sit
// behind the vertex.
func (op AngleEndOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	base, d := pos[op.Other].Sub(pos[op.Vertex]).UnitMag()
	if vec.AboutZero(d) {
		return nil, fmt.Errorf("%w: angle baseline %d-%d has zero length",
			locus.ErrDegenerate, op.Vertex, op.Other)
	}

	return []locus.Locus{
		locus.Line{O: pos[op.Vertex], V: base.Rot(op.Measure), L: 0},
		locus.Line{O: pos[op.Vertex], V: base.Rot(-op.Measure), L: 0},
	}, nil
}

// Geo for AngleVertexOp: inscribed-angle circles of radius d/(2 sin M)
// over the chord P0-P1. When cos M is about zero the two arc centres merge
// onto the chord midpoint and a single circle is emitted.
func (op AngleVertexOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	v, d := pos[op.P1].Sub(pos[op.P0]).UnitMag()
	if vec.AboutZero(d) {
		return nil, fmt.Errorf("%w: inscribed chord %d-%d has zero length",
			locus.ErrDegenerate, op.P0, op.P1)
	}
	s := op.Measure.Sin()
	if vec.AboutZero(s) {
		return nil, fmt.Errorf("%w: inscribed angle %v has no finite arc",
			locus.ErrDegenerate, op.Measure.Rad())
	}

	r := d / (2 * s)
	mid := pos[op.P0].Add(pos[op.P1]).DivN(2)
	a := r * op.Measure.Cos()
	if vec.AboutZero(a) {
		c, err := locus.NewCircle(mid, r)
		if err != nil {
			return nil, err
		}

		return []locus.Locus{c}, nil
	}

	va := v.Perp().Scale(a)
	c0, err := locus.NewCircle(mid.Add(va), r)
	if err != nil {
		return nil, err
	}
	c1, err := locus.NewCircle(mid.Sub(va), r)
	if err != nil {
		return nil, err
	}

	return []locus.Locus{c0, c1}, nil
}

// baseline returns the unit direction from pos[p0] to pos[p1], or
// ErrDegenerate when the two coincide.
func baseline(pos []vec.Vector, p0, p1 PID) (vec.Vector, error) {
	dir, d := pos[p1].Sub(pos[p0]).UnitMag()
	if vec.AboutZero(d) {
		return vec.Vector{}, fmt.Errorf("%w: baseline %d-%d has zero length",
			locus.ErrDegenerate, p0, p1)
	}

	return dir, nil
}

// Geo for ParallelOp: the infinite line through Origin sharing the known
// line's direction.
func (op ParallelOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	dir, err := baseline(pos, op.P0, op.P1)
	if err != nil {
		return nil, err
	}

	return []locus.Locus{locus.Line{O: pos[op.Origin], V: dir, L: vec.NegInf}}, nil
}

// Geo for PerpendicularOp: as ParallelOp with the direction rotated +90°.
func (op PerpendicularOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	dir, err := baseline(pos, op.P0, op.P1)
	if err != nil {
		return nil, err
	}

	return []locus.Locus{locus.Line{O: pos[op.Origin], V: dir.Perp(), L: vec.NegInf}}, nil
}

// Geo for CollinearOp: the infinite line through the two known points.
func (op CollinearOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	ln, err := locus.LineThrough(pos[op.P0], pos[op.P1], vec.NegInf)
	if err != nil {
		return nil, err
	}

	return []locus.Locus{ln}, nil
}

// Geo for ChiralityOp: measure the reference triple's signed turn
// σ = sign((p1-p0) × (p2-p1)), orient the perpendicular of the unit edge
// p3→p4 by σ (flipped for Anti), and anchor the halfplane at pos[P4]. A
// collinear reference (σ = 0) degrades to the always-satisfied halfplane.
func (op ChiralityOp) Geo(pos []vec.Vector) ([]locus.Locus, error) {
	turn := pos[op.P1].Sub(pos[op.P0]).Cross(pos[op.P2].Sub(pos[op.P1]))
	base, d := pos[op.P4].Sub(pos[op.P3]).UnitMag()
	if vec.AboutZero(d) {
		return nil, fmt.Errorf("%w: chirality edge %d-%d has zero length",
			locus.ErrDegenerate, op.P3, op.P4)
	}

	n := base.Perp().Scale(vec.Signum(turn))
	if op.Pol == Anti {
		n = n.Neg()
	}

	return []locus.Locus{locus.Half{O: pos[op.P4], N: n}}, nil
}
