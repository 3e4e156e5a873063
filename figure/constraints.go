package figure

import (
	"github.com/soniakeys/unit"

	"github.com/katalvlaran/planar/vec"
)

// Polarity is the relative sign of an angular turn, used by Chirality to
// tie mirror-image branches together: triples with equal polarity must turn
// the same way, opposite polarities the opposite way.
type Polarity uint8

const (
	// Pro keeps the reference triple's turn direction.
	Pro Polarity = iota
	// Anti reverses it.
	Anti
)

// String implements fmt.Stringer.
func (p Polarity) String() string {
	if p == Anti {
		return "anti"
	}

	return "pro"
}

// Target pairs a still-unknown point with the directed operation that
// produces a locus for it once the op's known points are placed.
type Target struct {
	Point PID
	Op    TargetedOp
}

// Constraint is the closed sum of user-facing constraint declarations.
// Each variant implements its own targeting dispatch: given its point tuple
// and a knowledge mask parallel to it, produce the targets that follow from
// the currently known subset. Unmatched knowledge patterns, and tuples of
// the wrong arity for the variant, produce nothing.
type Constraint interface {
	// Targets translates this symmetric declaration into directed
	// (target, op) pairs under the given knowledge mask.
	Targets(pts []PID, known []bool) []Target

	// sealed restricts implementations to this package.
	sealed()
}

// Distance constrains two points to lie Measure apart.
type Distance struct {
	Measure vec.Number
}

// Angle constrains [a, vertex, b] so the rays vertex→a and vertex→b
// enclose Measure.
type Angle struct {
	Measure unit.Angle
}

// Parallel constrains k lines, read as consecutive point pairs, to share a
// direction.
type Parallel struct{}

// Perpendicular constrains k lines, read as consecutive point pairs, to
// alternate direction: each line is perpendicular to the one before it.
type Perpendicular struct{}

// Collinear constrains all its points (≥ 2, unordered) onto one line.
type Collinear struct{}

// Chirality constrains k point triples, one polarity each, to consistent
// turn directions: equal polarities turn alike, opposite ones mirror.
type Chirality struct {
	Polarities []Polarity
}

func (Distance) sealed()      {}
func (Angle) sealed()         {}
func (Parallel) sealed()      {}
func (Perpendicular) sealed() {}
func (Collinear) sealed()     {}
func (Chirality) sealed()     {}

// Targets for Distance: whichever endpoint is known anchors a circle of
// radius Measure for the other.
func (c Distance) Targets(pts []PID, known []bool) []Target {
	if len(pts) != 2 || len(known) != 2 {
		return nil
	}
	switch {
	case known[0] && !known[1]:
		return []Target{{Point: pts[1], Op: DistanceOp{Known: pts[0], Measure: c.Measure}}}
	case !known[0] && known[1]:
		return []Target{{Point: pts[0], Op: DistanceOp{Known: pts[1], Measure: c.Measure}}}
	}

	return nil
}

// Targets for Angle over [a, vertex, b]:
//
//   - vertex and one end known → the other end lies on one of the two rays
//     at ±Measure from the known end's direction (AngleEndOp);
//   - both ends known, vertex unknown → the vertex lies on the inscribed
//     arcs over the chord a-b (AngleVertexOp).
func (c Angle) Targets(pts []PID, known []bool) []Target {
	if len(pts) != 3 || len(known) != 3 {
		return nil
	}
	switch {
	case known[0] && known[1] && !known[2]:
		return []Target{{Point: pts[2], Op: AngleEndOp{Vertex: pts[1], Other: pts[0], Measure: c.Measure}}}
	case !known[0] && known[1] && known[2]:
		return []Target{{Point: pts[0], Op: AngleEndOp{Vertex: pts[1], Other: pts[2], Measure: c.Measure}}}
	case known[0] && !known[1] && known[2]:
		return []Target{{Point: pts[1], Op: AngleVertexOp{P0: pts[0], P1: pts[2], Measure: c.Measure}}}
	}

	return nil
}

// lineRef is the first fully-known line of a Parallel/Perpendicular tuple.
type lineRef struct {
	idx    int
	p0, p1 PID
}

// lineTarget is a line with exactly one known endpoint: a candidate target.
type lineTarget struct {
	idx     int
	known   PID
	unknown PID
}

// scanLines splits a 2k point tuple into the reference line (first fully
// known pair) and the candidate targets (pairs with exactly one known
// endpoint). ok is false when the tuple is malformed or no reference exists.
func scanLines(pts []PID, known []bool) (lineRef, []lineTarget, bool) {
	if len(pts) < 2 || len(pts)%2 != 0 || len(known) != len(pts) {
		return lineRef{}, nil, false
	}

	var (
		ref     lineRef
		haveRef bool
		cands   []lineTarget
	)
	for i := 0; i*2+1 < len(pts); i++ {
		a, b := pts[i*2], pts[i*2+1]
		ka, kb := known[i*2], known[i*2+1]
		switch {
		case ka && kb:
			if !haveRef {
				ref = lineRef{idx: i, p0: a, p1: b}
				haveRef = true
			}
		case ka && !kb:
			cands = append(cands, lineTarget{idx: i, known: a, unknown: b})
		case !ka && kb:
			cands = append(cands, lineTarget{idx: i, known: b, unknown: a})
		}
	}
	if !haveRef {
		return lineRef{}, nil, false
	}

	return ref, cands, true
}

// Targets for Parallel: the first fully-known line is the reference; every
// line with exactly one known endpoint gets a parallel line through that
// endpoint for its unknown one.
func (Parallel) Targets(pts []PID, known []bool) []Target {
	ref, cands, ok := scanLines(pts, known)
	if !ok {
		return nil
	}

	out := make([]Target, 0, len(cands))
	for _, t := range cands {
		out = append(out, Target{
			Point: t.unknown,
			Op:    ParallelOp{P0: ref.p0, P1: ref.p1, Origin: t.known},
		})
	}

	return out
}

// Targets for Perpendicular: as Parallel, except that lines alternate
// direction, so a target line whose index differs in parity from the
// reference gets the perpendicular direction instead.
func (Perpendicular) Targets(pts []PID, known []bool) []Target {
	ref, cands, ok := scanLines(pts, known)
	if !ok {
		return nil
	}

	out := make([]Target, 0, len(cands))
	for _, t := range cands {
		var op TargetedOp
		if t.idx%2 == ref.idx%2 {
			op = ParallelOp{P0: ref.p0, P1: ref.p1, Origin: t.known}
		} else {
			op = PerpendicularOp{P0: ref.p0, P1: ref.p1, Origin: t.known}
		}
		out = append(out, Target{Point: t.unknown, Op: op})
	}

	return out
}

// Targets for Collinear: the first two known points define the line; every
// unknown point is targeted onto it. Fewer than two known points produce
// nothing.
func (Collinear) Targets(pts []PID, known []bool) []Target {
	if len(pts) < 2 || len(known) != len(pts) {
		return nil
	}

	var line []PID
	var unknown []PID
	for i, p := range pts {
		if known[i] {
			line = append(line, p)
		} else {
			unknown = append(unknown, p)
		}
	}
	if len(line) < 2 {
		return nil
	}

	out := make([]Target, 0, len(unknown))
	for _, t := range unknown {
		out = append(out, Target{Point: t, Op: CollinearOp{P0: line[0], P1: line[1]}})
	}

	return out
}

// Targets for Chirality: the first fully-known triple is the turn
// reference; every triple with exactly one unknown point yields a halfplane
// op for it, Pro when its polarity matches the reference's and Anti when it
// does not. The two known points of the target triple are taken in cyclic
// order so the turn sign is preserved regardless of which slot is unknown.
func (c Chirality) Targets(pts []PID, known []bool) []Target {
	if len(pts) != 3*len(c.Polarities) || len(known) != len(pts) {
		return nil
	}

	type cand struct {
		pol      Polarity
		k0, k1   PID
		unknown  PID
	}
	var (
		refPol  Polarity
		ref     [3]PID
		haveRef bool
		cands   []cand
	)
	for i := 0; i < len(c.Polarities); i++ {
		t0, t1, t2 := pts[i*3], pts[i*3+1], pts[i*3+2]
		k0, k1, k2 := known[i*3], known[i*3+1], known[i*3+2]
		switch {
		case k0 && k1 && k2:
			if !haveRef {
				refPol, ref = c.Polarities[i], [3]PID{t0, t1, t2}
				haveRef = true
			}
		case k0 && k1 && !k2:
			cands = append(cands, cand{pol: c.Polarities[i], k0: t0, k1: t1, unknown: t2})
		case k0 && !k1 && k2:
			cands = append(cands, cand{pol: c.Polarities[i], k0: t2, k1: t0, unknown: t1})
		case !k0 && k1 && k2:
			cands = append(cands, cand{pol: c.Polarities[i], k0: t1, k1: t2, unknown: t0})
		}
	}
	if !haveRef {
		return nil
	}

	out := make([]Target, 0, len(cands))
	for _, t := range cands {
		pol := Anti
		if t.pol == refPol {
			pol = Pro
		}
		out = append(out, Target{
			Point: t.unknown,
			Op: ChiralityOp{
				Pol: pol,
				P0:  ref[0], P1: ref[1], P2: ref[2],
				P3: t.k0, P4: t.k1,
			},
		})
	}

	return out
}
