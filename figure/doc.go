// Package figure holds the user-facing model of a constraint problem: named
// points, declarative constraints over them, and the targeting step that
// turns a symmetric declaration into directed geometric operations.
//
// 🚀 What is a Figure?
//
//	An append-only container:
//	  • points are opaque dense ids (PID), allocated by NewPoint
//	  • constraints are (Constraint, point tuple) pairs (CID), appended by
//	    AddConstraint and indexed both ways (point ↔ constraint)
//
// ✨ Constraint variants:
//
//   - Distance{M}        over [a, b]
//   - Angle{M}           over [a, vertex, b]
//   - Parallel           over 2k points read as k lines
//   - Perpendicular      over 2k points, consecutive lines alternating
//   - Collinear          over ≥ 2 points, unordered
//   - Chirality{[]Pol}   over 3k points read as k oriented triples
//
// 🎯 Targeting:
//
//	Figure.Targets(cid, known) asks a constraint: "given that this subset of
//	your points is already placed, which still-unknown point can you produce
//	a locus for, and how?" The answer is a list of (target point, TargetedOp)
//	pairs. A TargetedOp is plain data: known point ids plus the measure. Its
//	Geo method evaluates the locus against concrete positions, and
//	Discretizing tells whether that locus is 1D (cuts a degree of freedom)
//	or a 2D halfplane (disambiguates between mirror branches).
//
// Malformed tuples (wrong arity for the variant) produce no targets, by
// design: they surface downstream as an ordering failure if unavoidable.
//
// The ordering and solving stages read a Figure but never mutate it, so any
// number of solves may run concurrently over one Figure.
package figure
