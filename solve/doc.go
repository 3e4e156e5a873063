// Package solve places a figure's points by brute-force backtracking over
// an evaluation order produced by package order.
//
// 🚀 How solving works:
//
//	Steps are placed in order. For each step the attached ops' loci are
//	folded through locus.Meet; ops with no locus at all leave the whole
//	plane. Every candidate locus of the meet then offers a short
//	deterministic list of representatives (a 0D point offers exactly
//	itself), and the solver commits to one, recurses, and walks back to the
//	next representative or candidate when the recursion dead-ends.
//
// ✨ Placement rules:
//
//   - The root (no ops) lands on the origin; the orbiter (one op) takes the
//     canonical representative of its locus, so a figure of two points one
//     distance d apart resolves to (0,0) and (d,0).
//   - Chirality halfplanes filter: they discard 0D meet candidates on the
//     wrong side during the meet itself, and representatives of wider loci
//     during selection.
//   - A representative of a 1D/2D locus that lands (within Epsilon) on an
//     already-placed point is rejected; a free choice must not fabricate a
//     coincidence.
//   - A degenerate op evaluation (locus.ErrDegenerate: zero-length
//     baseline, collapsed circle) is a numerical dead end for that branch,
//     not a hard stop: the solver backtracks past it.
//
// Exhausting every branch yields ErrNoSolution, or ErrNumerical when at
// least one branch died of degenerate geometry, in which case the figure
// may be solvable under a different set of free choices.
//
// Underdetermined figures do not error: promoted points simply keep their
// representative freedom, which is how a parallelogram with a free interior
// angle still obtains concrete coordinates.
package solve
