// Package locus implements the tagged algebra of planar point sets that the
// solver intersects: 0D points, 1D lines/rays and circles, and the 2D plane
// and halfplane.
//
// 🚀 What is a locus?
//
//	A Locus is a set of points in the plane, stratified by dimension:
//	  • Point            - a single position (0D)
//	  • Line {O, V, L}   - parametric ray (L = 0) or infinite line (L = -∞)
//	  • Circle {C, R}    - centre and strictly positive radius
//	  • All              - the whole plane
//	  • Half {O, N}      - closed halfplane (p - O)·N ≥ 0
//
// ✨ Key operations:
//
//   - Intersect(g0, g1): exact pairwise meet, returning lower-dimensional
//     loci (0, 1 or 2 points for the 1D×1D cases).
//   - Meet(a, b): Intersect lifted to lists, the Cartesian product flattened.
//     Commutative and associative over multisets of points (modulo Epsilon).
//   - Dist(p, g): distance from a point to a locus; signed for circles
//     (negative inside), clamped to zero inside a halfplane.
//   - Choose(g) / Representatives(g): pick one, or a short deterministic
//     list of, concrete positions on an underdetermined locus.
//
// Halfplanes act as filters rather than meet reducers: Half∩Point keeps the
// point iff it is inside, while Half against anything wider passes the other
// operand through untouched and leaves rejection to representative selection.
//
// Every sign or equality branch goes through vec.AboutEq / vec.AboutZero;
// nearly tangent configurations therefore resolve to one or two points
// depending on which side of Epsilon the discriminant falls.
package locus
