// Package planar is a 2D geometric constraint solver: the engine behind a
// parametric sketcher. You name points and declare relationships between
// them (distances, angles, parallelism, perpendicularity, collinearity,
// chirality); planar decides in what order points can be placed, then
// places them.
//
// 🚀 What is planar?
//
//	A small, synchronous, pure-computation library built from three
//	tightly coupled subsystems:
//
//	  • Locus algebra   — 0D/1D/2D point sets with an exact meet operator
//	  • Targeting       — symmetric constraints turned into directed
//	                      "known points ⇒ locus for this point" operations
//	  • Order & solve   — breadth-first discovery of an evaluation tree,
//	                      then backtracking placement over intersections
//
// ✨ Why choose planar?
//
//   - Declarative      — you state relationships, not coordinates
//   - Deterministic    — same figure in, same coordinates out
//   - Honest           — underdetermined figures still resolve; impossible
//     ones fail with a sentinel error (order.ErrIncomplete with the
//     covered/total point counts, solve.ErrNoSolution or solve.ErrNumerical)
//   - Pure Go          — no cgo, no solver daemon, no iteration tuning
//
// Everything is organized under five subpackages plus a convenience layer:
//
//	vec/     — scalars with a single tolerance policy, full 2D vectors
//	locus/   — Point/Line/Circle/All/Half and Meet, Dist, Choose
//	figure/  — points, constraints, and constraint targeting
//	order/   — breadth-first evaluation order over (root, orbiter) trees
//	solve/   — brute-force backtracking placement
//	builder/ — deterministic figure constructors for common shapes
//
// Quick ASCII example:
//
//	    c
//	   / \        three points, three unit distances:
//	  /   \       an equilateral triangle finds its own
//	 a─────b      coordinates.
//
//	fig := figure.New()
//	a, b, c := fig.NewPoint(), fig.NewPoint(), fig.NewPoint()
//	fig.AddConstraint(figure.Distance{Measure: 1}, a, b)
//	fig.AddConstraint(figure.Distance{Measure: 1}, b, c)
//	fig.AddConstraint(figure.Distance{Measure: 1}, c, a)
//	plan, _ := order.BFS(fig)
//	pos, _ := solve.Brute(plan)
//
//	go get github.com/katalvlaran/planar
package planar
