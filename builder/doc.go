// Package builder provides deterministic figure constructors: small,
// composable recipes that append well-formed point-and-constraint shapes to
// a figure.
//
// 🚀 Why a builder?
//
//	Hand-assembling a figure is verbose and easy to get subtly wrong
//	(tuple orders, closing constraints). The builder owns those recipes:
//
//	  fig, err := builder.BuildFigure(
//	      builder.Rectangle(4, 3),
//	      builder.Segment(10),
//	  )
//
// ✨ Contract (strict):
//
//   - Constructors validate parameters early and return sentinel errors,
//     never panic.
//   - Point allocation is deterministic: each constructor documents the
//     order in which it calls NewPoint, so callers can address the points
//     of the k-th shape by arithmetic on the figure's point count.
//   - Same constructor sequence in, identical figure out.
//
// Constructors only declare constraints; whether the result is solvable is
// the business of order.BFS and solve.Brute.
package builder
