// Package order discovers an evaluation order for a figure's points: a
// breadth-first tree rooted at an arbitrarily-placed point plus an
// arbitrarily-placed orbiter, annotated per point with the targeted ops the
// solver will intersect.
//
// 🚀 How ordering works:
//
//  1. Pick a root r; its coordinates are pinned to the origin at solve time.
//  2. Target every constraint incident on r with only r known: each emitted
//     target is a candidate orbiter, placed arbitrarily on its 1D locus.
//  3. Breadth-first expansion: when a point becomes known, re-target every
//     constraint incident on it. A returned op lands on its target's support
//     list (1D, discretizing) or disambiguation list (halfplane). The second
//     support op makes a point discrete: it is enqueued and, once visited,
//     expands its own neighbourhood.
//  4. If the queue drains with targeted-but-undiscrete points left, the best
//     supported one is promoted: like the orbiter it keeps a free degree of
//     freedom and the solver will choose its position on whatever locus its
//     ops pin down. Promotion keeps deliberately underdetermined figures
//     solvable; points no constraint ever targets are never promoted, so a
//     disconnected figure still fails with ErrIncomplete.
//
// An outer loop runs this for every candidate (root, orbiter) pair, skipping
// pairs already covered by an accepted tree and discarding accepted trees
// that a new tree strictly subsumes. The figure is well-conditioned exactly
// when one tree remains and it covers every point; otherwise BFS returns
// ErrIncomplete with the best coverage attached.
//
// ✨ Options mirror the other traversal packages: WithContext for
// cancellation, WithOnEnqueue / WithOnPromote / WithOnVisit hooks for
// observability. Hooks fire for every candidate tree explored, not only the
// accepted one.
package order
