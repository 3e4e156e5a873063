// Package vec provides the scalar and 2D vector arithmetic underlying the
// planar constraint solver.
//
// 🚀 What is vec?
//
//	The numeric bedrock of planar:
//	  • Number: IEEE-754 double with a single tolerance policy (Epsilon)
//	  • Vector: full 2D arithmetic, rotation, projection, normalisation
//	  • BoundingBox: min/max corners over a point cloud
//
// ✨ Design rules:
//
//   - One Epsilon (1e-9) governs every approximate comparison in the module.
//     Branching on signs or equality in geometric code goes through AboutEq /
//     AboutZero, never through raw ==.
//   - Angular quantities are unit.Angle (radians) from soniakeys/unit, so
//     degree/radian confusion cannot survive a type check.
//   - All Vector methods are value-receiver; all but String are
//     allocation-free.
//
// Quick example:
//
//	u, d := vec.Vector{X: 3, Y: 4}.UnitMag() // (0.6, 0.8), 5
//	w := u.Rot(unit.Angle(math.Pi / 2))      // +90° rotation
//
// See locus for the geometric algebra built on top of these primitives.
package vec
