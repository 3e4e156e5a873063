package vec

import "math"

// Number is the scalar type used throughout planar: a finite real
// approximated by an IEEE-754 double.
type Number = float64

// Epsilon is the single tolerance governing every approximate comparison
// in the module. Two scalars within Epsilon of each other are treated as
// equal; a scalar within Epsilon of zero is treated as zero.
const Epsilon Number = 1e-9

// PosInf and NegInf are the scalar infinities, used as the open lower bound
// of an infinite line parameter.
var (
	PosInf = math.Inf(1)
	NegInf = math.Inf(-1)
)

// AboutEq reports whether a and b are equal within Epsilon.
func AboutEq(a, b Number) bool {
	return math.Abs(b-a) <= Epsilon
}

// AboutZero reports whether n is zero within Epsilon.
func AboutZero(n Number) bool {
	return math.Abs(n) <= Epsilon
}

// Signum returns -1, 0 or +1 according to the exact sign of n.
// Zero maps to zero, so a degenerate (collinear) turn yields a neutral
// halfplane rather than an arbitrary orientation.
func Signum(n Number) Number {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
