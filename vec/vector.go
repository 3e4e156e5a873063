package vec

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Vector is an ordered pair (X, Y) of scalars: a point or a direction in
// the plane, depending on context.
type Vector struct {
	X, Y Number
}

// Distinguished constants.
var (
	// Zero is the origin / null vector.
	Zero = Vector{0, 0}

	// PosX, NegX, PosY, NegY are the four axis-aligned unit vectors.
	PosX = Vector{1, 0}
	NegX = Vector{-1, 0}
	PosY = Vector{0, 1}
	NegY = Vector{0, -1}

	// MaxV and MinV are the +∞/−∞ corners, the identity elements for
	// component-wise min/max folds (see BoundingBox).
	MaxV = Vector{math.Inf(1), math.Inf(1)}
	MinV = Vector{math.Inf(-1), math.Inf(-1)}
)

// FromAngle returns the unit vector (cos a, sin a).
func FromAngle(a unit.Angle) Vector {
	return Vector{a.Cos(), a.Sin()}
}

// Add returns v + w component-wise.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w component-wise.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// AddN adds n to both components.
func (v Vector) AddN(n Number) Vector {
	return Vector{v.X + n, v.Y + n}
}

// SubN subtracts n from both components.
func (v Vector) SubN(n Number) Vector {
	return Vector{v.X - n, v.Y - n}
}

// Mul returns the component-wise (Hadamard) product v ∘ w.
func (v Vector) Mul(w Vector) Vector {
	return Vector{v.X * w.X, v.Y * w.Y}
}

// Div returns the component-wise quotient.
func (v Vector) Div(w Vector) Vector {
	return Vector{v.X / w.X, v.Y / w.Y}
}

// Scale returns v scaled by n.
func (v Vector) Scale(n Number) Vector {
	return Vector{v.X * n, v.Y * n}
}

// DivN returns v scaled by 1/n.
func (v Vector) DivN(n Number) Vector {
	return Vector{v.X / n, v.Y / n}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Dot returns the scalar product v·w.
func (v Vector) Dot(w Vector) Number {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar 2D cross product v × w, positive when w lies
// counter-clockwise of v.
func (v Vector) Cross(w Vector) Number {
	return v.X*w.Y - v.Y*w.X
}

// Mag returns the Euclidean magnitude |v|.
func (v Vector) Mag() Number {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance |w - v|.
func (v Vector) Dist(w Vector) Number {
	return w.Sub(v).Mag()
}

// Unit returns v normalised to unit length. The zero vector normalises to
// NaN components; callers that can meet a zero-length input must test the
// magnitude first (see UnitMag).
func (v Vector) Unit() Vector {
	return v.DivN(v.Mag())
}

// UnitMag returns the unit direction of v together with its magnitude, so
// degenerate (about-zero) inputs can be rejected before the division result
// is used.
func (v Vector) UnitMag() (Vector, Number) {
	d := v.Mag()

	return v.DivN(d), d
}

// Perp returns v rotated +90°: (x, y) → (-y, x).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Rot returns v rotated counter-clockwise by a.
func (v Vector) Rot(a unit.Angle) Vector {
	w := FromAngle(a)

	return Vector{
		X: v.X*w.X - v.Y*w.Y,
		Y: v.X*w.Y + v.Y*w.X,
	}
}

// AboutEq reports whether both components of v and w agree within Epsilon.
func (v Vector) AboutEq(w Vector) bool {
	return AboutEq(v.X, w.X) && AboutEq(v.Y, w.Y)
}

// AboutZero reports whether both components are zero within Epsilon.
func (v Vector) AboutZero() bool {
	return AboutZero(v.X) && AboutZero(v.Y)
}

// String renders the vector as "(x, y)" with two decimals.
func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// BoundingBox folds the axis-aligned bounding box over vectors, returning
// the (min, max) corners. An empty input yields the inverted (MaxV, MinV)
// identity pair.
func BoundingBox(vectors []Vector) (Vector, Vector) {
	mn, mx := MaxV, MinV
	for _, v := range vectors {
		mn.X = math.Min(mn.X, v.X)
		mn.Y = math.Min(mn.Y, v.Y)
		mx.X = math.Max(mx.X, v.X)
		mx.Y = math.Max(mx.Y, v.Y)
	}

	return mn, mx
}
