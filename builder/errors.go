package builder

import "errors"

// ErrBadLength indicates a length or side parameter that is not strictly
// positive. Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrBadLength) { /* reject the measure */ }.
var ErrBadLength = errors.New("builder: length must be positive")

// ErrTooFewSides indicates a polygon constructor was asked for fewer than
// three sides.
// Usage: if errors.Is(err, ErrTooFewSides) { /* raise n */ }.
var ErrTooFewSides = errors.New("builder: polygon needs at least 3 sides")

// ErrImpossibleTriangle indicates side lengths violating the triangle
// inequality; no placement could ever satisfy them.
// Usage: if errors.Is(err, ErrImpossibleTriangle) { /* fix the sides */ }.
var ErrImpossibleTriangle = errors.New("builder: sides violate the triangle inequality")
