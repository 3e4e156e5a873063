package figure

import (
	"errors"
	"fmt"
)

// Sentinel errors for figure construction.
var (
	// ErrNilConstraint is returned when AddConstraint receives a nil Constraint.
	ErrNilConstraint = errors.New("figure: constraint is nil")

	// ErrUnknownPoint is returned when a referenced PID was never allocated.
	ErrUnknownPoint = errors.New("figure: unknown point id")

	// ErrUnknownConstraint is returned when a referenced CID does not exist.
	ErrUnknownConstraint = errors.New("figure: unknown constraint id")

	// ErrBadMapping is returned by MapIDs when the supplied mapping is not a
	// bijection over the figure's point ids.
	ErrBadMapping = errors.New("figure: id mapping is not a bijection")
)

// PID is an opaque dense point id, assigned in creation order. It doubles
// as the index into the point-to-constraint adjacency list.
type PID int

// CID is an opaque dense constraint id, assigned in declaration order.
type CID int

// entry pairs a constraint with the point tuple it was declared over.
type entry struct {
	c   Constraint
	pts []PID
}

// Figure is the append-only constraint problem: an ordered list of
// (Constraint, point tuple) declarations plus the reverse index from each
// point to every constraint it participates in. Points and constraints are
// never removed or renumbered (MapIDs permutes ids but keeps both sets).
type Figure struct {
	constraints []entry
	points      [][]CID // PID → CIDs it participates in, deduplicated per call
}

// New returns an empty Figure.
func New() *Figure {
	return &Figure{}
}

// NewPoint allocates a fresh point id equal to the current point count and
// an empty adjacency list for it.
//
// Complexity: O(1) amortised.
func (f *Figure) NewPoint() PID {
	f.points = append(f.points, nil)

	return PID(len(f.points) - 1)
}

// AddConstraint appends the declaration (c, pts), yielding its CID, and
// registers the new CID with every referenced point exactly once even when
// a point appears several times in the tuple.
//
// Tuple arity is deliberately not validated against the variant: a
// malformed constraint simply produces no targets (see package doc).
//
// Complexity: O(len(pts)).
func (f *Figure) AddConstraint(c Constraint, pts ...PID) (CID, error) {
	if c == nil {
		return 0, ErrNilConstraint
	}
	for _, p := range pts {
		if int(p) < 0 || int(p) >= len(f.points) {
			return 0, fmt.Errorf("%w: %d", ErrUnknownPoint, p)
		}
	}

	cid := CID(len(f.constraints))
	for _, p := range pts {
		if !containsCID(f.points[p], cid) {
			f.points[p] = append(f.points[p], cid)
		}
	}
	tuple := make([]PID, len(pts))
	copy(tuple, pts)
	f.constraints = append(f.constraints, entry{c: c, pts: tuple})

	return cid, nil
}

// NumPoints returns how many points have been allocated.
func (f *Figure) NumPoints() int { return len(f.points) }

// NumConstraints returns how many constraints have been declared.
func (f *Figure) NumConstraints() int { return len(f.constraints) }

// Constraint returns the declaration behind cid: the constraint value and a
// copy of its point tuple.
func (f *Figure) Constraint(cid CID) (Constraint, []PID, error) {
	if int(cid) < 0 || int(cid) >= len(f.constraints) {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownConstraint, cid)
	}
	e := f.constraints[cid]
	tuple := make([]PID, len(e.pts))
	copy(tuple, e.pts)

	return e.c, tuple, nil
}

// ConstraintsOn returns a copy of the ids of every constraint the point
// participates in, in declaration order.
func (f *Figure) ConstraintsOn(p PID) ([]CID, error) {
	if int(p) < 0 || int(p) >= len(f.points) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, p)
	}
	cids := make([]CID, len(f.points[p]))
	copy(cids, f.points[p])

	return cids, nil
}

// Targets runs constraint cid's targeting against the knowledge predicate:
// the mask passed to the constraint holds known(p) for each tuple entry.
// It returns zero or more (target point, directed op) pairs; see the
// Constraint variants for the exact dispatch rules.
func (f *Figure) Targets(cid CID, known func(PID) bool) ([]Target, error) {
	if int(cid) < 0 || int(cid) >= len(f.constraints) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownConstraint, cid)
	}
	e := f.constraints[cid]
	mask := make([]bool, len(e.pts))
	for i, p := range e.pts {
		mask[i] = known(p)
	}

	return e.c.Targets(e.pts, mask), nil
}

// MapIDs renumbers every point under the given permutation: constraint
// tuples are rewritten and adjacency lists moved so that old id p becomes
// mapping[p]. The mapping must cover every allocated id exactly once and
// stay within range, otherwise ErrBadMapping is returned and the figure is
// left untouched.
//
// Complexity: O(P + Σ tuple lengths).
func (f *Figure) MapIDs(mapping map[PID]PID) error {
	n := len(f.points)
	seen := make([]bool, n)
	for old := 0; old < n; old++ {
		to, ok := mapping[PID(old)]
		if !ok || int(to) < 0 || int(to) >= n || seen[to] {
			return fmt.Errorf("%w: point %d", ErrBadMapping, old)
		}
		seen[to] = true
	}

	for i := range f.constraints {
		for j, p := range f.constraints[i].pts {
			f.constraints[i].pts[j] = mapping[p]
		}
	}
	moved := make([][]CID, n)
	for old, cids := range f.points {
		moved[mapping[PID(old)]] = cids
	}
	f.points = moved

	return nil
}

// containsCID reports whether id is already present in cids.
func containsCID(cids []CID, id CID) bool {
	for _, c := range cids {
		if c == id {
			return true
		}
	}

	return false
}
