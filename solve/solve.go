package solve

import (
	"errors"

	"github.com/katalvlaran/planar/locus"
	"github.com/katalvlaran/planar/order"
	"github.com/katalvlaran/planar/vec"
)

// Brute places every point of the plan by backtracking search and returns
// one position per PID, indexed by id.
//
// Returns ErrNilPlan for nil input, ErrNoSolution / ErrNumerical when the
// search exhausts (see package doc), or a context error on cancellation.
//
// Complexity: recursion depth is the point count; branching per step is
// bounded by the meet cardinality (≤ 2 per 1D×1D pair, ≤ 2 inscribed arcs)
// times the constant representative fan-out of underdetermined loci.
func Brute(plan *order.Plan, opts ...Option) ([]vec.Vector, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		plan: plan,
		opts: o,
		pos:  make([]vec.Vector, plan.NumPoints()),
	}
	err := r.place(0)
	switch {
	case err == nil:
		return r.pos, nil
	case errors.Is(err, errExhausted):
		if r.numerical {
			return nil, ErrNumerical
		}

		return nil, ErrNoSolution
	default:
		return nil, err
	}
}

// runner holds the mutable state of one backtracking search.
type runner struct {
	plan      *order.Plan
	opts      Options
	pos       []vec.Vector // indexed by PID; entries of points at steps ≥ current depth are stale
	numerical bool         // some branch died of degenerate geometry
}

// place recursively assigns the i-th step and everything after it.
// It returns nil on success, errExhausted when this branch ran dry, and
// any other error (cancellation) unconditionally up the stack.
func (r *runner) place(i int) error {
	if i >= len(r.plan.Steps) {
		return nil
	}
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	step := r.plan.Steps[i]
	loci, filters, err := r.meetStep(step)
	if err != nil {
		return err
	}

	for _, g := range loci {
		_, determined := g.(locus.Point)
		for _, rep := range locus.Representatives(g) {
			// Free choices must not fabricate coincidences or cross a
			// halfplane; 0D candidates were already vetted by the meet.
			if !determined && !r.admissible(rep, filters, i) {
				continue
			}

			r.pos[step.Point] = rep
			r.opts.OnPlace(step.Point, rep)
			err = r.place(i + 1)
			if err == nil {
				return nil
			}
			if !errors.Is(err, errExhausted) {
				return err
			}
			r.opts.OnBacktrack(step.Point)
		}
	}

	return errExhausted
}

// meetStep folds the step's ops' loci through Meet, support ops first, and
// collects the halfplanes seen along the way for representative filtering.
// A step with no ops at all leaves the whole plane. Degenerate geometry
// marks the branch numerical and reads as an empty fold.
func (r *runner) meetStep(step order.Step) ([]locus.Locus, []locus.Half, error) {
	if len(step.Ops) == 0 {
		return []locus.Locus{locus.All{}}, nil, nil
	}

	var (
		folded  []locus.Locus
		filters []locus.Half
	)
	for k, op := range step.Ops {
		gs, err := op.Geo(r.pos)
		if err != nil {
			if errors.Is(err, locus.ErrDegenerate) {
				r.numerical = true

				return nil, nil, nil
			}

			return nil, nil, err
		}
		for _, g := range gs {
			if h, ok := g.(locus.Half); ok {
				filters = append(filters, h)
			}
		}
		if k == 0 {
			folded = gs
		} else {
			folded = locus.Meet(folded, gs)
		}
	}

	return folded, filters, nil
}

// admissible vets a freely chosen representative: it must satisfy every
// halfplane attached to the step and must not coincide (within Epsilon)
// with a point placed by an earlier step.
func (r *runner) admissible(rep vec.Vector, filters []locus.Half, depth int) bool {
	for _, h := range filters {
		if !vec.AboutZero(h.Dist(rep)) {
			return false
		}
	}
	for j := 0; j < depth; j++ {
		if vec.AboutZero(rep.Dist(r.pos[r.plan.Steps[j].Point])) {
			return false
		}
	}

	return true
}
