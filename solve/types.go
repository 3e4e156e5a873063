package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/planar/figure"
	"github.com/katalvlaran/planar/vec"
)

// Sentinel errors for solving.
var (
	// ErrNilPlan is returned if a nil plan pointer is passed.
	ErrNilPlan = errors.New("solve: plan is nil")

	// ErrNoSolution is returned when every branch of the search exhausts
	// without placing all points.
	ErrNoSolution = errors.New("solve: no consistent placement exists")

	// ErrNumerical is returned when the search exhausts and at least one
	// branch failed on degenerate geometry (zero-length baseline, collapsed
	// circle) rather than an honest empty intersection.
	ErrNumerical = errors.New("solve: search failed on degenerate geometry")
)

// errExhausted signals one recursion branch ran out of candidates; it
// never escapes Brute.
var errExhausted = errors.New("solve: branch exhausted")

// Option configures Brute behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize solving.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per recursion step.
	Ctx context.Context

	// OnPlace is called each time a point is tentatively placed.
	OnPlace func(p figure.PID, at vec.Vector)

	// OnBacktrack is called when a placement is abandoned.
	OnBacktrack func(p figure.PID)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnPlace:     func(figure.PID, vec.Vector) {},
		OnBacktrack: func(figure.PID) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace registers a callback to run on every tentative placement.
func WithOnPlace(fn func(p figure.PID, at vec.Vector)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// WithOnBacktrack registers a callback to run on every abandoned placement.
func WithOnBacktrack(fn func(p figure.PID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}
