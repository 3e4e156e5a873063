package order

import (
	"context"
	"errors"

	"github.com/katalvlaran/planar/figure"
)

// Sentinel errors for ordering.
var (
	// ErrNilFigure is returned if a nil figure pointer is passed.
	ErrNilFigure = errors.New("order: figure is nil")

	// ErrIncomplete is returned when no single tree covers every point; the
	// wrapped message carries covered/total counts.
	ErrIncomplete = errors.New("order: no single tree covers every point")
)

// Step is one entry of the evaluation order: the point to place and the ops
// whose loci pin it down, support (1D) ops first, disambiguation halfplanes
// appended after them.
type Step struct {
	Point figure.PID
	Ops   []figure.TargetedOp
}

// Plan is a complete evaluation order: Steps visits every point of the
// figure exactly once, the first step (the root) carries no ops and the
// second (the orbiter) exactly one discretizing op.
type Plan struct {
	Steps   []Step
	Root    figure.PID
	Orbiter figure.PID
}

// NumPoints returns how many points the plan places.
func (p *Plan) NumPoints() int { return len(p.Steps) }

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize ordering.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a point becomes discrete (second support op)
	// and joins a candidate tree's queue.
	OnEnqueue func(p figure.PID)

	// OnPromote is called when a drained queue forces an underdetermined
	// point to be promoted to known.
	OnPromote func(p figure.PID)

	// OnVisit is called when a queued point is expanded. If it returns an
	// error, BFS aborts and propagates that error.
	OnVisit func(p figure.PID) error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(figure.PID) {},
		OnPromote: func(figure.PID) {},
		OnVisit:   func(figure.PID) error { return nil },
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

// WithOnEnqueue registers a callback to run when a point becomes discrete.
func WithOnEnqueue(fn func(p figure.PID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnPromote registers a callback to run when a point is promoted.
func WithOnPromote(fn func(p figure.PID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPromote = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from this callback stops the ordering.
func WithOnVisit(fn func(p figure.PID) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
