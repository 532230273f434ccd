package sim

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/state"
)

// Ensemble integrates several initial states concurrently. The system is
// shared by all runs and must be safe for concurrent use; steppers and
// metrics are built per run by the factories.
type Ensemble[T state.Vector[T, S], S state.Scalar] struct {
	sys        integrators.System[T]
	newStepper func() integrators.Stepper[T]
	newMetrics func() []Metric[T]
	logger     *slog.Logger
	limit      int
}

func NewEnsemble[T state.Vector[T, S], S state.Scalar](sys integrators.System[T], newStepper func() integrators.Stepper[T]) *Ensemble[T, S] {
	return &Ensemble[T, S]{
		sys:        sys,
		newStepper: newStepper,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		limit:      runtime.GOMAXPROCS(0),
	}
}

func (e *Ensemble[T, S]) WithMetrics(fn func() []Metric[T]) *Ensemble[T, S] {
	e.newMetrics = fn
	return e
}

func (e *Ensemble[T, S]) WithLogger(l *slog.Logger) *Ensemble[T, S] {
	if l != nil {
		e.logger = l
	}
	return e
}

// WithLimit bounds the number of concurrent runs. n <= 0 removes the bound.
func (e *Ensemble[T, S]) WithLimit(n int) *Ensemble[T, S] {
	e.limit = n
	return e
}

// Run returns one result per initial state, in input order. The first
// failing run cancels the others and its error is returned.
func (e *Ensemble[T, S]) Run(ctx context.Context, x0s []T, cfg Config) ([]*Result[T], error) {
	results := make([]*Result[T], len(x0s))

	g, gctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i, x0 := range x0s {
		g.Go(func() error {
			s := New[T, S](e.sys, e.newStepper()).WithLogger(e.logger.With("run", i))
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}
			res, err := s.Run(gctx, x0, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
