package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/state"
)

type Simulator[T state.Vector[T, S], S state.Scalar] struct {
	sys       integrators.System[T]
	stepper   integrators.Stepper[T]
	metrics   []Metric[T]
	observers []Observer[T]
	logger    *slog.Logger
}

func New[T state.Vector[T, S], S state.Scalar](sys integrators.System[T], stepper integrators.Stepper[T]) *Simulator[T, S] {
	return &Simulator[T, S]{
		sys:       sys,
		stepper:   stepper,
		metrics:   make([]Metric[T], 0),
		observers: make([]Observer[T], 0),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (s *Simulator[T, S]) AddMetric(m Metric[T])     { s.metrics = append(s.metrics, m) }
func (s *Simulator[T, S]) AddObserver(o Observer[T]) { s.observers = append(s.observers, o) }

func (s *Simulator[T, S]) WithLogger(l *slog.Logger) *Simulator[T, S] {
	if l != nil {
		s.logger = l
	}
	return s
}

// counter counts right-hand side evaluations of one run.
type counter[T any] struct {
	sys integrators.System[T]
	n   int
}

func (c *counter[T]) Derive(x, dxdt T, t float64) {
	c.n++
	c.sys.Derive(x, dxdt, t)
}

// run holds the mutable state of a single Run call.
type run[T state.Vector[T, S], S state.Scalar] struct {
	sim    *Simulator[T, S]
	cfg    Config
	sys    *counter[T]
	result *Result[T]
	x      T
	t      float64
}

// Run integrates x0 from cfg.Start to cfg.End. x0 is not modified. On error
// the partial result up to the last accepted state is returned with it.
func (s *Simulator[T, S]) Run(ctx context.Context, x0 T, cfg Config) (*Result[T], error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	r := &run[T, S]{
		sim: s,
		cfg: cfg,
		sys: &counter[T]{sys: s.sys},
		result: &Result[T]{
			Times:     make([]float64, 0, 64),
			Norms:     make([]float64, 0, 64),
			StepSizes: make([]float64, 0, 64),
			Metrics:   make(map[string]float64),
		},
		x: x0.Clone(),
		t: cfg.Start,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Info("run started",
		"stepper", s.stepper.Name(),
		"adaptive", cfg.Adaptive,
		"start", cfg.Start,
		"end", cfg.End,
		"dt", cfg.Dt)

	err := r.record(0)
	if err == nil {
		if cfg.Adaptive {
			err = r.adaptive(ctx)
		} else {
			err = r.constant(ctx)
		}
	}
	r.finish()

	if err != nil {
		s.logger.Warn("run failed", "t", r.t, "steps", r.result.Steps, "err", err)
		return r.result, err
	}
	s.logger.Info("run finished",
		"steps", r.result.Steps,
		"rejected", r.result.Rejected,
		"evaluations", r.result.Evaluations,
		"norm", r.result.Norms[len(r.result.Norms)-1])
	return r.result, nil
}

func (r *run[T, S]) constant(ctx context.Context) error {
	cfg := r.cfg
	n := max(int(math.Ceil((cfg.End-cfg.Start)/cfg.Dt-1e-9)), 1)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dt := cfg.Dt
		last := i == n-1
		if last {
			dt = cfg.End - r.t
		}
		r.x = r.sim.stepper.Step(r.sys, r.x, r.t, dt)
		r.advance(dt, last)
		if err := r.record(dt); err != nil {
			return err
		}
	}
	return nil
}

func (r *run[T, S]) adaptive(ctx context.Context) error {
	cfg := r.cfg
	es, ok := r.sim.stepper.(integrators.ErrorStepper[T])
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAdaptive, r.sim.stepper.Name())
	}
	ctrl, err := integrators.NewControlled[T, S](es, cfg.AbsTol, cfg.RelTol)
	if err != nil {
		return err
	}
	ctrl.MaxDt = cfg.MaxDt
	ctrl.MinDt = cfg.MinDt

	dt := cfg.Dt
	rejects := 0
	for r.t < cfg.End {
		if err := ctx.Err(); err != nil {
			return err
		}

		if cfg.MaxDt > 0 && dt > cfg.MaxDt {
			dt = cfg.MaxDt
		}
		last := r.t+dt >= cfg.End-cfg.MinDt
		if last {
			dt = cfg.End - r.t
		}

		att, err := ctrl.TryStep(r.sys, r.x, r.t, dt)
		if err != nil {
			return r.fail(err)
		}
		if !att.Accepted {
			rejects++
			r.result.Rejected++
			r.sim.logger.Debug("step rejected", "t", r.t, "dt", dt, "err", att.Err, "next", att.NextDt)
			if rejects >= cfg.MaxRejects {
				return r.fail(fmt.Errorf("%w: %d in a row", ErrTooManyRejections, rejects))
			}
			dt = att.NextDt
			continue
		}

		rejects = 0
		r.x = att.X
		r.advance(att.Dt, last)
		if err := r.record(att.Dt); err != nil {
			return err
		}
		dt = att.NextDt
	}
	return nil
}

// advance moves the clock. The final step lands on End exactly.
func (r *run[T, S]) advance(dt float64, last bool) {
	if last {
		r.t = r.cfg.End
	} else {
		r.t += dt
	}
}

// record stores the current state. dt is 0 for the initial state.
func (r *run[T, S]) record(dt float64) error {
	res := r.result
	norm := r.x.NormInf()
	res.Times = append(res.Times, r.t)
	res.Norms = append(res.Norms, norm)
	if dt != 0 {
		res.Steps++
		res.StepSizes = append(res.StepSizes, dt)
		r.sim.logger.Debug("step", "n", res.Steps, "t", r.t, "dt", dt, "norm", norm)
	}

	for _, m := range r.sim.metrics {
		m.Observe(r.x, r.t)
	}
	for _, obs := range r.sim.observers {
		obs.OnStep(r.x, r.t)
	}

	if r.cfg.ValidateState && (math.IsNaN(norm) || math.IsInf(norm, 0)) {
		return r.fail(ErrDiverged)
	}
	return nil
}

func (r *run[T, S]) fail(err error) error {
	return &StepError{Step: r.result.Steps, Time: r.t, Wrapped: err}
}

func (r *run[T, S]) finish() {
	r.result.Final = r.x
	r.result.Evaluations = r.sys.n
	for _, m := range r.sim.metrics {
		r.result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if !(cfg.End > cfg.Start) {
		return fmt.Errorf("%w: end %g must be after start %g", ErrInvalidConfig, cfg.End, cfg.Start)
	}
	if !(cfg.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Adaptive {
		if !(cfg.AbsTol > 0) || cfg.RelTol < 0 {
			return fmt.Errorf("%w: tolerances abs=%g rel=%g", ErrInvalidConfig, cfg.AbsTol, cfg.RelTol)
		}
		if cfg.MaxRejects <= 0 {
			return fmt.Errorf("%w: max rejects must be positive, got %d", ErrInvalidConfig, cfg.MaxRejects)
		}
		if cfg.MaxDt < 0 || cfg.MinDt < 0 {
			return fmt.Errorf("%w: step bounds min=%g max=%g", ErrInvalidConfig, cfg.MinDt, cfg.MaxDt)
		}
	}
	return nil
}
