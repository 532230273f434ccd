package experiment

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/metrics"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/sim"
)

type (
	System  = integrators.System[*models.State]
	Stepper = integrators.Stepper[*models.State]
)

var (
	ErrUnknownModel   = errors.New("experiment: unknown model")
	ErrUnknownStepper = errors.New("experiment: unknown stepper")
)

// ModelFactory builds a right-hand side from the run configuration.
type ModelFactory func(cfg *config.Config, logger *slog.Logger) System

type Registry struct {
	models   map[string]ModelFactory
	steppers map[string]func() Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		models:   make(map[string]ModelFactory),
		steppers: make(map[string]func() Stepper),
	}

	r.models["constant"] = func(_ *config.Config, l *slog.Logger) System { return models.Constant{Logger: l} }
	r.models["decay"] = func(c *config.Config, l *slog.Logger) System { return models.Decay{Rate: c.Rate, Logger: l} }
	r.models["ladder"] = func(_ *config.Config, l *slog.Logger) System { return models.Ladder{Logger: l} }

	r.steppers["euler"] = func() Stepper { return integrators.NewEuler[*models.State, complex128]() }
	r.steppers["rk4"] = func() Stepper { return integrators.NewRK4[*models.State, complex128]() }
	r.steppers["dopri5"] = func() Stepper { return integrators.NewDormandPrince[*models.State, complex128]() }
	r.steppers["cashkarp"] = func() Stepper { return integrators.NewCashKarp[*models.State, complex128]() }

	return r
}

// RegisterModel adds or replaces a model.
func (r *Registry) RegisterModel(name string, fn ModelFactory) { r.models[name] = fn }

func (r *Registry) GetModel(name string, cfg *config.Config, logger *slog.Logger) (System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (have %v)", ErrUnknownModel, name, r.ListModels())
	}
	return fn(cfg, logger), nil
}

func (r *Registry) GetStepper(name string) (Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (have %v)", ErrUnknownStepper, name, r.ListSteppers())
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string { return sortedKeys(r.models) }

func (r *Registry) ListSteppers() []string { return sortedKeys(r.steppers) }

// Adaptive reports whether the named stepper carries an error estimate.
func (r *Registry) Adaptive(name string) bool {
	st, err := r.GetStepper(name)
	if err != nil {
		return false
	}
	_, ok := st.(integrators.ErrorStepper[*models.State])
	return ok
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []sim.Metric[*models.State] {
	return []sim.Metric[*models.State]{
		metrics.NewMaxNorm[*models.State](),
		metrics.NewFinalNorm[*models.State](),
		metrics.NewNormGrowth[*models.State](),
		metrics.NewProbe("gam0_re", func(x *models.State) float64 { return real(models.Gam0(x)) }),
		metrics.NewProbe("gam0_im", func(x *models.State) float64 { return imag(models.Gam0(x)) }),
		metrics.NewProbe("sig_norm", func(x *models.State) float64 { return models.Sig(x).NormInf() }),
	}
}
