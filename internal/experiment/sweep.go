package experiment

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/sim"
)

// SweepPoint is the outcome of one initial vertex value.
type SweepPoint struct {
	Gam      complex128
	FinalGam complex128
	MaxNorm  float64
	Steps    int
	Rejected int
}

// Sweep runs the configured flow once per initial vertex value, concurrently.
// Points are returned in the order of gams.
func Sweep(ctx context.Context, cfg *config.Config, reg *Registry, gams []complex128, logger *slog.Logger) ([]SweepPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sys, err := reg.GetModel(cfg.Model, cfg, nil)
	if err != nil {
		return nil, err
	}
	if _, err := reg.GetStepper(cfg.Stepper); err != nil {
		return nil, err
	}

	x0s := make([]*models.State, len(gams))
	for i, g := range gams {
		x, err := models.NewState(cfg.Matsubara)
		if err != nil {
			return nil, err
		}
		models.Init(x, cfg.Init.Sig.Value(), g)
		x0s[i] = x
	}

	ens := sim.NewEnsemble[*models.State, complex128](sys, func() integrators.Stepper[*models.State] {
		st, _ := reg.GetStepper(cfg.Stepper)
		return st
	}).WithLogger(logger)

	begin := time.Now()
	results, err := ens.Run(ctx, x0s, SimConfig(cfg))
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("sweep finished", "points", len(gams), "elapsed", time.Since(begin))
	}

	points := make([]SweepPoint, len(results))
	for i, res := range results {
		points[i] = SweepPoint{
			Gam:      gams[i],
			FinalGam: models.Gam0(res.Final),
			MaxNorm:  res.MaxNorm(),
			Steps:    res.Steps,
			Rejected: res.Rejected,
		}
	}
	return points, nil
}

// Linspace returns n evenly spaced real values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []complex128 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []complex128{complex(lo, 0)}
	}
	out := make([]complex128, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = complex(lo+float64(i)*step, 0)
	}
	return out
}
