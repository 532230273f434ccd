package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/frgflow/internal/analysis"
	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/storage"
)

// Comparison is one stepper's run of a shared configuration.
type Comparison struct {
	Stepper     string
	Adaptive    bool
	Steps       int
	Rejected    int
	Evaluations int
	FinalNorm   float64
	FinalGam    complex128
	StepStats   analysis.StepStats
	Elapsed     time.Duration
	Trajectory  storage.Trajectory
	Err         error
}

// Compare runs cfg once per stepper. Steppers without an error estimate run
// with constant steps. A failing stepper is reported in its row and does not
// stop the others.
func Compare(ctx context.Context, cfg *config.Config, reg *Registry, steppers []string, logger *slog.Logger) ([]Comparison, error) {
	rows := make([]Comparison, 0, len(steppers))
	for _, name := range steppers {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		c := cfg.Clone()
		c.Stepper = name
		c.Adaptive = cfg.Adaptive && reg.Adaptive(name)
		row := Comparison{Stepper: name, Adaptive: c.Adaptive}

		exp, err := New(c, reg, logger)
		if err != nil {
			return rows, err
		}
		out, err := exp.Run(ctx)
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}

		res := out.Result
		row.Steps = res.Steps
		row.Rejected = res.Rejected
		row.Evaluations = res.Evaluations
		row.FinalNorm = res.Final.NormInf()
		row.FinalGam = models.Gam0(res.Final)
		row.StepStats = analysis.Steps(res.StepSizes)
		row.Elapsed = out.Elapsed
		row.Trajectory = out.Trajectory
		rows = append(rows, row)
	}
	return rows, nil
}

// Convergence runs cfg with constant steps of each size in dts and measures
// the final-state error against a tight adaptive Dormand-Prince reference.
// It returns the fitted order and the error per step size.
func Convergence(ctx context.Context, cfg *config.Config, reg *Registry, stepper string, dts []float64, logger *slog.Logger) (float64, []float64, error) {
	ref := cfg.Clone()
	ref.Stepper = "dopri5"
	ref.Adaptive = true
	ref.AbsTol, ref.RelTol = 1e-12, 1e-12
	ref.MaxDt = 0
	refExp, err := New(ref, reg, logger)
	if err != nil {
		return 0, nil, err
	}
	want, err := refExp.Run(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("reference run: %w", err)
	}

	errs := make([]float64, len(dts))
	for i, dt := range dts {
		c := cfg.Clone()
		c.Stepper = stepper
		c.Adaptive = false
		c.Dt = dt
		exp, err := New(c, reg, logger)
		if err != nil {
			return 0, nil, err
		}
		out, err := exp.Run(ctx)
		if err != nil {
			return 0, nil, fmt.Errorf("dt=%g: %w", dt, err)
		}
		errs[i] = out.Result.Final.Sub(want.Result.Final).NormInf()
	}

	order, err := analysis.ObservedOrder(dts, errs)
	return order, errs, err
}
