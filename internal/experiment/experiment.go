package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/metrics"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/sim"
	"github.com/san-kum/frgflow/internal/storage"
)

// Experiment is one configured flow: model, stepper, metrics and recorder.
type Experiment struct {
	cfg       *config.Config
	counter   *metrics.CountingSystem[*models.State]
	simulator *sim.Simulator[*models.State, complex128]
	recorder  *Recorder
	logger    *slog.Logger
}

// Outcome is a finished run ready to store or print.
type Outcome struct {
	Result     *sim.Result[*models.State]
	Trajectory storage.Trajectory
	Metadata   storage.RunMetadata
	Elapsed    time.Duration
}

func New(cfg *config.Config, reg *Registry, logger *slog.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sys, err := reg.GetModel(cfg.Model, cfg, logger)
	if err != nil {
		return nil, err
	}
	stepper, err := reg.GetStepper(cfg.Stepper)
	if err != nil {
		return nil, err
	}

	e := &Experiment{
		cfg:      cfg,
		counter:  metrics.NewCountingSystem[*models.State](sys),
		recorder: NewRecorder(),
		logger:   logger,
	}
	e.simulator = sim.New[*models.State, complex128](e.counter, stepper).WithLogger(logger)
	for _, m := range reg.DefaultMetrics() {
		e.simulator.AddMetric(m)
	}
	e.simulator.AddMetric(e.counter)
	e.simulator.AddObserver(e.recorder)
	return e, nil
}

// InitialState allocates the grids and fills them from the config.
func (e *Experiment) InitialState() (*models.State, error) {
	x, err := models.NewState(e.cfg.Matsubara)
	if err != nil {
		return nil, err
	}
	models.Init(x, e.cfg.Init.Sig.Value(), e.cfg.Init.Gam.Value())
	return x, nil
}

func (e *Experiment) SimConfig() sim.Config {
	return SimConfig(e.cfg)
}

// SimConfig maps a flow config onto the integration driver's config.
func SimConfig(cfg *config.Config) sim.Config {
	sc := sim.DefaultConfig()
	sc.Start = cfg.Start
	sc.End = cfg.End
	sc.Dt = cfg.Dt
	sc.AbsTol = cfg.AbsTol
	sc.RelTol = cfg.RelTol
	sc.MaxDt = cfg.MaxDt
	sc.Adaptive = cfg.Adaptive
	return sc
}

func (e *Experiment) Run(ctx context.Context) (*Outcome, error) {
	x0, err := e.InitialState()
	if err != nil {
		return nil, err
	}
	e.logger.Info("initial state",
		"norm", x0.NormInf(),
		"gam0", fmt.Sprint(models.Gam0(x0)),
		"cells", models.Sig(x0).Len()+models.Gam(x0).Len())

	e.recorder.Reset()
	begin := time.Now()
	res, err := e.simulator.Run(ctx, x0, e.SimConfig())
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Result:     res,
		Trajectory: e.recorder.Trajectory(),
		Metadata:   e.metadata(res),
		Elapsed:    time.Since(begin),
	}
	e.logger.Info("final state", "gam0", fmt.Sprint(models.Gam0(res.Final)), "elapsed", out.Elapsed)
	return out, nil
}

func (e *Experiment) metadata(res *sim.Result[*models.State]) storage.RunMetadata {
	c := e.cfg
	return storage.RunMetadata{
		Model:       c.Model,
		Stepper:     c.Stepper,
		Matsubara:   c.Matsubara,
		Start:       c.Start,
		End:         c.End,
		Dt:          c.Dt,
		AbsTol:      c.AbsTol,
		RelTol:      c.RelTol,
		Adaptive:    c.Adaptive,
		Steps:       res.Steps,
		Rejected:    res.Rejected,
		Evaluations: res.Evaluations,
		Metrics:     res.Metrics,
	}
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator[*models.State, complex128] {
	return e.simulator
}
