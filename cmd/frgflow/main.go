package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/frgflow/internal/config"
)

var (
	dataDir    string
	verbosity  int
	configFile string
	preset     string

	model     string
	stepper   string
	matsubara int
	start     float64
	end       float64
	dt        float64
	absTol    float64
	relTol    float64
	maxDt     float64
	adaptive  bool
	rate      float64
	sigRe     float64
	sigIm     float64
	gamRe     float64
	gamIm     float64

	noSave    bool
	showPlot  bool
	live      bool
	column    string
	output    string
	logScale  bool
	sweepFrom float64
	sweepTo   float64
	sweepN    int
	orderDts  []float64
	perturb   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "frgflow",
		Short:         "functional RG flow integrator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".frgflow", "data directory")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (-v info, -vv debug)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a flow and store the run",
		Args:  cobra.NoArgs,
		RunE:  runFlow,
	}
	addFlowFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the norm after the run")
	runCmd.Flags().BoolVar(&live, "live", false, "show the flow while it runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "single column to plot (default: sig_norm and gam_norm)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render a stored run to an image (png, svg, pdf by extension)",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <run_id>.png)")
	exportPNGCmd.Flags().BoolVar(&logScale, "log", false, "log scale y axis")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "step size statistics of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [stepper1] [stepper2] ...",
		Short: "compare steppers on the same flow",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareSteppers,
	}
	addFlowFlags(compareCmd)
	compareCmd.Flags().StringVarP(&output, "output", "o", "", "also render the norms to this image")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the flow for a range of initial vertex values",
		Args:  cobra.NoArgs,
		RunE:  sweepVertex,
	}
	addFlowFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "first initial vertex value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 2.0, "last initial vertex value")
	sweepCmd.Flags().IntVar(&sweepN, "points", 8, "number of values")

	orderCmd := &cobra.Command{
		Use:   "order [stepper]",
		Short: "measure the convergence order of a stepper",
		Args:  cobra.ExactArgs(1),
		RunE:  measureOrder,
	}
	addFlowFlags(orderCmd)
	orderCmd.Flags().Float64SliceVar(&orderDts, "steps", []float64{0.1, 0.05, 0.025}, "step sizes")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "growth rate of a perturbation of the initial state",
		Args:  cobra.NoArgs,
		RunE:  measureStability,
	}
	addFlowFlags(stabilityCmd)
	stabilityCmd.Flags().Float64Var(&perturb, "eps", 1e-6, "perturbation size")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	rootCmd.AddCommand(runCmd, batchCmd, listCmd, plotCmd, exportJSONCmd, exportPNGCmd, analyzeCmd, presetsCmd, compareCmd, sweepCmd, orderCmd, stabilityCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func addFlowFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&model, "model", def.Model, "right-hand side")
	f.StringVar(&stepper, "stepper", def.Stepper, "stepper")
	f.IntVarP(&matsubara, "matsubara", "n", def.Matsubara, "number of positive fermionic frequencies")
	f.Float64Var(&start, "start", def.Start, "initial scale")
	f.Float64Var(&end, "end", def.End, "final scale")
	f.Float64Var(&dt, "dt", def.Dt, "initial (adaptive) or fixed step")
	f.Float64Var(&absTol, "abs-tol", def.AbsTol, "absolute error tolerance")
	f.Float64Var(&relTol, "rel-tol", def.RelTol, "relative error tolerance")
	f.Float64Var(&maxDt, "max-dt", def.MaxDt, "largest step, 0 for unbounded")
	f.BoolVar(&adaptive, "adaptive", def.Adaptive, "error controlled stepping")
	f.Float64Var(&rate, "rate", def.Rate, "decay rate (decay model)")
	f.Float64Var(&sigRe, "sig", real(def.Init.Sig.Value()), "initial self-energy, real part")
	f.Float64Var(&sigIm, "sig-im", imag(def.Init.Sig.Value()), "initial self-energy, imaginary part")
	f.Float64Var(&gamRe, "gam", real(def.Init.Gam.Value()), "initial vertex, real part")
	f.Float64Var(&gamIm, "gam-im", imag(def.Init.Gam.Value()), "initial vertex, imaginary part")
}

// buildConfig layers preset, config file and explicitly set flags, in that
// order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("model", func() { cfg.Model = model })
	set("stepper", func() { cfg.Stepper = stepper })
	set("matsubara", func() { cfg.Matsubara = matsubara })
	set("start", func() { cfg.Start = start })
	set("end", func() { cfg.End = end })
	set("dt", func() { cfg.Dt = dt })
	set("abs-tol", func() { cfg.AbsTol = absTol })
	set("rel-tol", func() { cfg.RelTol = relTol })
	set("max-dt", func() { cfg.MaxDt = maxDt })
	set("adaptive", func() { cfg.Adaptive = adaptive })
	set("rate", func() { cfg.Rate = rate })
	set("sig", func() { cfg.Init.Sig.Re = sigRe })
	set("sig-im", func() { cfg.Init.Sig.Im = sigIm })
	set("gam", func() { cfg.Init.Gam.Re = gamRe })
	set("gam-im", func() { cfg.Init.Gam.Im = gamIm })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
