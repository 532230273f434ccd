package main

import (
	"context"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/frgflow/internal/experiment"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/storage"
	"github.com/san-kum/frgflow/internal/tui"
)

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	exp, err := experiment.New(cfg, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	var out *experiment.Outcome
	run := func(ctx context.Context) error {
		var err error
		out, err = exp.Run(ctx)
		return err
	}

	if live {
		mon := tui.NewMonitor(fmt.Sprintf("%s / %s", cfg.Model, cfg.Stepper), cfg.Start, cfg.End, 30)
		exp.Simulator().AddObserver(mon)
		err = mon.Run(ctx, run)
	} else {
		fmt.Printf("running %s flow with %s (N=%d)...\n", cfg.Model, cfg.Stepper, cfg.Matsubara)
		err = run(ctx)
	}
	if err != nil {
		return err
	}

	runID := "(not saved)"
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		if runID, err = st.Save(out.Metadata, out.Trajectory); err != nil {
			return err
		}
	}

	res := out.Result
	fmt.Println(summary("flow finished",
		kv{"run id", runID},
		kv{"elapsed", out.Elapsed},
		kv{"scale", fmt.Sprintf("%g -> %g", res.Times[0], res.FinalTime())},
		kv{"steps", res.Steps},
		kv{"rejected", res.Rejected},
		kv{"evaluations", res.Evaluations},
		kv{"norm", fmt.Sprintf("%.6g -> %.6g", res.Norms[0], res.Final.NormInf())},
		kv{"Gam0 final", formatComplex(models.Gam0(res.Final))},
	))

	fmt.Println("\nmetrics:")
	for _, name := range sortedNames(res.Metrics) {
		fmt.Printf("  %-12s %.6g\n", name, res.Metrics[name])
	}

	if showPlot && len(res.Norms) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.Norms,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("norm per accepted step"),
		))
	}
	return nil
}
