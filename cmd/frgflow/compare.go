package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/frgflow/internal/analysis"
	"github.com/san-kum/frgflow/internal/experiment"
	"github.com/san-kum/frgflow/internal/export"
	"github.com/san-kum/frgflow/internal/models"
)

func compareSteppers(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	names := parseSteppers(args)
	rows, err := experiment.Compare(ctx, cfg, experiment.NewRegistry(), names, newLogger())
	if err != nil {
		return err
	}

	fmt.Printf("model: %s, N=%d, scale %g -> %g\n\n", cfg.Model, cfg.Matsubara, cfg.Start, cfg.End)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tMODE\tSTEPS\tREJ\tEVALS\tMEAN DT\tFINAL NORM\tGAM0\tTIME")
	series := make([]export.Series, 0, len(rows))
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t-\t%s\t-\n", r.Stepper, r.Err)
			continue
		}
		mode := "fixed"
		if r.Adaptive {
			mode = "adaptive"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.4g\t%.6g\t%s\t%v\n",
			r.Stepper, mode, r.Steps, r.Rejected, r.Evaluations,
			r.StepStats.Mean, r.FinalNorm, formatComplex(r.FinalGam), r.Elapsed)
		series = append(series, export.Series{
			Name: r.Stepper,
			X:    r.Trajectory.Times(),
			Y:    r.Trajectory.Norms(),
		})
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if output != "" {
		opts := export.DefaultOptions()
		opts.Title = fmt.Sprintf("%s flow, stepper comparison", cfg.Model)
		if err := export.Save(output, series, opts); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("\nexported to " + output))
	}
	return nil
}

func sweepVertex(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	gams := experiment.Linspace(sweepFrom, sweepTo, sweepN)
	points, err := experiment.Sweep(ctx, cfg, experiment.NewRegistry(), gams, newLogger())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAM INIT\tGAM0 FINAL\tMAX NORM\tSTEPS\tREJ")
	finals := make([]float64, len(points))
	for i, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%.6g\t%d\t%d\n",
			formatComplex(p.Gam), formatComplex(p.FinalGam), p.MaxNorm, p.Steps, p.Rejected)
		finals[i] = real(p.FinalGam)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("Re Gam0 at scale %g vs initial vertex", cfg.End)),
		))
	}
	return nil
}

func measureOrder(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	order, errs, err := experiment.Convergence(ctx, cfg, experiment.NewRegistry(), args[0], orderDts, newLogger())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tERROR")
	for i, h := range orderDts {
		fmt.Fprintf(w, "%g\t%.3e\n", h, errs[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(summary("convergence", kv{"stepper", args[0]}, kv{"observed", fmt.Sprintf("%.3f", order)}))
	return nil
}

func measureStability(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	reg := experiment.NewRegistry()
	exp, err := experiment.New(cfg, reg, newLogger())
	if err != nil {
		return err
	}
	x0, err := exp.InitialState()
	if err != nil {
		return err
	}
	sys, err := reg.GetModel(cfg.Model, cfg, nil)
	if err != nil {
		return err
	}
	st, err := reg.GetStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	dx := x0.Zero().AddScalarAssign(complex(perturb, 0))
	lambda := analysis.LyapunovExponent[*models.State, complex128](sys, st, x0, dx, cfg.Start, cfg.End, cfg.Dt)

	verdict := "contracting"
	switch {
	case math.IsNaN(lambda):
		verdict = "diverged"
	case lambda > 0:
		verdict = "expanding"
	}

	fmt.Println(summary("perturbation growth",
		kv{"model", cfg.Model},
		kv{"stepper", st.Name()},
		kv{"eps", perturb},
		kv{"rate", fmt.Sprintf("%.6g", lambda)},
		kv{"verdict", verdict},
	))
	return nil
}
