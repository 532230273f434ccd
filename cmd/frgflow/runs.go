package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/frgflow/internal/analysis"
	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/export"
	"github.com/san-kum/frgflow/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSTEPPER\tTIME\tN\tSCALE\tSTEPS\tREJ\tEVALS\tFINAL NORM")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%g-%g\t%d\t%d\t%d\t%.6g\n",
			shortID(run.ID),
			run.Model,
			run.Stepper,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Matsubara,
			run.Start, run.End,
			run.Steps,
			run.Rejected,
			run.Evaluations,
			run.Metrics["final_norm"],
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, storage.Trajectory, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	traj, err := st.LoadTrajectory(meta.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(traj) == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", shortID(meta.ID))
	}
	return meta, traj, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s, stepper: %s\n", meta.Model, meta.Stepper)
	fmt.Printf("samples: %d\n\n", len(traj))

	if column != "" {
		data, err := traj.Column(column)
		if err != nil {
			return err
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(column+" per accepted step"),
		))
		return nil
	}

	sig, _ := traj.Column("sig_norm")
	gam, _ := traj.Column("gam_norm")
	fmt.Println(asciigraph.PlotMany([][]float64{sig, gam},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption("|Sig| (green) and |Gam| (yellow) per accepted step"),
	))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if output == "" {
		return st.Export(os.Stdout, args[0])
	}

	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if err := storage.ExportJSONFile(output, *meta, traj); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("exported to " + output))
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = shortID(meta.ID) + ".png"
	}

	times := traj.Times()
	series := make([]export.Series, 0, 3)
	for _, name := range []string{"norm", "sig_norm", "gam_norm"} {
		data, _ := traj.Column(name)
		series = append(series, export.Series{Name: name, X: times, Y: data})
	}

	opts := export.DefaultOptions()
	opts.Title = fmt.Sprintf("%s flow, %s", meta.Model, meta.Stepper)
	opts.LogY = logScale
	if err := export.Save(path, series, opts); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("exported to " + path))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	dts, _ := traj.Column("dt")
	dts = dts[1:]
	s := analysis.Steps(dts)

	fmt.Println(summary("step sizes: "+shortID(meta.ID),
		kv{"steps", s.Count},
		kv{"rejected", meta.Rejected},
		kv{"min", fmt.Sprintf("%.4g", s.Min)},
		kv{"max", fmt.Sprintf("%.4g", s.Max)},
		kv{"mean", fmt.Sprintf("%.4g", s.Mean)},
		kv{"stddev", fmt.Sprintf("%.4g", s.StdDev)},
		kv{"covered", fmt.Sprintf("%.6g", s.Total)},
	))

	if len(dts) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(dts,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("step size per accepted step"),
		))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMODEL\tSTEPPER\tN\tSCALE\tDT\tTOL\tINIT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		tol := "fixed"
		if p.Adaptive {
			tol = fmt.Sprintf("%g/%g", p.AbsTol, p.RelTol)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g-%g\t%g\t%s\tSig=%s Gam=%s\n",
			name, p.Model, p.Stepper, p.Matsubara, p.Start, p.End, p.Dt, tol,
			formatComplex(p.Init.Sig.Value()), formatComplex(p.Init.Gam.Value()))
	}
	return w.Flush()
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseSteppers(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
