package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/frgflow/internal/automation"
	"github.com/san-kum/frgflow/internal/experiment"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/storage"
)

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var st *storage.Store
	if !noSave {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("scenario %s: %d steps\n", sc.Name, len(sc.Steps))
	results, runErr := automation.Run(ctx, sc, experiment.NewRegistry(), st, newLogger())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN\tMODEL\tSTEPPER\tSTEPS\tREJ\tGAM0\tTIME")
	for _, r := range results {
		res := r.Outcome.Result
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%v\n",
			r.Label, shortID(r.RunID), r.Config.Model, r.Config.Stepper,
			res.Steps, res.Rejected, formatComplex(models.Gam0(res.Final)), r.Outcome.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}
