package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/algocarelab/superset-config/internal/diagnose"
)

func newScheduleCommand(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show when the periodic jobs fire next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			settings, err := a.load()
			if err != nil {
				return err
			}

			runs, err := diagnose.NextRuns(settings, a.now(), count)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTASK\tCRONTAB\tNEXT")
			for _, run := range runs {
				for _, next := range run.Next {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", run.Name, run.Task, run.Spec, next.Format(time.RFC3339))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of upcoming runs per job")

	return cmd
}
