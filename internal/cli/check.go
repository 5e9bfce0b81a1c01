package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/algocarelab/superset-config/internal/diagnose"
)

// ErrCheckFailed is returned by the check command when any finding is an
// error, so the process exits non-zero.
var ErrCheckFailed = errors.New("configuration check failed")

func newCheckCommand(a *app) *cobra.Command {
	var (
		ping    bool
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Look for mistakes in the assembled configuration",
		Long: `Run offline checks over the assembled configuration: beat schedule,
connection strings, Redis addresses, OAuth providers and the scheduled-query
form. With --ping the databases and Redis are also contacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.load()
			if err != nil {
				return err
			}

			checks := diagnose.DefaultChecks()
			if ping {
				checks = append(checks, diagnose.NewPingCheck(timeout))
			}

			report, err := diagnose.NewDoctor(a.log, checks...).Run(cmd.Context(), settings)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SEVERITY\tCHECK\tSUBJECT\tMESSAGE")
			for _, f := range report.Findings {
				if f.Severity == diagnose.SeverityInfo && !verbose {
					continue
				}
				msg := f.Message
				if f.Err != nil {
					msg += ": " + f.Err.Error()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Severity, f.Check, f.Subject, msg)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d error(s), %d warning(s)\n",
				report.Count(diagnose.SeverityError), report.Count(diagnose.SeverityWarning))

			if report.HasErrors() {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ping, "ping", false, "connect to the databases and Redis")
	cmd.Flags().DurationVar(&timeout, "timeout", diagnose.DefaultPingTimeout, "timeout of each ping")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print informational findings")

	return cmd
}
