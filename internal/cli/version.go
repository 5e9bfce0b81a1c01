package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd, a.build)
		},
	}
}

func printBuildInfo(cmd *cobra.Command, build BuildInfo) {
	if build.Version == "" {
		build.Version = "N/A"
	}

	if build.Date == "" {
		build.Date = "N/A"
	}

	if build.Commit == "" {
		build.Commit = "N/A"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Build version: %s\n", build.Version)
	fmt.Fprintf(out, "Build date: %s\n", build.Date)
	fmt.Fprintf(out, "Build commit: %s\n", build.Commit)
}
