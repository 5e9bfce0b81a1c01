package cli

import (
	"github.com/spf13/cobra"

	"github.com/algocarelab/superset-config/internal/config"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		format      string
		showSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the assembled configuration",
		Long: `Print the configuration exactly as the Superset process would receive it.
Secrets and connection passwords are masked unless --show-secrets is given.
Names only the override document defines are masked when they end in _KEY,
_TOKEN, _SECRET or _PASSWORD; their other values are printed as written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.load()
			if err != nil {
				return err
			}
			if !showSecrets {
				settings = settings.Redacted()
			}

			out, err := config.Render(settings, config.Format(format))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatJSON), "output format (json, yaml)")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print secrets and passwords in clear text")

	return cmd
}
