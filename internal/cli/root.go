package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/algocarelab/superset-config/internal/config"
	"github.com/algocarelab/superset-config/internal/logger"
)

const appName = "superset-config"

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// app is the state shared by all commands of one invocation.
type app struct {
	searchPath []string
	logLevel   string

	// environ replaces the process environment when non-nil
	environ map[string]string
	now     func() time.Time
	build   BuildInfo

	log *logger.Logger
}

// NewRootCommand returns the command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	return newRootCommand(&app{build: build, now: time.Now})
}

// Execute runs the command line against os.Args.
func Execute(build BuildInfo) error {
	return NewRootCommand(build).Execute()
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Assemble the Superset deployment configuration",
		Long: `superset-config assembles the configuration of a containerized Superset
deployment from environment variables, an optional superset_config_docker
override document and a fixed block of settings no deployment may change.

The result can be rendered, checked for common mistakes and its periodic
jobs previewed.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringSliceVar(&a.searchPath, "search-path", nil,
		"directory probed for the override document (repeatable, default $SUPERSET_CONFIG_PATH or /app/pythonpath,.)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Disable completion command
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newCheckCommand(a))
	root.AddCommand(newScheduleCommand(a))
	root.AddCommand(newVersionCommand(a))

	return root
}

// setup configures logging. Logs go to stderr so stdout only carries the
// command's output.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := logger.SetLevel(a.logLevel); err != nil {
		return err
	}
	a.log = logger.New(cmd.ErrOrStderr(), appName)
	return nil
}

func (a *app) load() (*config.Settings, error) {
	var opts []config.Option
	if len(a.searchPath) > 0 {
		opts = append(opts, config.WithSearchPath(a.searchPath...))
	}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}

	settings, err := config.Load(a.log, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
