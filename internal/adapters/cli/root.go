package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"demoready/internal/config"
)

// ErrNotReady is returned by the ready command when a critical check failed.
var ErrNotReady = errors.New("application is not ready for demo")

type Options struct {
	// Modules are appended to every command's graph, after the defaults, so
	// callers can decorate or replace adapters.
	Modules []fx.Option
}

func NewRootCmd(opts Options) *cobra.Command {
	rt := &runtime{modules: opts.Modules}

	root := &cobra.Command{
		Use:   "demoready",
		Short: "Pre-demo readiness checks",
		Long: "demoready verifies that a demo environment is usable: configuration, database, " +
			"seeded data, authentication, API routes, project files and realtime delivery.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := config.LoadEnvFiles(); err != nil {
				return fmt.Errorf("failed to load env files: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(newReadyCommand(rt))
	root.AddCommand(newProbeCommand(rt))
	root.AddCommand(newReportCommand(rt))
	root.AddCommand(newServeCommand(rt))
	root.AddCommand(newVersionCommand())
	return root
}
