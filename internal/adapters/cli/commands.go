package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	httpAdapter "demoready/internal/adapters/http"
	"demoready/internal/app"
	"demoready/internal/config"
	"demoready/internal/core/usecase/narrative"
	"demoready/internal/core/usecase/probe"
	readinessUsecase "demoready/internal/core/usecase/readiness"
	"demoready/internal/platform/logger"
	"demoready/internal/version"
)

func newReadyCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Run every readiness check and print the report",
		Long:  "Runs the checks in order and prints the report. Exits 1 when a critical check failed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				coordinator *readinessUsecase.Coordinator
				cfg         *config.ChecksConfig
			)
			s, err := rt.start(cmd.Context(), fx.Options(app.Platform, app.Checks), &coordinator, &cfg)
			if err != nil {
				return err
			}
			defer s.close()

			report := coordinator.Run(s.ctx)
			rendered, err := coordinator.Render(report, cfg.Output.Format)
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)

			if !report.ReadyForDemo {
				return ErrNotReady
			}
			return nil
		},
	}
}

func newProbeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Time the demo's hot paths and rate each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var prober *probe.Prober
			s, err := rt.start(cmd.Context(), fx.Options(app.Platform, app.Probe), &prober)
			if err != nil {
				return err
			}
			defer s.close()

			report, err := prober.Run(s.ctx)
			if err != nil {
				return fmt.Errorf("failed to run probe: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), probe.FormatText(report))
			return nil
		},
	}
}

type reportDependencies struct {
	coordinator *readinessUsecase.Coordinator
	prober      *probe.Prober
	writer      *narrative.Writer
	report      *config.ReportConfig
	backend     *config.BackendConfig
	database    *config.DatabaseConfig
}

func newReportCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run checks and probe, then write the markdown test report",
		Long:  "Writes to REPORT_OUTPUT_PATH when set, otherwise to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var deps reportDependencies
			s, err := rt.start(cmd.Context(),
				fx.Options(app.Platform, app.Checks, app.Probe, app.Report),
				&deps.coordinator, &deps.prober, &deps.writer, &deps.report, &deps.backend, &deps.database,
			)
			if err != nil {
				return err
			}
			defer s.close()

			ready := deps.coordinator.Run(s.ctx)
			perf, err := deps.prober.Run(s.ctx)
			if err != nil {
				return fmt.Errorf("failed to run probe: %w", err)
			}

			doc := deps.writer.Document(environment(deps), ready, perf)

			path := deps.report.Report.OutputPath
			if path == "" {
				return deps.writer.Write(cmd.OutOrStdout(), doc)
			}
			if err := writeFile(path, func(w io.Writer) error { return deps.writer.Write(w, doc) }); err != nil {
				return err
			}
			s.log.Info("Report written", logger.String("path", path), logger.Bool("ready_for_demo", ready.ReadyForDemo))
			return nil
		},
	}
}

func environment(deps reportDependencies) narrative.Environment {
	info := version.Info()
	return narrative.Environment{
		Name:         deps.report.Environment,
		Version:      info.Version,
		GoVersion:    info.GoVersion,
		Platform:     info.Platform,
		BackendURL:   deps.backend.Backend.URL,
		DatabaseHost: deps.database.Postgres.Host,
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}

func newServeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the checks over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var srv *httpAdapter.Server
			s, err := rt.start(cmd.Context(), fx.Options(app.Platform, app.Checks, app.HTTP), &srv)
			if err != nil {
				return err
			}
			defer s.close()

			s.log.Info("Serving readiness checks", logger.String("addr", srv.Addr()))

			select {
			case sig := <-s.app.Done():
				s.log.Info("Shutting down", logger.String("signal", sig.String()))
			case <-s.ctx.Done():
				s.log.Info("Shutting down", logger.Error(s.ctx.Err()))
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
