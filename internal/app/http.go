package app

import (
	"go.uber.org/fx"

	httpAdapter "demoready/internal/adapters/http"
	"demoready/internal/adapters/http/checks"
	healthHttp "demoready/internal/adapters/http/health"
	"demoready/internal/adapters/http/runs"
	"demoready/internal/adapters/repository/memory"
	"demoready/internal/config"
	"demoready/internal/core/ports"
	readinessUsecase "demoready/internal/core/usecase/readiness"
	runsUsecase "demoready/internal/core/usecase/runs"
	"demoready/internal/platform/logger"
	"demoready/internal/platform/metrics"
	"demoready/internal/version"
)

// HTTP wires serve mode. The server starts and stops with the fx lifecycle.
var HTTP = fx.Options(
	fx.Provide(validated(config.LoadHttp)),
	fx.Provide(fx.Annotate(memory.NewRunRepository, fx.As(new(ports.RunRepository)))),
	fx.Provide(fx.Annotate(
		func(repo ports.RunRepository, coordinator *readinessUsecase.Coordinator) *runsUsecase.Usecase {
			return runsUsecase.NewUsecase(repo, coordinator)
		},
		fx.As(new(runs.Manager)),
	)),
	fx.Provide(runs.NewHandler),
	fx.Provide(func(coordinator *readinessUsecase.Coordinator) *checks.Handler {
		return checks.NewHandler(coordinator)
	}),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(coordinator *readinessUsecase.Coordinator) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), coordinator)
	}),
	fx.Provide(func(
		cfg *config.HttpConfig,
		log logger.Logger,
		runsHandler *runs.Handler,
		checksHandler *checks.Handler,
		liveness *healthHttp.LivenessHandler,
		readiness *healthHttp.ReadinessHandler,
		provider *metrics.Provider,
	) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			RunsHandler:      runsHandler,
			ChecksHandler:    checksHandler,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  provider,
		}
	}),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(httpAdapter.NewServer),

	fx.Invoke(func(lc fx.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
