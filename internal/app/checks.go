package app

import (
	"go.uber.org/fx"

	"demoready/internal/adapters/database"
	"demoready/internal/adapters/health"
	"demoready/internal/adapters/realtime"
	"demoready/internal/adapters/resolver"
	"demoready/internal/config"
	"demoready/internal/core/ports"
	readinessUsecase "demoready/internal/core/usecase/readiness"
	platformHealth "demoready/internal/platform/health"
	"demoready/internal/platform/logger"
	"demoready/internal/platform/metrics"
)

// Checks wires the readiness checks in the order they run.
var Checks = fx.Options(
	fx.Provide(fx.Annotate(
		func(cfg *config.ChecksConfig) *resolver.Resolver {
			return resolver.NewResolver(cfg.DNS.Resolver, cfg.DNS.Timeout)
		},
		fx.As(new(ports.Resolver)),
	)),
	fx.Provide(fx.Annotate(
		func(db *database.Lifecycle, log logger.Logger) *realtime.Subscriber {
			return realtime.NewSubscriber(db.DSN(), log)
		},
		fx.As(new(ports.Subscriber)),
	)),
	fx.Provide(NewCheckers),
	fx.Provide(fx.Annotate(
		NewManager,
		fx.As(new(platformHealth.ManagerInterface)),
	)),
	fx.Provide(readinessUsecase.NewCoordinator),
)

type CheckDependencies struct {
	fx.In

	Config        *config.ChecksConfig
	Diagnostics   ports.DatabaseDiagnostics
	DemoData      ports.DemoDataRepository
	Authenticator ports.Authenticator
	Resolver      ports.Resolver
	Subscriber    ports.Subscriber
}

func NewCheckers(deps CheckDependencies) []platformHealth.Checker {
	cfg := deps.Config
	return []platformHealth.Checker{
		health.NewEnvChecker(cfg.Required.Env, nil),
		health.NewDatabaseChecker(deps.Diagnostics),
		health.NewDemoDataChecker(deps.DemoData, cfg.Demo.Roles),
		health.NewAuthChecker(deps.Authenticator, cfg.Demo.Email, cfg.Demo.Password),
		health.NewAPIChecker(cfg.App.URL, cfg.App.Endpoints, deps.Resolver),
		health.NewFileSystemChecker(cfg.Required.WorkDir, cfg.Required.Files, cfg.Required.Dirs),
		health.NewVoiceChecker(cfg.Voice.APIKeyEnv, nil, cfg.Required.WorkDir, cfg.Voice.Files),
		health.NewRealtimeChecker(deps.Subscriber, cfg.Realtime.Channel, cfg.Realtime.Timeout),
		health.NewPerformanceChecker(deps.Diagnostics, cfg.Performance.Threshold),
	}
}

func NewManager(checkers []platformHealth.Checker, log logger.Logger, provider *metrics.Provider) *platformHealth.Manager {
	m := platformHealth.NewManager()
	for _, checker := range checkers {
		m.Register(checker)
	}

	var recorder readinessUsecase.CheckRecorder
	if provider != nil {
		recorder = provider
	}
	if log == nil {
		log = logger.NewNop()
	}
	m.Observe(readinessUsecase.NewObserver(log, recorder))
	return m
}
