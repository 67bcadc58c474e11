package app

import (
	"go.uber.org/fx"

	"demoready/internal/config"
	"demoready/internal/core/ports"
	"demoready/internal/core/usecase/probe"
	"demoready/internal/platform/metrics"
)

var Probe = fx.Options(
	fx.Provide(validated(config.LoadProbe)),
	fx.Provide(NewProbeSteps),
	fx.Provide(func(steps []ports.ProbeStep, cfg *config.ProbeConfig, provider *metrics.Provider) *probe.Prober {
		return probe.NewProber(steps, ProbeSettings(cfg), provider)
	}),
)

func ProbeSettings(cfg *config.ProbeConfig) probe.Settings {
	return probe.Settings{
		Iterations:    cfg.Probe.Iterations,
		Rate:          cfg.Probe.Rate,
		FastThreshold: cfg.Probe.FastThreshold,
		SlowThreshold: cfg.Probe.SlowThreshold,
	}
}

func NewProbeSteps(
	cfg *config.ChecksConfig,
	db ports.DatabaseDiagnostics,
	demo ports.DemoDataRepository,
	auth ports.Authenticator,
) []ports.ProbeStep {
	return probe.Steps(db, demo, cfg.Demo.Roles, auth, probe.Credentials{
		Email:    cfg.Demo.Email,
		Password: cfg.Demo.Password,
	})
}
