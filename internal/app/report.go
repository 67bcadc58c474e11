package app

import (
	"go.uber.org/fx"

	"demoready/internal/config"
	"demoready/internal/core/usecase/narrative"
)

var Report = fx.Options(
	fx.Provide(validated(config.LoadReport)),
	fx.Provide(func(cfg *config.ReportConfig) (*narrative.Writer, error) {
		return narrative.NewWriter(cfg.Report.Title)
	}),
)
