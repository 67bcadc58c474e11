package app

import (
	"fmt"

	"go.uber.org/fx"

	"demoready/internal/adapters/backend"
	"demoready/internal/adapters/database"
	pgrepo "demoready/internal/adapters/repository/postgres"
	"demoready/internal/adapters/validator"
	"demoready/internal/config"
	"demoready/internal/core/ports"
	"demoready/internal/platform/logger"
	"demoready/internal/platform/metrics"
	platformValidator "demoready/internal/platform/validator"
)

// Platform wires configuration, logging, metrics and the database pool that
// every command shares.
var Platform = fx.Options(
	fx.Provide(validated(config.LoadBase)),
	fx.Provide(validated(config.LoadDatabase)),
	fx.Provide(validated(config.LoadBackend)),
	fx.Provide(validated(config.LoadChecks)),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.LoggerSettings()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Provide(database.NewDatabaseLifecycle),

	fx.Provide(fx.Annotate(
		func(db *database.Lifecycle) *pgrepo.DiagnosticsRepository {
			return pgrepo.NewDiagnosticsRepository(db)
		},
		fx.As(new(ports.DatabaseDiagnostics)),
	)),
	fx.Provide(fx.Annotate(
		func(db *database.Lifecycle, cfg *config.ChecksConfig) *pgrepo.DemoDataRepository {
			return pgrepo.NewDemoDataRepository(db, pgrepo.DemoDataTables{
				Users:      cfg.Demo.UsersTable,
				RoleColumn: cfg.Demo.RoleColumn,
				Tables:     cfg.Demo.TablesTable,
			})
		},
		fx.As(new(ports.DemoDataRepository)),
	)),
	fx.Provide(NewAuthenticator),

	fx.Invoke(func(lc fx.Lifecycle, db *database.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: db.Start,
			OnStop:  db.Stop,
		})
	}),
)

// NewAuthenticator returns a nil Authenticator when no backend URL is set,
// which the auth check and probe treat as "not configured".
func NewAuthenticator(cfg *config.BackendConfig) (ports.Authenticator, error) {
	if !cfg.Backend.Configured() {
		return nil, nil
	}

	client, err := backend.NewClient(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

// validated wraps a config loader so the loaded value is checked against its
// validate tags before anything consumes it.
func validated[T any](load func() (*T, error)) func(platformValidator.Validator) (*T, error) {
	return func(v platformValidator.Validator) (*T, error) {
		cfg, err := load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := v.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
}
