package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"demoready/internal/platform/logger"
)

const stopTimeout = 10 * time.Second

// runtime builds one fx application per command invocation.
type runtime struct {
	modules []fx.Option
}

type session struct {
	app *fx.App
	log logger.Logger
	ctx context.Context
}

// start builds the graph from modules, fills targets and runs the OnStart
// hooks. The returned session carries a context holding the logger.
func (r *runtime) start(ctx context.Context, modules fx.Option, targets ...any) (*session, error) {
	var log logger.Logger

	app := fx.New(
		modules,
		fx.Options(r.modules...),
		fx.NopLogger,
		fx.Populate(append(targets, &log)...),
	)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start application: %w", err)
	}

	return &session{
		app: app,
		log: log,
		ctx: logger.WithLogger(ctx, log),
	}, nil
}

func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := s.app.Stop(ctx); err != nil {
		s.log.Warn("Failed to stop application cleanly", logger.Error(err))
	}
	// stderr cannot be synced on some platforms
	_ = s.log.Sync()
}
