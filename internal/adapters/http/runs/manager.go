package runs

import (
	"context"

	"demoready/internal/core/domain/run"
)

type Manager interface {
	Create(ctx context.Context, label string) (*run.Run, error)
	Get(ctx context.Context, id string) (*run.Run, error)
	List(ctx context.Context) ([]*run.Run, error)
}
