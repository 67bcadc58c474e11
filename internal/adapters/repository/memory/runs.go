package memory

import (
	"context"
	"errors"

	"demoready/internal/core/domain/run"
	"demoready/internal/core/ports"
	memoryPlatform "demoready/internal/platform/repository/memory"
)

const DefaultRunCapacity = 50

type RunRepository struct {
	*memoryPlatform.Repository[*run.Run]
}

// Compile-time interface check
var _ ports.RunRepository = (*RunRepository)(nil)

func NewRunRepository() *RunRepository {
	return &RunRepository{
		Repository: memoryPlatform.New[*run.Run](memoryPlatform.WithCapacity(DefaultRunCapacity)),
	}
}

func (r *RunRepository) GetByID(ctx context.Context, id string) (*run.Run, error) {
	entity, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, run.ErrRunNotFound
		}
		return nil, err
	}
	return entity, nil
}
