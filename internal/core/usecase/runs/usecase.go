package runs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/domain/run"
	"demoready/internal/core/ports"
	"demoready/internal/platform/logger"
)

type Runner interface {
	Run(ctx context.Context) readiness.Report
}

type Usecase struct {
	repo   ports.RunRepository
	runner Runner
	newID  func() string
	now    func() time.Time
}

func NewUsecase(repo ports.RunRepository, runner Runner) *Usecase {
	return &Usecase{
		repo:   repo,
		runner: runner,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Create runs the readiness suite once and stores the outcome.
func (uc *Usecase) Create(ctx context.Context, label string) (*run.Run, error) {
	log := logger.FromContext(ctx)

	id := uc.newID()
	log.Debug("Starting readiness run", logger.String("run_id", id), logger.String("label", label))

	started := uc.now()
	report := uc.runner.Run(ctx)
	r := run.New(id, label, started, report)

	if err := uc.repo.Save(ctx, r); err != nil {
		log.Error("Failed to store readiness run", logger.String("run_id", id), logger.Error(err))
		return nil, err
	}

	return r, nil
}

func (uc *Usecase) Get(ctx context.Context, id string) (*run.Run, error) {
	logger.FromContext(ctx).Debug("Getting readiness run", logger.String("run_id", id))
	return uc.repo.GetByID(ctx, id)
}

func (uc *Usecase) List(ctx context.Context) ([]*run.Run, error) {
	return uc.repo.List(ctx)
}
