package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/platform/health"
	"demoready/internal/platform/logger"
)

var ErrUnknownCheck = errors.New("unknown check")

// CheckRecorder receives one sample per completed check.
type CheckRecorder interface {
	RecordCheck(ctx context.Context, name, status string, critical bool, latency time.Duration)
}

type Coordinator struct {
	checks health.ManagerInterface
	now    func() time.Time
}

func NewCoordinator(checks health.ManagerInterface) *Coordinator {
	return &Coordinator{checks: checks, now: time.Now}
}

// Run executes every registered check once and folds the results. A failing
// check never prevents the ones after it from running.
func (c *Coordinator) Run(ctx context.Context) readiness.Report {
	log := logger.FromContext(ctx)
	log.Info("Starting demo readiness checks", logger.Int("checks", len(c.checks.Names())))

	started := c.now()
	results := c.checks.CheckAll(ctx)
	report := readiness.Aggregate(results, c.now())

	fields := []logger.Field{
		logger.String("overall", string(report.Overall)),
		logger.Bool("ready_for_demo", report.ReadyForDemo),
		logger.Bool("fallbacks_available", report.FallbacksAvailable),
		logger.Int("critical_failures", report.CriticalFailures()),
		logger.Int("warnings", report.WarningCount()),
		logger.Duration("duration", report.Timestamp.Sub(started)),
	}
	if report.ReadyForDemo {
		log.Info("Readiness checks completed", fields...)
	} else {
		log.Warn("Readiness checks completed with critical failures", fields...)
	}

	return report
}

func (c *Coordinator) RunOne(ctx context.Context, name string) (readiness.NamedResult, error) {
	result, found := c.checks.CheckOne(ctx, name)
	if !found {
		return readiness.NamedResult{}, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
	}
	return result, nil
}

func (c *Coordinator) Checks() []string {
	return c.checks.Names()
}

func (c *Coordinator) TextReport(report readiness.Report) string {
	return readiness.FormatTextReport(report)
}

func (c *Coordinator) Render(report readiness.Report, format readiness.Format) (string, error) {
	return readiness.Render(report, format)
}

// NewObserver logs each check as it completes and forwards it to recorder,
// which may be nil.
func NewObserver(log logger.Logger, recorder CheckRecorder) health.Observer {
	return func(ctx context.Context, nr readiness.NamedResult) {
		fields := []logger.Field{
			logger.String("check", nr.Name),
			logger.String("status", string(nr.Result.Status)),
			logger.Bool("critical", nr.Result.Critical),
			logger.Duration("latency", nr.Result.Latency),
		}
		switch {
		case nr.Result.IsCriticalFailure():
			log.Error(nr.Result.Message, fields...)
		case nr.Result.Status == readiness.StatusPass:
			log.Debug(nr.Result.Message, fields...)
		default:
			log.Warn(nr.Result.Message, fields...)
		}

		if recorder != nil {
			recorder.RecordCheck(ctx, nr.Name, string(nr.Result.Status), nr.Result.Critical, nr.Result.Latency)
		}
	}
}
