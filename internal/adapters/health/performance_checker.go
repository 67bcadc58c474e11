package health

import (
	"context"
	"fmt"
	"time"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
)

type PerformanceChecker struct {
	db        ports.DatabaseDiagnostics
	threshold time.Duration
	now       func() time.Time
}

// Compile-time interface check
var _ health.Checker = (*PerformanceChecker)(nil)

func NewPerformanceChecker(db ports.DatabaseDiagnostics, threshold time.Duration) *PerformanceChecker {
	return &PerformanceChecker{db: db, threshold: threshold, now: time.Now}
}

func (c *PerformanceChecker) Name() string {
	return readiness.CheckPerformance
}

func (c *PerformanceChecker) Check(ctx context.Context) readiness.CheckResult {
	start := c.now()
	err := c.db.SelectOne(ctx)
	elapsed := c.now().Sub(start)

	details := map[string]any{
		"elapsed_ms":   elapsed.Milliseconds(),
		"threshold_ms": c.threshold.Milliseconds(),
	}

	if err != nil {
		details["error"] = err.Error()
		return readiness.Warning("Performance query failed: "+err.Error(), false).WithDetails(details)
	}

	if elapsed > c.threshold {
		return readiness.Warning(
			fmt.Sprintf("Query took %s, above the %s threshold", elapsed.Round(time.Millisecond), c.threshold),
			false,
		).WithDetails(details)
	}

	return readiness.Pass(fmt.Sprintf("Query completed in %s", elapsed.Round(time.Millisecond)), false).
		WithDetails(details)
}
