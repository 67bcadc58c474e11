package health

import (
	"context"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
)

type DatabaseChecker struct {
	db ports.DatabaseDiagnostics
}

// Compile-time interface check
var _ health.Checker = (*DatabaseChecker)(nil)

func NewDatabaseChecker(db ports.DatabaseDiagnostics) *DatabaseChecker {
	return &DatabaseChecker{db: db}
}

func (c *DatabaseChecker) Name() string {
	return readiness.CheckDatabase
}

func (c *DatabaseChecker) Check(ctx context.Context) readiness.CheckResult {
	if err := c.db.SelectOne(ctx); err != nil {
		return readiness.Fail("Database connection failed: "+err.Error(), true).
			WithDetails(map[string]any{"error": err.Error()})
	}

	return readiness.Pass("Database connection successful", true)
}
