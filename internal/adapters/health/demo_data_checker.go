package health

import (
	"context"
	"fmt"
	"strings"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
)

// DemoDataChecker verifies the seed data a demo walks through: at least one
// account per role and at least one dining table.
type DemoDataChecker struct {
	repo  ports.DemoDataRepository
	roles []string
}

// Compile-time interface check
var _ health.Checker = (*DemoDataChecker)(nil)

func NewDemoDataChecker(repo ports.DemoDataRepository, roles []string) *DemoDataChecker {
	return &DemoDataChecker{repo: repo, roles: roles}
}

func (c *DemoDataChecker) Name() string {
	return readiness.CheckDemoData
}

func (c *DemoDataChecker) Check(ctx context.Context) readiness.CheckResult {
	counts, err := c.repo.CountUsersByRole(ctx, c.roles)
	if err != nil {
		return readiness.Fail("Failed to query demo users: "+err.Error(), true).
			WithDetails(map[string]any{"error": err.Error()})
	}

	missing := make([]string, 0)
	for _, role := range c.roles {
		if counts[role] == 0 {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return readiness.Fail(
			fmt.Sprintf("No demo users for role(s): %s", strings.Join(missing, ", ")),
			true,
		).WithDetails(map[string]any{"users_by_role": counts, "missing_roles": missing})
	}

	tables, err := c.repo.CountTables(ctx)
	if err != nil {
		return readiness.Fail("Failed to query dining tables: "+err.Error(), true).
			WithDetails(map[string]any{"users_by_role": counts, "error": err.Error()})
	}
	if tables == 0 {
		return readiness.Fail("No dining tables found", false).
			WithDetails(map[string]any{"users_by_role": counts, "tables": 0})
	}

	users := 0
	for _, n := range counts {
		users += n
	}

	return readiness.Pass(fmt.Sprintf("Found %d demo user(s) and %d table(s)", users, tables), true).
		WithDetails(map[string]any{"users_by_role": counts, "tables": tables})
}
