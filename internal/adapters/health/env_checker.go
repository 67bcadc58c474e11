package health

import (
	"context"
	"fmt"
	"os"
	"strings"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/platform/health"
)

type EnvChecker struct {
	required []string
	lookup   readiness.LookupFunc
}

// Compile-time interface check
var _ health.Checker = (*EnvChecker)(nil)

func NewEnvChecker(required []string, lookup readiness.LookupFunc) *EnvChecker {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvChecker{required: required, lookup: lookup}
}

func (c *EnvChecker) Name() string {
	return readiness.CheckEnvironment
}

func (c *EnvChecker) Check(context.Context) readiness.CheckResult {
	missing := readiness.MissingVariables(c.required, c.lookup)
	if len(missing) > 0 {
		return readiness.Fail(
			fmt.Sprintf("Missing %d required environment variable(s): %s", len(missing), strings.Join(missing, ", ")),
			true,
		).WithDetails(map[string]any{"missing": missing, "required": len(c.required)})
	}

	return readiness.Pass(fmt.Sprintf("All %d required environment variables are set", len(c.required)), true)
}
