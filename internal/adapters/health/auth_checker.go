package health

import (
	"context"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
)

type AuthChecker struct {
	auth     ports.Authenticator
	email    string
	password string
}

// Compile-time interface check
var _ health.Checker = (*AuthChecker)(nil)

// NewAuthChecker accepts a nil authenticator for a backend that is not
// configured; the check then warns instead of signing in.
func NewAuthChecker(auth ports.Authenticator, email, password string) *AuthChecker {
	return &AuthChecker{auth: auth, email: email, password: password}
}

func (c *AuthChecker) Name() string {
	return readiness.CheckAuth
}

func (c *AuthChecker) Check(ctx context.Context) readiness.CheckResult {
	if c.auth == nil {
		return readiness.Warning("Backend URL is not configured, sign-in not tested", false)
	}
	if c.email == "" || c.password == "" {
		return readiness.Warning("Demo credentials are not configured, sign-in not tested", false)
	}

	session, err := c.auth.SignIn(ctx, c.email, c.password)
	if err != nil {
		return readiness.Warning("Demo sign-in failed: "+err.Error(), false).
			WithDetails(map[string]any{"email": c.email, "error": err.Error()})
	}

	if err := c.auth.SignOut(ctx, session); err != nil {
		return readiness.Warning("Demo sign-out failed: "+err.Error(), false).
			WithDetails(map[string]any{"email": c.email, "error": err.Error()})
	}

	return readiness.Pass("Demo account signed in and out", false).
		WithDetails(map[string]any{"email": c.email})
}
