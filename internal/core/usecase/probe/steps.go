package probe

import (
	"context"
	"fmt"

	"demoready/internal/core/ports"
)

const (
	StepPing          = "ping"
	StepTrivialRead   = "trivial_read"
	StepUsersByRole   = "users_by_role"
	StepDiningTables  = "dining_tables"
	StepAuthRoundTrip = "auth_round_trip"
)

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (s step) Name() string                  { return s.name }
func (s step) Run(ctx context.Context) error { return s.run(ctx) }

func NewStep(name string, run func(ctx context.Context) error) ports.ProbeStep {
	return step{name: name, run: run}
}

type Credentials struct {
	Email    string
	Password string
}

// Steps builds the standard probe. The auth round trip is included only when
// auth is non-nil and credentials are set.
func Steps(
	db ports.DatabaseDiagnostics,
	demo ports.DemoDataRepository,
	roles []string,
	auth ports.Authenticator,
	creds Credentials,
) []ports.ProbeStep {
	steps := []ports.ProbeStep{
		NewStep(StepPing, db.Ping),
		NewStep(StepTrivialRead, db.SelectOne),
		NewStep(StepUsersByRole, func(ctx context.Context) error {
			_, err := demo.CountUsersByRole(ctx, roles)
			return err
		}),
		NewStep(StepDiningTables, func(ctx context.Context) error {
			_, err := demo.CountTables(ctx)
			return err
		}),
	}

	if auth != nil && creds.Email != "" && creds.Password != "" {
		steps = append(steps, NewStep(StepAuthRoundTrip, func(ctx context.Context) error {
			session, err := auth.SignIn(ctx, creds.Email, creds.Password)
			if err != nil {
				return fmt.Errorf("failed to sign in: %w", err)
			}
			if err := auth.SignOut(ctx, session); err != nil {
				return fmt.Errorf("failed to sign out: %w", err)
			}
			return nil
		}))
	}

	return steps
}
