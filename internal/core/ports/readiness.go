package ports

import (
	"context"
	"errors"

	"demoready/internal/core/domain/run"
)

type DatabaseDiagnostics interface {
	Ping(ctx context.Context) error
	SelectOne(ctx context.Context) error
}

type DemoDataRepository interface {
	// CountUsersByRole returns a count for every requested role, zero included.
	CountUsersByRole(ctx context.Context, roles []string) (map[string]int, error)
	CountTables(ctx context.Context) (int, error)
}

type Session struct {
	AccessToken string
	UserID      string
}

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, session Session) error
}

// Subscriber opens a push subscription. Subscribe blocks until the backend
// confirms the subscription or ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

type Subscription interface {
	Close() error
}

// ErrResolverUnavailable is returned by a Resolver that has nothing to ask.
// Callers skip name resolution rather than treat it as a failure.
var ErrResolverUnavailable = errors.New("no DNS servers configured")

type Resolver interface {
	Resolve(ctx context.Context, host string) ([]string, error)
}

type RunRepository interface {
	Save(ctx context.Context, r *run.Run) error
	GetByID(ctx context.Context, id string) (*run.Run, error)
	List(ctx context.Context) ([]*run.Run, error)
}
