package health

import (
	"context"

	"github.com/stretchr/testify/mock"

	"demoready/internal/core/ports"
)

type mockDiagnostics struct {
	mock.Mock
}

func (m *mockDiagnostics) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockDiagnostics) SelectOne(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockDemoData struct {
	mock.Mock
}

func (m *mockDemoData) CountUsersByRole(ctx context.Context, roles []string) (map[string]int, error) {
	args := m.Called(ctx, roles)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

func (m *mockDemoData) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) SignIn(ctx context.Context, email, password string) (ports.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *mockAuthenticator) SignOut(ctx context.Context, session ports.Session) error {
	return m.Called(ctx, session).Error(0)
}

type mockSubscriber struct {
	mock.Mock
}

func (m *mockSubscriber) Subscribe(ctx context.Context, channel string) (ports.Subscription, error) {
	args := m.Called(ctx, channel)
	sub, _ := args.Get(0).(ports.Subscription)
	return sub, args.Error(1)
}

type mockSubscription struct {
	mock.Mock
}

func (m *mockSubscription) Close() error {
	return m.Called().Error(0)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, host string) ([]string, error) {
	args := m.Called(ctx, host)
	addrs, _ := args.Get(0).([]string)
	return addrs, args.Error(1)
}
