package health

import (
	"context"
	"sync"
	"time"

	"demoready/internal/core/domain/readiness"
)

type Checker interface {
	Name() string
	Check(ctx context.Context) readiness.CheckResult
}

// Observer is notified after each check completes.
type Observer func(ctx context.Context, result readiness.NamedResult)

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) []readiness.NamedResult
	CheckOne(ctx context.Context, name string) (readiness.NamedResult, bool)
	Names() []string
}

type Manager struct {
	checkers  []Checker
	observers []Observer
	now       func() time.Time
	mu        sync.RWMutex
}

// Compile-time interface check
var _ ManagerInterface = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{
		checkers: make([]Checker, 0),
		now:      time.Now,
	}
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

func (m *Manager) Observe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

func (m *Manager) snapshot() ([]Checker, []Observer) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)

	return checkers, observers
}

// CheckAll runs every checker one after another in registration order. A
// failing check never stops the ones after it.
func (m *Manager) CheckAll(ctx context.Context) []readiness.NamedResult {
	checkers, observers := m.snapshot()

	results := make([]readiness.NamedResult, 0, len(checkers))
	for _, checker := range checkers {
		results = append(results, m.run(ctx, checker, observers))
	}

	return results
}

func (m *Manager) CheckOne(ctx context.Context, name string) (readiness.NamedResult, bool) {
	checkers, observers := m.snapshot()

	for _, checker := range checkers {
		if checker.Name() == name {
			return m.run(ctx, checker, observers), true
		}
	}

	return readiness.NamedResult{}, false
}

func (m *Manager) Names() []string {
	checkers, _ := m.snapshot()

	names := make([]string, 0, len(checkers))
	for _, checker := range checkers {
		names = append(names, checker.Name())
	}
	return names
}

func (m *Manager) run(ctx context.Context, checker Checker, observers []Observer) readiness.NamedResult {
	start := m.now()
	result := checker.Check(ctx)
	result.Latency = m.now().Sub(start)

	named := readiness.NamedResult{Name: checker.Name(), Result: result}
	for _, observe := range observers {
		observe(ctx, named)
	}

	return named
}
