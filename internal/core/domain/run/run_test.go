package run

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"demoready/internal/core/domain/readiness"
)

func TestNew(t *testing.T) {
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	report := readiness.Aggregate([]readiness.NamedResult{
		{Name: readiness.CheckDatabase, Result: readiness.Pass("connected", true)},
	}, started.Add(1500*time.Millisecond))

	r := New("run-1", "before standup", started, report)

	assert.Equal(t, "run-1", r.GetID())
	assert.Equal(t, "before standup", r.Label)
	assert.Equal(t, 1500*time.Millisecond, r.Duration)
	assert.True(t, r.Ready())
}

func TestRun_NotReady(t *testing.T) {
	report := readiness.Aggregate([]readiness.NamedResult{
		{Name: readiness.CheckEnvironment, Result: readiness.Fail("missing BACKEND_URL", true)},
	}, time.Now())

	assert.False(t, New("run-2", "", report.Timestamp, report).Ready())
}
