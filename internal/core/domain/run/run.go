package run

import (
	"errors"
	"time"

	"demoready/internal/core/domain/readiness"
)

var ErrRunNotFound = errors.New("run not found")

// Run is one recorded execution of the readiness suite.
type Run struct {
	ID        string           `json:"id"`
	Label     string           `json:"label,omitempty"`
	StartedAt time.Time        `json:"startedAt"`
	Duration  time.Duration    `json:"duration"`
	Report    readiness.Report `json:"report"`
}

func New(id, label string, startedAt time.Time, report readiness.Report) *Run {
	return &Run{
		ID:        id,
		Label:     label,
		StartedAt: startedAt,
		Duration:  report.Timestamp.Sub(startedAt),
		Report:    report,
	}
}

func (r *Run) GetID() string {
	return r.ID
}

func (r *Run) Ready() bool {
	return r.Report.ReadyForDemo
}
