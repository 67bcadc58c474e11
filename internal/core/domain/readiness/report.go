package readiness

import (
	"fmt"
	"time"
)

type Report struct {
	Overall            Overall                `json:"overall" yaml:"overall"`
	Timestamp          time.Time              `json:"timestamp" yaml:"timestamp"`
	Checks             map[string]CheckResult `json:"checks" yaml:"checks"`
	Order              []string               `json:"order" yaml:"order"`
	CriticalIssues     []string               `json:"criticalIssues" yaml:"criticalIssues"`
	Warnings           []string               `json:"warnings" yaml:"warnings"`
	ReadyForDemo       bool                   `json:"readyForDemo" yaml:"readyForDemo"`
	FallbacksAvailable bool                   `json:"fallbacksAvailable" yaml:"fallbacksAvailable"`
}

// Aggregate folds check results into a report. Overall and ReadyForDemo depend
// only on the set of results, never on their order. A repeated name replaces
// the earlier result.
func Aggregate(results []NamedResult, at time.Time) Report {
	checks := make(map[string]CheckResult, len(results))
	order := make([]string, 0, len(results))
	for _, nr := range results {
		if _, seen := checks[nr.Name]; !seen {
			order = append(order, nr.Name)
		}
		checks[nr.Name] = nr.Result
	}

	report := Report{
		Timestamp:      at,
		Checks:         checks,
		Order:          order,
		CriticalIssues: []string{},
		Warnings:       []string{},
	}

	criticalFails := 0
	warnings := 0
	for _, name := range order {
		result := checks[name]
		line := fmt.Sprintf("%s: %s", name, result.Message)
		switch {
		case result.IsCriticalFailure():
			criticalFails++
			report.CriticalIssues = append(report.CriticalIssues, line)
		case result.Status == StatusWarning:
			warnings++
			report.Warnings = append(report.Warnings, line)
		case result.Status == StatusFail:
			// non-critical failures are surfaced but do not change the verdict
			report.Warnings = append(report.Warnings, line)
		}
	}

	switch {
	case criticalFails > 0:
		report.Overall = OverallFailed
		report.ReadyForDemo = false
	case warnings > 0:
		report.Overall = OverallWarning
		report.ReadyForDemo = true
	default:
		report.Overall = OverallReady
		report.ReadyForDemo = true
	}

	report.FallbacksAvailable = FallbacksAvailable(checks)

	return report
}

// FallbacksAvailable reports whether minimum viable connectivity exists.
// Database and files must pass outright; auth only has to not be failing.
func FallbacksAvailable(checks map[string]CheckResult) bool {
	db, ok := checks[CheckDatabase]
	if !ok || db.Status != StatusPass {
		return false
	}
	files, ok := checks[CheckFileSystem]
	if !ok || files.Status != StatusPass {
		return false
	}
	if auth, ok := checks[CheckAuth]; ok && auth.Status == StatusFail {
		return false
	}
	return true
}

func (r Report) CriticalFailures() int {
	n := 0
	for _, result := range r.Checks {
		if result.IsCriticalFailure() {
			n++
		}
	}
	return n
}

func (r Report) WarningCount() int {
	n := 0
	for _, result := range r.Checks {
		if result.Status == StatusWarning {
			n++
		}
	}
	return n
}

// Results returns the checks in run order.
func (r Report) Results() []NamedResult {
	out := make([]NamedResult, 0, len(r.Order))
	for _, name := range r.Order {
		out = append(out, NamedResult{Name: name, Result: r.Checks[name]})
	}
	return out
}
