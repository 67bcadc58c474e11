package health

import (
	"context"
	"net/http"
	"time"

	"demoready/internal/adapters/http/response"
	"demoready/internal/core/domain/readiness"
	"demoready/internal/platform/logger"
)

type Runner interface {
	Run(ctx context.Context) readiness.Report
}

type ReadinessHandler struct {
	version string
	runner  Runner
}

func NewReadinessHandler(version string, runner Runner) *ReadinessHandler {
	return &ReadinessHandler{version: version, runner: runner}
}

// Check runs the full suite. Critical failures answer 503, warnings still 200.
func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	report := h.runner.Run(r.Context())

	body := NewReadinessResponse(h.version, report)

	statusCode := http.StatusOK
	if !report.ReadyForDemo {
		statusCode = http.StatusServiceUnavailable
		logger.FromContext(r.Context()).Warn("Readiness check failed",
			logger.String("status", string(body.Status)),
			logger.Strings("critical_issues", report.CriticalIssues))
	}

	response.RespondJSON(w, statusCode, body)
}

func NewReadinessResponse(version string, report readiness.Report) ReadinessResponse {
	checks := make(map[string][]CheckDetail, len(report.Checks))
	for _, nr := range report.Results() {
		checks[nr.Name] = []CheckDetail{NewCheckDetail(nr, report.Timestamp)}
	}

	notes := make([]string, 0, len(report.CriticalIssues)+len(report.Warnings))
	notes = append(notes, report.CriticalIssues...)
	notes = append(notes, report.Warnings...)

	return ReadinessResponse{
		Status:             overallStatus(report.Overall),
		Version:            version,
		ReadyForDemo:       report.ReadyForDemo,
		FallbacksAvailable: report.FallbacksAvailable,
		Notes:              notes,
		Checks:             checks,
	}
}

func NewCheckDetail(nr readiness.NamedResult, at time.Time) CheckDetail {
	return CheckDetail{
		ComponentId:   nr.Name,
		ComponentType: "dependency",
		Status:        checkStatus(nr.Result.Status),
		Critical:      nr.Result.Critical,
		ObservedValue: float64(nr.Result.Latency.Microseconds()) / 1000,
		ObservedUnit:  "ms",
		Time:          at,
		Output:        nr.Result.Message,
		Details:       nr.Result.Details,
	}
}

func overallStatus(overall readiness.Overall) Status {
	switch overall {
	case readiness.OverallReady:
		return StatusPass
	case readiness.OverallWarning:
		return StatusWarn
	default:
		return StatusFail
	}
}

func checkStatus(status readiness.Status) Status {
	switch status {
	case readiness.StatusPass:
		return StatusPass
	case readiness.StatusWarning:
		return StatusWarn
	default:
		return StatusFail
	}
}
