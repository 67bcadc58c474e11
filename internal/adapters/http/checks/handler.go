package checks

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"demoready/internal/adapters/http/health"
	"demoready/internal/adapters/http/response"
	"demoready/internal/core/domain/readiness"
	usecase "demoready/internal/core/usecase/readiness"
	httpErrors "demoready/internal/platform/http"
)

type Runner interface {
	RunOne(ctx context.Context, name string) (readiness.NamedResult, error)
	Checks() []string
}

type Handler struct {
	runner Runner
	now    func() time.Time
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner, now: time.Now}
}

type ListChecksResponse struct {
	Checks []string `json:"checks"`
}

func (h *Handler) ListChecks(w http.ResponseWriter, _ *http.Request) error {
	response.RespondJSON(w, http.StatusOK, ListChecksResponse{Checks: h.runner.Checks()})
	return nil
}

// RunCheck runs a single named check. The status code is always 200 once the
// check has run; the outcome is in the body.
func (h *Handler) RunCheck(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")

	result, err := h.runner.RunOne(r.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownCheck) {
			return httpErrors.NewNotFound(httpErrors.CodeUnknownCheck, "Check not found", err)
		}
		return err
	}

	response.RespondJSON(w, http.StatusOK, health.NewCheckDetail(result, h.now()))
	return nil
}
