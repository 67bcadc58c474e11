package runs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"demoready/internal/adapters/http/response"
	"demoready/internal/core/domain/run"
	httpErrors "demoready/internal/platform/http"
	"demoready/internal/platform/logger"
	"demoready/internal/platform/validator"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

type CreateRunRequest struct {
	Label string `json:"label" validate:"max=64"`
}

type RunSummary struct {
	ID           string `json:"id"`
	Label        string `json:"label,omitempty"`
	Overall      string `json:"overall"`
	ReadyForDemo bool   `json:"readyForDemo"`
	StartedAt    string `json:"startedAt"`
}

type ListRunsResponse struct {
	Runs  []RunSummary `json:"runs"`
	Total int          `json:"total"`
}

func (h *Handler) mapDomainError(err error) error {
	if errors.Is(err, run.ErrRunNotFound) {
		return httpErrors.NewNotFound(httpErrors.CodeRunNotFound, "Run not found", err)
	}
	return err
}

// CreateRun accepts an empty body as a run without a label.
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	var req CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		return httpErrors.NewBadRequest(httpErrors.CodeInvalidPayload, "Invalid request payload", err)
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			response.RespondValidation(w, validationErr)
			return nil
		}
		return httpErrors.NewBadRequest(httpErrors.CodeInvalidRequest, "Invalid request data", err)
	}

	created, err := h.manager.Create(r.Context(), req.Label)
	if err != nil {
		return err
	}

	response.RespondJSON(w, http.StatusCreated, created)
	return nil
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) error {
	found, err := h.manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, found)
	return nil
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) error {
	all, err := h.manager.List(r.Context())
	if err != nil {
		return err
	}

	out := ListRunsResponse{Runs: make([]RunSummary, 0, len(all)), Total: len(all)}
	for _, item := range all {
		out.Runs = append(out.Runs, RunSummary{
			ID:           item.ID,
			Label:        item.Label,
			Overall:      string(item.Report.Overall),
			ReadyForDemo: item.Ready(),
			StartedAt:    item.StartedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response.RespondJSON(w, http.StatusOK, out)
	return nil
}
