package health

import (
	"net/http"
	"time"

	"demoready/internal/adapters/http/response"
)

// LivenessHandler answers without touching any dependency; whether the demo
// is usable is the readiness handler's job.
type LivenessHandler struct {
	version string
	started time.Time
	now     func() time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{version: version, started: time.Now(), now: time.Now}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	now := h.now()
	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: now,
		Version:   h.version,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
	})
}
