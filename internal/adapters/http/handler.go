package http

import (
	"errors"
	"net/http"

	"demoready/internal/adapters/http/response"
	httpErrors "demoready/internal/platform/http"
	"demoready/internal/platform/logger"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders *httpErrors.Error values with their status code and
// hides everything else behind a 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			response.RespondHTTPError(w, httpErr)
			return
		}

		logger.FromContext(r.Context()).Error("Unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondHTTPError(w, httpErrors.NewInternal(err))
	}
}
