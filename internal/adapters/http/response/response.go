package response

import (
	"encoding/json"
	"net/http"

	httpErrors "demoready/internal/platform/http"
	"demoready/internal/platform/validator"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

func RespondHTTPError(w http.ResponseWriter, err *httpErrors.Error) {
	RespondJSON(w, err.StatusCode, ErrorResponse{Error: err.Error(), Code: err.Code})
}

func RespondValidation(w http.ResponseWriter, err validator.ValidationError) {
	out := ValidationErrorResponse{Errors: make([]FieldError, 0, len(err.Errors))}
	for _, fe := range err.Errors {
		out.Errors = append(out.Errors, FieldError{Field: fe.Field, Message: fe.Message})
	}
	RespondJSON(w, http.StatusBadRequest, out)
}
