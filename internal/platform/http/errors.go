package http

import (
	"net/http"
)

// Error is returned by handlers to choose the response. Code is a stable
// identifier API clients can switch on; Message is for people.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

const (
	CodeRunNotFound    = "run_not_found"
	CodeUnknownCheck   = "unknown_check"
	CodeInvalidPayload = "invalid_payload"
	CodeInvalidRequest = "invalid_request"
	CodeInternal       = "internal_error"
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(statusCode int, code, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(code, message string, err error) *Error {
	return New(http.StatusNotFound, code, message, err)
}

func NewBadRequest(code, message string, err error) *Error {
	return New(http.StatusBadRequest, code, message, err)
}

// NewInternal hides err from the message; it is only kept for logging.
func NewInternal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
