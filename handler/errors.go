package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries the status code and the client-facing message.
// Err, when set, is the underlying cause and is only logged.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error { return e.Err }

// WithCause returns a copy of e wrapping err.
func (e HTTPError) WithCause(err error) HTTPError {
	e.Err = err
	return e
}

var (
	ErrServer             = NewHTTPError(http.StatusInternalServerError, "Server error")
	ErrUnauthorized       = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrMethodNotAllowed   = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	ErrNotFound           = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInvalidRequestBody = NewHTTPError(http.StatusBadRequest, "Invalid request body")
)
