package catalog

import (
	"errors"
	"net/http"

	"github.com/petpal/petpal/handler"
)

var ErrPetNotFound = errors.New("catalog: pet not found")

// ValidationError reports a missing or invalid field. Message is shown to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// ErrorMapper translates catalog errors into HTTP errors.
func ErrorMapper(err error) (handler.HTTPError, bool) {
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		return handler.NewHTTPError(http.StatusBadRequest, validation.Message), true
	case errors.Is(err, ErrPetNotFound):
		return handler.NewHTTPError(http.StatusBadRequest, "Unknown pet"), true
	}
	return handler.HTTPError{}, false
}
