package account

import (
	"errors"
	"net/http"

	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/svc/auth"
)

var (
	errInvalidCredentials = handler.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	errInvalidResetToken  = handler.NewHTTPError(http.StatusBadRequest, "Invalid or expired token")
	errProfileConflict    = handler.NewHTTPError(http.StatusBadRequest, "Could not update profile")
	errWrongPassword      = handler.NewHTTPError(http.StatusBadRequest, "Current password incorrect")
	errPasswordNotSet     = handler.NewHTTPError(http.StatusBadRequest, "User not found")
)

// ErrorMapper translates svc/auth errors into client-facing HTTP errors.
func ErrorMapper(err error) (handler.HTTPError, bool) {
	var validation *auth.ValidationError
	switch {
	case errors.As(err, &validation):
		return handler.NewHTTPError(http.StatusBadRequest, validation.Message), true
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials, true
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		return handler.ErrUnauthorized, true
	case errors.Is(err, auth.ErrInvalidOrExpiredToken):
		return errInvalidResetToken, true
	case errors.Is(err, auth.ErrStoreConflict):
		return errProfileConflict, true
	case errors.Is(err, auth.ErrCurrentPasswordIncorrect):
		return errWrongPassword, true
	case errors.Is(err, auth.ErrPasswordNotSet):
		return errPasswordNotSet, true
	}
	return handler.HTTPError{}, false
}
