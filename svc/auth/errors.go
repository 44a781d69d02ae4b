package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("auth: invalid credentials")
	ErrUnauthorized             = errors.New("auth: unauthorized")
	ErrInvalidToken             = errors.New("auth: invalid session token")
	ErrInvalidOrExpiredToken    = errors.New("auth: invalid or expired reset token")
	ErrStoreConflict            = errors.New("auth: could not update profile")
	ErrCurrentPasswordIncorrect = errors.New("auth: current password incorrect")
	ErrPasswordNotSet           = errors.New("auth: account has no password")
	ErrInsecureSecret           = errors.New("auth: explicit JWT secret required in production")
)

// Storage errors.
var (
	ErrUserNotFound = errors.New("auth: user not found")
	ErrEmailTaken   = errors.New("auth: email already registered")
)

// ValidationError reports a missing or malformed request field. Message is
// safe to show to clients.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
