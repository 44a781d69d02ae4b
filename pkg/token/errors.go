package token

import "errors"

var (
	ErrInvalidToken  = errors.New("token: invalid or expired token")
	ErrMissingSecret = errors.New("token: missing signing secret")
	ErrMissingClaims = errors.New("token: missing claims")
	ErrInvalidTTL    = errors.New("token: ttl must be positive")
)
