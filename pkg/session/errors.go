package session

import "errors"

var (
	// ErrTokenNotFound indicates the request carries no session token.
	ErrTokenNotFound = errors.New("session.token_not_found")

	// ErrNoTransport indicates a composite transport was built without transports.
	ErrNoTransport = errors.New("session.no_transport")
)
