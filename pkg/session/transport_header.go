package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport reads the session token from a request header.
// It never writes tokens to responses: SetToken and ClearToken are no-ops.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// HeaderOption is a functional option for HeaderTransport
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets the scheme prefix expected before the token.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// NewHeaderTransport creates a header-based transport with the "Bearer " prefix.
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// GetToken extracts the token. Values without the configured prefix are ignored.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrTokenNotFound
	}

	if t.prefix != "" {
		if !strings.HasPrefix(value, t.prefix) {
			return "", ErrTokenNotFound
		}
		value = strings.TrimPrefix(value, t.prefix)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrTokenNotFound
	}

	return value, nil
}

// SetToken is a no-op.
func (t *HeaderTransport) SetToken(http.ResponseWriter, string, time.Duration) error {
	return nil
}

// ClearToken is a no-op.
func (t *HeaderTransport) ClearToken(http.ResponseWriter) error {
	return nil
}
