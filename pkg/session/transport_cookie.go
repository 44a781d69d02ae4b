package session

import (
	"net/http"
	"time"

	"github.com/petpal/petpal/pkg/cookie"
)

// CookieTransport implements Transport using a single named cookie.
type CookieTransport struct {
	cookieMgr  *cookie.Manager
	cookieName string
	options    []cookie.Option
}

// NewCookieTransport creates a cookie-based transport. Extra options are applied
// after the session defaults (Path=/, HttpOnly, SameSite=Lax, Max-Age=ttl).
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
		options:    opts,
	}
}

// GetToken extracts the session token from the cookie
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil || token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SetToken appends the session cookie; other Set-Cookie headers are preserved.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	return t.cookieMgr.Set(w, t.cookieName, token, t.attributes(int(ttl.Seconds()))...)
}

// ClearToken expires the session cookie on the client. It writes the same
// Path and Domain as SetToken, otherwise the browser keeps the original cookie.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	// Negative MaxAge serializes as "Max-Age=0".
	return t.cookieMgr.Set(w, t.cookieName, "", t.attributes(-1)...)
}

func (t *CookieTransport) attributes(maxAge int) []cookie.Option {
	opts := []cookie.Option{
		cookie.WithMaxAge(maxAge),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}
	return append(opts, t.options...)
}
