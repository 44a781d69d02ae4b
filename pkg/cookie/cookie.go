package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads cookies using a shared set of default attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set appends a Set-Cookie header. Existing Set-Cookie headers are kept.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie immediately (empty value, Max-Age=0).
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: "",
		Path:  m.defaults.Path,
		// Negative MaxAge serializes as "Max-Age=0".
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Domain:   m.defaults.Domain,
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

// Defaults returns a copy of the manager's default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}
