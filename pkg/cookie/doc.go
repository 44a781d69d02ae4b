// Package cookie provides a small HTTP cookie manager with shared default attributes.
//
// A Manager carries default Options (path, domain, max-age, secure, http-only,
// same-site) applied to every cookie it writes; per-call Options override them.
// Writes always append a new Set-Cookie header through http.SetCookie, so cookies
// set by other components on the same response are preserved.
//
// Values are stored verbatim. Callers that need integrity protection store an
// already signed value (for example a JWT).
//
// # Usage
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	_ = man.Set(w, "petpal_token", tok, cookie.WithMaxAge(7*24*3600))
//	tok, err := man.Get(r, "petpal_token")
//	man.Delete(w, "petpal_token")
//
// # Configuration
//
// Config can be loaded from the environment with github.com/caarlos0/env:
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	man := cookie.NewFromConfig(cfg)
package cookie
