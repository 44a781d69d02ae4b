// Package session binds a stateless session token to the HTTP request/response cycle.
//
// The server keeps no session table: the token itself (a signed JWT) is the
// session. This package only decides where the token travels. A Transport
// extracts the token from a request, attaches it to a response and clears it.
//
// Two transports ship with the package:
//
//   - CookieTransport stores the token in an HttpOnly cookie. Attaching appends a
//     Set-Cookie header and never touches the response body.
//   - HeaderTransport reads "Authorization: Bearer <token>". It is read-only:
//     tokens are never written into response headers.
//
// CompositeTransport chains them so the cookie wins and the bearer header is the
// fallback:
//
//	tr := session.NewCompositeTransport(
//	    session.NewCookieTransport(cookie.New(), "petpal_token"),
//	    session.NewHeaderTransport("Authorization"),
//	)
//
//	tok, err := tr.GetToken(r)          // ErrTokenNotFound when absent
//	_ = tr.SetToken(w, tok, 7*24*time.Hour)
//	_ = tr.ClearToken(w)
package session
