package auth

import (
	"net/http"

	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/pkg/session"
)

// SessionVerifier validates session tokens. *Service implements it.
type SessionVerifier interface {
	VerifySession(token string) (*SessionClaims, error)
}

// RequireAuth rejects requests without a valid session token with
// 401 {"error":"Unauthorized"}. On success the claims are available through
// ClaimsFromContext.
func RequireAuth(verifier SessionVerifier, transport session.Transport) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, err := transport.GetToken(r)
			if err != nil {
				handler.WriteError(w, handler.ErrUnauthorized.Code, handler.ErrUnauthorized.Message)
				return
			}

			claims, err := verifier.VerifySession(tok)
			if err != nil {
				handler.WriteError(w, handler.ErrUnauthorized.Code, handler.ErrUnauthorized.Message)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
