package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petpal/petpal/pkg/token"
)

const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "petpal_token"

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	token.Registered
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// UserID parses the id claim.
func (c *SessionClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// IssueSession signs a session token for user.
func (s *Service) IssueSession(user *User) (string, error) {
	claims := &SessionClaims{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
	tok, err := s.signer.Issue(claims, PurposeSession, s.cfg.SessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return tok, nil
}

// VerifySession returns the claims of a valid session token. Bad signature,
// wrong algorithm, wrong purpose, malformed input, expiry and a missing id
// all fail with ErrInvalidToken.
func (s *Service) VerifySession(tokenString string) (*SessionClaims, error) {
	claims, err := token.Verify[SessionClaims](s.signer, tokenString, PurposeSession)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}

// SessionTTL is the lifetime of issued session tokens.
func (s *Service) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}
