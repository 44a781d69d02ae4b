package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is implemented by any struct embedding Registered.
type Claims interface {
	jwt.Claims
	registered() *Registered
}

// Registered holds the claims managed by the Signer: issued-at, expiry and purpose.
// Embed it into a payload struct to make the struct a valid Claims type.
type Registered struct {
	jwt.RegisteredClaims
	Purpose string `json:"pur"`
}

func (r *Registered) registered() *Registered { return r }

// Signer mints and verifies HS256 tokens with a single process-wide secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSigner returns a Signer for the given secret.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	s := &Signer{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue stamps claims with purpose, issued-at and expiry (now + ttl) and signs them.
func (s *Signer) Issue(claims Claims, purpose string, ttl time.Duration) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	now := s.now()
	reg := claims.registered()
	reg.Purpose = purpose
	reg.IssuedAt = jwt.NewNumericDate(now)
	reg.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses tokenString into a fresh T and checks signature, algorithm,
// expiry and purpose. Any failure is reported as ErrInvalidToken.
func Verify[T any, PT interface {
	*T
	Claims
}](s *Signer, tokenString, purpose string) (*T, error) {
	claims := PT(new(T))

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.registered().Purpose != purpose {
		return nil, errors.Join(ErrInvalidToken, fmt.Errorf("purpose mismatch: %q", claims.registered().Purpose))
	}

	return (*T)(claims), nil
}

func (s *Signer) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.secret, nil
}
