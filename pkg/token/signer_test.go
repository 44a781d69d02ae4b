package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petpal/petpal/pkg/token"
)

type testClaims struct {
	token.Registered
	ID    string `json:"id"`
	Email string `json:"email"`
}

// clock is a manually advanced time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newSigner(t *testing.T, secret string, c *clock) *token.Signer {
	t.Helper()
	s, err := token.NewSigner(secret, token.WithClock(c.now))
	require.NoError(t, err)
	return s
}

func TestNewSigner(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()
		s, err := token.NewSigner("")
		assert.Nil(t, s)
		assert.ErrorIs(t, err, token.ErrMissingSecret)
	})

	t.Run("accepts any non-empty secret", func(t *testing.T) {
		t.Parallel()
		s, err := token.NewSigner("x")
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestSigner_IssueVerify(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trip preserves claims", func(t *testing.T) {
		t.Parallel()
		c := &clock{t: issuedAt}
		s := newSigner(t, "secret", c)

		tok, err := s.Issue(&testClaims{ID: "42", Email: "a@x.com"}, "session", time.Hour)
		require.NoError(t, err)
		assert.Len(t, strings.Split(tok, "."), 3)

		got, err := token.Verify[testClaims](s, tok, "session")
		require.NoError(t, err)
		assert.Equal(t, "42", got.ID)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "session", got.Purpose)
		assert.Equal(t, issuedAt, got.IssuedAt.Time.UTC())
		assert.Equal(t, issuedAt.Add(time.Hour), got.ExpiresAt.Time.UTC())
	})

	t.Run("expiry boundary", func(t *testing.T) {
		t.Parallel()
		ttl := 7 * 24 * time.Hour
		c := &clock{t: issuedAt}
		s := newSigner(t, "secret", c)

		tok, err := s.Issue(&testClaims{ID: "1"}, "session", ttl)
		require.NoError(t, err)

		c.t = issuedAt.Add(ttl - time.Second)
		_, err = token.Verify[testClaims](s, tok, "session")
		assert.NoError(t, err, "one second before expiry")

		c.t = issuedAt.Add(ttl)
		_, err = token.Verify[testClaims](s, tok, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken, "at expiry")

		c.t = issuedAt.Add(ttl + time.Second)
		_, err = token.Verify[testClaims](s, tok, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken, "one second after expiry")
	})

	t.Run("foreign secret is rejected", func(t *testing.T) {
		t.Parallel()
		c := &clock{t: issuedAt}
		issuer := newSigner(t, "attacker-secret", c)
		verifier := newSigner(t, "server-secret", c)

		tok, err := issuer.Issue(&testClaims{ID: "1", Email: "admin@x.com"}, "session", time.Hour)
		require.NoError(t, err)

		_, err = token.Verify[testClaims](verifier, tok, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("purpose mismatch is rejected", func(t *testing.T) {
		t.Parallel()
		c := &clock{t: issuedAt}
		s := newSigner(t, "secret", c)

		tok, err := s.Issue(&testClaims{ID: "1"}, "password_reset", time.Hour)
		require.NoError(t, err)

		_, err = token.Verify[testClaims](s, tok, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		t.Parallel()
		c := &clock{t: issuedAt}
		s := newSigner(t, "secret", c)

		tok, err := s.Issue(&testClaims{ID: "1"}, "session", time.Hour)
		require.NoError(t, err)
		other, err := s.Issue(&testClaims{ID: "2"}, "session", time.Hour)
		require.NoError(t, err)

		a := strings.Split(tok, ".")
		b := strings.Split(other, ".")
		forged := a[0] + "." + b[1] + "." + a[2]

		_, err = token.Verify[testClaims](s, forged, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		t.Parallel()
		c := &clock{t: issuedAt}
		s := newSigner(t, "secret", c)

		claims := &testClaims{ID: "1"}
		claims.Purpose = "session"
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(time.Hour))
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = token.Verify[testClaims](s, tok, "session")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		t.Parallel()
		s := newSigner(t, "secret", &clock{t: issuedAt})

		for _, in := range []string{"", "abc", "a.b", "a.b.c", "...."} {
			_, err := token.Verify[testClaims](s, in, "session")
			assert.ErrorIs(t, err, token.ErrInvalidToken, "input %q", in)
		}
	})

	t.Run("rejects invalid issue arguments", func(t *testing.T) {
		t.Parallel()
		s := newSigner(t, "secret", &clock{t: issuedAt})

		_, err := s.Issue(nil, "session", time.Hour)
		assert.ErrorIs(t, err, token.ErrMissingClaims)

		_, err = s.Issue(&testClaims{}, "session", 0)
		assert.ErrorIs(t, err, token.ErrInvalidTTL)
	})
}
