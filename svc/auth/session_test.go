package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petpal/petpal/pkg/token"
)

func TestSessionCookieName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "petpal_token", SessionCookieName)
}

func TestService_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	user := &User{ID: mustUUID(t), Email: "ann@example.com", Name: ptr("Ann")}

	tok, err := env.svc.IssueSession(user)
	require.NoError(t, err)

	claims, err := env.svc.VerifySession(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.ID)
	assert.Equal(t, "ann@example.com", claims.Email)
	require.NotNil(t, claims.Name)
	assert.Equal(t, "Ann", *claims.Name)
	assert.Equal(t, PurposeSession, claims.Purpose)
	assert.Equal(t, env.clock.Now().Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, env.clock.Now().Unix(), claims.IssuedAt.Unix())
}

func TestService_SessionExpiryBoundary(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	tok, err := env.svc.IssueSession(&User{ID: mustUUID(t), Email: "a@b.c"})
	require.NoError(t, err)

	env.clock.Advance(7*24*time.Hour - time.Second)
	_, err = env.svc.VerifySession(tok)
	require.NoError(t, err, "valid one second before expiry")

	env.clock.Advance(time.Second)
	_, err = env.svc.VerifySession(tok)
	assert.ErrorIs(t, err, ErrInvalidToken, "invalid at expiry")

	env.clock.Advance(time.Second)
	_, err = env.svc.VerifySession(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifySession_Rejects(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	user := &User{ID: mustUUID(t), Email: "a@b.c"}

	foreign, err := token.NewSigner("another-secret", token.WithClock(env.clock.Now))
	require.NoError(t, err)
	forged, err := foreign.Issue(&SessionClaims{ID: user.ID.String(), Email: user.Email}, PurposeSession, time.Hour)
	require.NoError(t, err)

	resetTok, err := env.svc.signer.Issue(&ResetClaims{ID: user.ID.String()}, PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	noID, err := env.svc.signer.Issue(&SessionClaims{Email: user.Email}, PurposeSession, time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": user.ID.String(), "pur": PurposeSession, "exp": env.clock.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"foreign secret": forged,
		"reset purpose":  resetTok,
		"missing id":     noID,
		"alg none":       unsigned,
		"garbage":        "not.a.token",
		"empty":          "",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			claims, err := env.svc.VerifySession(tok)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
