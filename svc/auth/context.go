package auth

import "context"

type claimsContextKey struct{}

// WithClaims stores verified session claims in ctx.
func WithClaims(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext returns the claims stored by RequireAuth, or nil.
func ClaimsFromContext(ctx context.Context) *SessionClaims {
	claims, _ := ctx.Value(claimsContextKey{}).(*SessionClaims)
	return claims
}
