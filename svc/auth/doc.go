// Package auth implements PetPal account authentication.
//
// Sessions are stateless: a signed HS256 token carrying {id, email, name}
// valid for seven days. Password reset uses a second, purpose-bound token
// valid for one hour that carries only the user id. Both are produced by one
// pkg/token Signer keyed with the process secret (see Config.ResolveSecret).
//
// Service exposes the account operations (Register, Login, Me,
// ChangePassword, UpdateProfile, RequestReset, RedeemReset). Storage is
// pluggable: MemoryStorage for development and tests, PostgresStorage for
// production.
//
// RequireAuth guards mutating endpoints. It extracts the session token via a
// session.Transport (cookie first, then bearer header), verifies it and stores
// the claims in the request context:
//
//	r.With(auth.RequireAuth(svc, transport)).Post("/pets", createPet)
//
//	claims := auth.ClaimsFromContext(r.Context())
//
// Errors are sentinel values. The HTTP layer maps them to status codes and
// client messages in one place.
package auth
