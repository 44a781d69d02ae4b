// Package token issues and verifies purpose-bound, time-limited signed tokens.
//
// Tokens are HS256 JWTs produced with github.com/golang-jwt/jwt/v5. Every token
// carries a purpose claim ("pur") so that one signing secret can safely back
// several token kinds (sessions, password resets) with different lifetimes:
// a token minted for one purpose never verifies as another.
//
// # Usage
//
//	type ResetClaims struct {
//	    token.Registered
//	    ID string `json:"id"`
//	}
//
//	signer, err := token.NewSigner(secret)
//	if err != nil {
//	    return err
//	}
//
//	tok, err := signer.Issue(&ResetClaims{ID: userID}, "password_reset", time.Hour)
//	...
//	claims, err := token.Verify[ResetClaims](signer, tok, "password_reset")
//	if err != nil {
//	    // errors.Is(err, token.ErrInvalidToken) for every failure kind
//	}
//
// Verification fails closed: malformed input, a foreign signature, an
// unexpected algorithm, a purpose mismatch and an expired token all produce
// ErrInvalidToken. The underlying cause is joined for logging but callers
// should never branch on it.
package token
