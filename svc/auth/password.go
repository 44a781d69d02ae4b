package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// HashPassword returns the bcrypt hash of password at the given cost.
// Passwords over MaxPasswordLength bytes are rejected with a ValidationError.
func HashPassword(password string, cost int) ([]byte, error) {
	if len(password) > MaxPasswordLength {
		return nil, NewValidationError("Password too long")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches storedHash. An absent hash
// never verifies.
func VerifyPassword(storedHash []byte, password string) bool {
	if len(storedHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(storedHash, []byte(password)) == nil
}
