package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account. PasswordHash is nil for accounts without a password.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         *string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the public view of a user returned to clients.
type Identity struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}

// RegisterInput carries sign-up fields. Name is optional.
type RegisterInput struct {
	Name     *string
	Email    string
	Password string
}

// ProfileUpdate lists the fields to change. Nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
}
