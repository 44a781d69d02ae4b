package auth

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists user accounts. Implementations return ErrUserNotFound for
// missing rows and ErrEmailTaken when an email would collide.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error)
}
