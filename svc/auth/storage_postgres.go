package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/petpal/petpal/pkg/pg"
)

const userColumns = `id, email, name, password_hash, created_at, updated_at`

// PostgresStorage stores accounts in the users table. Email uniqueness is
// enforced by a unique index.
type PostgresStorage struct {
	db pg.DB
}

func NewPostgresStorage(db pg.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (p *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return p.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (p *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return p.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (p *PostgresStorage) UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (p *PostgresStorage) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error) {
	user, err := p.getOne(ctx,
		`UPDATE users SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = now()
		WHERE id = $1 RETURNING `+userColumns,
		id, upd.Name, upd.Email,
	)
	if err != nil && pg.IsDuplicateKeyError(err) {
		return nil, ErrEmailTaken
	}
	return user, err
}

func (p *PostgresStorage) getOne(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	err := p.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
