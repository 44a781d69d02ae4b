package auth

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}

func newPostgresMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStorage) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock, NewPostgresStorage(mock)
}

func TestPostgresStorage_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	insert := regexp.QuoteMeta("INSERT INTO users (id, email, name, password_hash, created_at, updated_at)")

	t.Run("inserts row", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		u := &User{ID: uuid.New(), Email: "a@b.c", Name: ptr("Ann"), PasswordHash: []byte("h"), CreatedAt: now, UpdatedAt: now}

		mock.ExpectExec(insert).
			WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, store.CreateUser(ctx, u))
	})

	t.Run("unique violation maps to ErrEmailTaken", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		u := &User{ID: uuid.New(), Email: "a@b.c", CreatedAt: now, UpdatedAt: now}

		mock.ExpectExec(insert).
			WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, store.CreateUser(ctx, u), ErrEmailTaken)
	})
}

func TestPostgresStorage_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("by email", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()
		name := ptr("Ann")

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("a@b.c").
			WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow(id, "a@b.c", name, []byte("h"), now, now))

		u, err := store.GetUserByEmail(ctx, "a@b.c")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "a@b.c", u.Email)
		require.NotNil(t, u.Name)
		assert.Equal(t, "Ann", *u.Name)
		assert.Equal(t, []byte("h"), u.PasswordHash)
	})

	t.Run("by id not found", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.GetUserByID(ctx, id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestPostgresStorage_UpdatePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	update := regexp.QuoteMeta("UPDATE users SET password_hash = $2")

	t.Run("updates one row", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()

		mock.ExpectExec(update).WithArgs(id, []byte("new")).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, store.UpdatePassword(ctx, id, []byte("new")))
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()

		mock.ExpectExec(update).WithArgs(id, []byte("new")).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, store.UpdatePassword(ctx, id, []byte("new")), ErrUserNotFound)
	})
}

func TestPostgresStorage_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	update := regexp.QuoteMeta("UPDATE users SET name = COALESCE($2, name), email = COALESCE($3, email)")

	t.Run("returns updated row", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()
		upd := ProfileUpdate{Name: ptr("Rex")}

		mock.ExpectQuery(update).
			WithArgs(id, upd.Name, upd.Email).
			WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow(id, "a@b.c", ptr("Rex"), []byte("h"), now, now))

		u, err := store.UpdateProfile(ctx, id, upd)
		require.NoError(t, err)
		assert.Equal(t, "Rex", *u.Name)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()
		upd := ProfileUpdate{Email: ptr("taken@b.c")}

		mock.ExpectQuery(update).
			WithArgs(id, upd.Name, upd.Email).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := store.UpdateProfile(ctx, id, upd)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		id := uuid.New()

		mock.ExpectQuery(update).
			WithArgs(id, (*string)(nil), (*string)(nil)).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.UpdateProfile(ctx, id, ProfileUpdate{})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
