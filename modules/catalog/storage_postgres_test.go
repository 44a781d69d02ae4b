package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestPostgresStorage_ListPets(t *testing.T) {
	t.Parallel()
	mock, store := newPostgresMock(t)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	bella, mittens := uuid.New(), uuid.New()
	chip := "985001234567891"

	mock.ExpectQuery(regexp.QuoteMeta("FROM pets ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "species", "breed", "age", "sex", "neutered", "microchip",
			"color", "weight_kg", "bio", "location", "image_url", "status", "created_at",
		}).
			AddRow(mittens, "Mittens", "Cat", "Domestic Short Hair", 2, "Male", true, &chip,
				"Tabby", 4.3, "", "", "", PetAvailable, at.Add(time.Hour)).
			AddRow(bella, "Bella", "Dog", "Labrador", 4, "Female", true, &chip,
				"Yellow", 28.5, "", "", "", PetAdopted, at))

	mock.ExpectQuery(regexp.QuoteMeta("FROM medical_records ORDER BY date DESC")).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "pet_id", "date", "description", "diagnosis", "treatment", "vet_name", "notes",
		}).AddRow(uuid.New(), bella, at, "Annual vaccination", "Healthy", "Rabies vaccine", "Happy Paws", ""))

	pets, err := store.ListPets(context.Background())
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Mittens", pets[0].Name)
	assert.Empty(t, pets[0].MedicalRecords)
	assert.Equal(t, PetAdopted, pets[1].Status)
	require.Len(t, pets[1].MedicalRecords, 1)
	assert.Equal(t, "Happy Paws", pets[1].MedicalRecords[0].VetName)
}

func TestPostgresStorage_CreateAdoption(t *testing.T) {
	t.Parallel()
	insert := regexp.QuoteMeta("INSERT INTO adoption_requests")
	req := &AdoptionRequest{
		ID:        uuid.New(),
		PetID:     uuid.New(),
		Requester: "Ann",
		Status:    AdoptionPending,
		Date:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("stored", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		mock.ExpectExec(insert).
			WithArgs(req.ID, req.PetID, req.Requester, req.Message, req.Status, req.Date).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, store.CreateAdoption(context.Background(), req))
	})

	t.Run("unknown pet", func(t *testing.T) {
		t.Parallel()
		mock, store := newPostgresMock(t)
		mock.ExpectExec(insert).
			WithArgs(req.ID, req.PetID, req.Requester, req.Message, req.Status, req.Date).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, store.CreateAdoption(context.Background(), req), ErrPetNotFound)
	})
}

func TestPostgresStorage_ListPosts(t *testing.T) {
	t.Parallel()
	mock, store := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "author", "title", "content", "created_at"}))

	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
