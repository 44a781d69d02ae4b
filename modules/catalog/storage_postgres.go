package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/petpal/petpal/pkg/pg"
)

const (
	petColumns      = `id, name, species, breed, age, sex, neutered, microchip, color, weight_kg, bio, location, image_url, status, created_at`
	recordColumns   = `id, pet_id, date, description, diagnosis, treatment, vet_name, notes`
	postColumns     = `id, author, title, content, created_at`
	alertColumns    = `id, pet_id, title, location, resolved, date`
	adoptionColumns = `id, pet_id, requester, message, status, date`
)

// PostgresStorage stores catalog records in Postgres. Pet references are
// enforced by foreign keys.
type PostgresStorage struct {
	db pg.DB
}

func NewPostgresStorage(db pg.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) CreatePet(ctx context.Context, pet *Pet) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO pets (`+petColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		pet.ID, pet.Name, pet.Species, pet.Breed, pet.Age, pet.Sex, pet.Neutered, pet.Microchip,
		pet.Color, pet.WeightKg, pet.Bio, pet.Location, pet.ImageURL, pet.Status, pet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (p *PostgresStorage) ListPets(ctx context.Context) ([]Pet, error) {
	pets, err := collect(ctx, p.db, `SELECT `+petColumns+` FROM pets ORDER BY created_at DESC`,
		func(rows pgx.Rows) (Pet, error) {
			var pet Pet
			err := rows.Scan(
				&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.Age, &pet.Sex, &pet.Neutered,
				&pet.Microchip, &pet.Color, &pet.WeightKg, &pet.Bio, &pet.Location, &pet.ImageURL,
				&pet.Status, &pet.CreatedAt,
			)
			return pet, err
		})
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	records, err := p.ListMedicalRecords(ctx)
	if err != nil {
		return nil, err
	}
	byPet := make(map[uuid.UUID][]MedicalRecord, len(pets))
	for _, rec := range records {
		byPet[rec.PetID] = append(byPet[rec.PetID], rec)
	}
	for i := range pets {
		pets[i].MedicalRecords = byPet[pets[i].ID]
		if pets[i].MedicalRecords == nil {
			pets[i].MedicalRecords = []MedicalRecord{}
		}
	}
	return pets, nil
}

func (p *PostgresStorage) CreateMedicalRecord(ctx context.Context, rec *MedicalRecord) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO medical_records (`+recordColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.PetID, rec.Date, rec.Description, rec.Diagnosis, rec.Treatment, rec.VetName, rec.Notes,
	)
	return insertErr("medical record", err)
}

func (p *PostgresStorage) ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error) {
	records, err := collect(ctx, p.db, `SELECT `+recordColumns+` FROM medical_records ORDER BY date DESC`,
		func(rows pgx.Rows) (MedicalRecord, error) {
			var rec MedicalRecord
			err := rows.Scan(&rec.ID, &rec.PetID, &rec.Date, &rec.Description, &rec.Diagnosis,
				&rec.Treatment, &rec.VetName, &rec.Notes)
			return rec, err
		})
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return records, nil
}

func (p *PostgresStorage) CreatePost(ctx context.Context, post *Post) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO posts (`+postColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		post.ID, post.Author, post.Title, post.Content, post.CreatedAt,
	)
	return insertErr("post", err)
}

func (p *PostgresStorage) ListPosts(ctx context.Context) ([]Post, error) {
	posts, err := collect(ctx, p.db, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC`,
		func(rows pgx.Rows) (Post, error) {
			var post Post
			err := rows.Scan(&post.ID, &post.Author, &post.Title, &post.Content, &post.CreatedAt)
			return post, err
		})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (p *PostgresStorage) CreateAlert(ctx context.Context, alert *Alert) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO alerts (`+alertColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		alert.ID, alert.PetID, alert.Title, alert.Location, alert.Resolved, alert.Date,
	)
	return insertErr("alert", err)
}

func (p *PostgresStorage) ListAlerts(ctx context.Context) ([]Alert, error) {
	alerts, err := collect(ctx, p.db, `SELECT `+alertColumns+` FROM alerts ORDER BY date DESC`,
		func(rows pgx.Rows) (Alert, error) {
			var a Alert
			err := rows.Scan(&a.ID, &a.PetID, &a.Title, &a.Location, &a.Resolved, &a.Date)
			return a, err
		})
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

func (p *PostgresStorage) CreateAdoption(ctx context.Context, req *AdoptionRequest) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO adoption_requests (`+adoptionColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.PetID, req.Requester, req.Message, req.Status, req.Date,
	)
	return insertErr("adoption request", err)
}

func (p *PostgresStorage) ListAdoptions(ctx context.Context) ([]AdoptionRequest, error) {
	list, err := collect(ctx, p.db, `SELECT `+adoptionColumns+` FROM adoption_requests ORDER BY date DESC`,
		func(rows pgx.Rows) (AdoptionRequest, error) {
			var a AdoptionRequest
			err := rows.Scan(&a.ID, &a.PetID, &a.Requester, &a.Message, &a.Status, &a.Date)
			return a, err
		})
	if err != nil {
		return nil, fmt.Errorf("list adoption requests: %w", err)
	}
	return list, nil
}

func insertErr(what string, err error) error {
	if err == nil {
		return nil
	}
	if pg.IsForeignKeyViolationError(err) {
		return ErrPetNotFound
	}
	return fmt.Errorf("insert %s: %w", what, err)
}

func collect[T any](ctx context.Context, db pg.DB, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
