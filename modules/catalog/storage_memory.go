package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps records in process memory. Used by tests and by the
// server when no database is configured.
type MemoryStorage struct {
	mu        sync.RWMutex
	pets      []Pet
	records   []MedicalRecord
	posts     []Post
	alerts    []Alert
	adoptions []AdoptionRequest
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) CreatePet(_ context.Context, pet *Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *pet
	stored.MedicalRecords = nil
	m.pets = append(m.pets, stored)
	return nil
}

func (m *MemoryStorage) ListPets(_ context.Context) ([]Pet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byPet := make(map[uuid.UUID][]MedicalRecord)
	for _, rec := range newestFirst(m.records, func(r MedicalRecord) time.Time { return r.Date }) {
		byPet[rec.PetID] = append(byPet[rec.PetID], rec)
	}

	pets := newestFirst(m.pets, func(p Pet) time.Time { return p.CreatedAt })
	for i := range pets {
		pets[i].MedicalRecords = byPet[pets[i].ID]
		if pets[i].MedicalRecords == nil {
			pets[i].MedicalRecords = []MedicalRecord{}
		}
	}
	return pets, nil
}

func (m *MemoryStorage) CreateMedicalRecord(_ context.Context, rec *MedicalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasPet(rec.PetID) {
		return ErrPetNotFound
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *MemoryStorage) ListMedicalRecords(_ context.Context) ([]MedicalRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.records, func(r MedicalRecord) time.Time { return r.Date }), nil
}

func (m *MemoryStorage) CreatePost(_ context.Context, post *Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, *post)
	return nil
}

func (m *MemoryStorage) ListPosts(_ context.Context) ([]Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.posts, func(p Post) time.Time { return p.CreatedAt }), nil
}

func (m *MemoryStorage) CreateAlert(_ context.Context, alert *Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert.PetID != nil && !m.hasPet(*alert.PetID) {
		return ErrPetNotFound
	}
	stored := *alert
	if alert.PetID != nil {
		id := *alert.PetID
		stored.PetID = &id
	}
	m.alerts = append(m.alerts, stored)
	return nil
}

func (m *MemoryStorage) ListAlerts(_ context.Context) ([]Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.alerts, func(a Alert) time.Time { return a.Date }), nil
}

func (m *MemoryStorage) CreateAdoption(_ context.Context, req *AdoptionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasPet(req.PetID) {
		return ErrPetNotFound
	}
	m.adoptions = append(m.adoptions, *req)
	return nil
}

func (m *MemoryStorage) ListAdoptions(_ context.Context) ([]AdoptionRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.adoptions, func(a AdoptionRequest) time.Time { return a.Date }), nil
}

// hasPet must be called with mu held.
func (m *MemoryStorage) hasPet(id uuid.UUID) bool {
	return slices.ContainsFunc(m.pets, func(p Pet) bool { return p.ID == id })
}

// newestFirst returns a sorted copy. Records with equal timestamps keep
// reverse insertion order.
func newestFirst[T any](items []T, at func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	if out == nil {
		out = []T{}
	}
	return out
}
