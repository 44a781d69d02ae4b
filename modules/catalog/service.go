package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petpal/petpal/pkg/logger"
)

// Service validates new records, assigns ids and timestamps and stores them.
type Service struct {
	storage Storage
	guard   func(next http.Handler) http.Handler
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the catalog. guard protects every write route.
func NewService(storage Storage, guard func(next http.Handler) http.Handler, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		guard:   guard,
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("catalog"))
	return s
}

func (s *Service) CreatePet(ctx context.Context, pet Pet) (*Pet, error) {
	pet.Name = strings.TrimSpace(pet.Name)
	pet.Species = strings.TrimSpace(pet.Species)
	if pet.Name == "" || pet.Species == "" {
		return nil, invalid("Missing name or species")
	}
	switch pet.Status {
	case "":
		pet.Status = PetAvailable
	case PetAvailable, PetAdopted:
	default:
		return nil, invalid("Invalid status")
	}
	if pet.Age < 0 || pet.WeightKg < 0 {
		return nil, invalid("Invalid age or weight")
	}

	pet.ID = uuid.New()
	pet.CreatedAt = s.now()
	pet.MedicalRecords = []MedicalRecord{}
	if err := s.storage.CreatePet(ctx, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (s *Service) ListPets(ctx context.Context) ([]Pet, error) {
	return s.storage.ListPets(ctx)
}

func (s *Service) CreateMedicalRecord(ctx context.Context, rec MedicalRecord) (*MedicalRecord, error) {
	rec.Description = strings.TrimSpace(rec.Description)
	if rec.PetID == uuid.Nil || rec.Description == "" {
		return nil, invalid("Missing petId or description")
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	rec.ID = uuid.New()
	if err := s.storage.CreateMedicalRecord(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error) {
	return s.storage.ListMedicalRecords(ctx)
}

func (s *Service) CreatePost(ctx context.Context, post Post) (*Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" || strings.TrimSpace(post.Content) == "" {
		return nil, invalid("Missing title or content")
	}

	post.ID = uuid.New()
	post.CreatedAt = s.now()
	if err := s.storage.CreatePost(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	return s.storage.ListPosts(ctx)
}

func (s *Service) CreateAlert(ctx context.Context, alert Alert) (*Alert, error) {
	alert.Title = strings.TrimSpace(alert.Title)
	if alert.Title == "" {
		return nil, invalid("Missing title")
	}
	if alert.PetID != nil && *alert.PetID == uuid.Nil {
		alert.PetID = nil
	}
	if alert.Date.IsZero() {
		alert.Date = s.now()
	}

	alert.ID = uuid.New()
	if err := s.storage.CreateAlert(ctx, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *Service) ListAlerts(ctx context.Context) ([]Alert, error) {
	return s.storage.ListAlerts(ctx)
}

func (s *Service) CreateAdoption(ctx context.Context, req AdoptionRequest) (*AdoptionRequest, error) {
	req.Requester = strings.TrimSpace(req.Requester)
	if req.PetID == uuid.Nil || req.Requester == "" {
		return nil, invalid("Missing petId or requester")
	}
	switch req.Status {
	case "":
		req.Status = AdoptionPending
	case AdoptionPending, AdoptionAccepted, AdoptionRejected:
	default:
		return nil, invalid("Invalid status")
	}

	req.ID = uuid.New()
	req.Date = s.now()
	if err := s.storage.CreateAdoption(ctx, &req); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "adoption requested", slog.String("pet_id", req.PetID.String()))
	return &req, nil
}

func (s *Service) ListAdoptions(ctx context.Context) ([]AdoptionRequest, error) {
	return s.storage.ListAdoptions(ctx)
}
