package catalog

import "context"

// Storage persists catalog records. List methods return newest first and
// never return nil slices. Creates referencing a missing pet fail with
// ErrPetNotFound.
type Storage interface {
	CreatePet(ctx context.Context, pet *Pet) error
	// ListPets returns every pet with its medical records attached.
	ListPets(ctx context.Context) ([]Pet, error)

	CreateMedicalRecord(ctx context.Context, rec *MedicalRecord) error
	ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error)

	CreatePost(ctx context.Context, post *Post) error
	ListPosts(ctx context.Context) ([]Post, error)

	CreateAlert(ctx context.Context, alert *Alert) error
	ListAlerts(ctx context.Context) ([]Alert, error)

	CreateAdoption(ctx context.Context, req *AdoptionRequest) error
	ListAdoptions(ctx context.Context) ([]AdoptionRequest, error)
}
