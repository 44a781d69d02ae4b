package catalog

import (
	"time"

	"github.com/google/uuid"
)

type PetStatus string

const (
	PetAvailable PetStatus = "available"
	PetAdopted   PetStatus = "adopted"
)

type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionAccepted AdoptionStatus = "accepted"
	AdoptionRejected AdoptionStatus = "rejected"
)

type Pet struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Species        string          `json:"species"`
	Breed          string          `json:"breed"`
	Age            int             `json:"age"`
	Sex            string          `json:"sex"`
	Neutered       bool            `json:"neutered"`
	Microchip      *string         `json:"microchip"`
	Color          string          `json:"color"`
	WeightKg       float64         `json:"weightKg"`
	Bio            string          `json:"bio"`
	Location       string          `json:"location"`
	ImageURL       string          `json:"imageUrl"`
	Status         PetStatus       `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	MedicalRecords []MedicalRecord `json:"medicalRecords"`
}

type MedicalRecord struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"petId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Diagnosis   string    `json:"diagnosis"`
	Treatment   string    `json:"treatment"`
	VetName     string    `json:"vetName"`
	Notes       string    `json:"notes"`
}

type Post struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Alert reports a lost or found animal. PetID is set when the animal is in
// the catalog.
type Alert struct {
	ID       uuid.UUID  `json:"id"`
	PetID    *uuid.UUID `json:"petId"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	Resolved bool       `json:"resolved"`
	Date     time.Time  `json:"date"`
}

type AdoptionRequest struct {
	ID        uuid.UUID      `json:"id"`
	PetID     uuid.UUID      `json:"petId"`
	Requester string         `json:"requester"`
	Message   string         `json:"message"`
	Status    AdoptionStatus `json:"status"`
	Date      time.Time      `json:"date"`
}
