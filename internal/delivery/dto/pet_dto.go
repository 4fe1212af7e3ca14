package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePetRequest struct {
	Name   string          `json:"name" validate:"required"`
	Type   string          `json:"type" validate:"required,oneof=dog cat bird other"`
	Breed  string          `json:"breed" validate:"required"`
	Age    int             `json:"age" validate:"gte=0"`
	Weight decimal.Decimal `json:"weight" validate:"required"`
}

type UpdatePetRequest struct {
	Name   *string          `json:"name" validate:"omitempty"`
	Type   *string          `json:"type" validate:"omitempty,oneof=dog cat bird other"`
	Breed  *string          `json:"breed" validate:"omitempty"`
	Age    *int             `json:"age" validate:"omitempty,gte=0"`
	Weight *decimal.Decimal `json:"weight" validate:"omitempty"`
}

// Response DTOs

type PetResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Type           string                  `json:"type"`
	Breed          string                  `json:"breed"`
	Age            int                     `json:"age"`
	Weight         decimal.Decimal         `json:"weight"`
	OwnerID        uuid.UUID               `json:"owner_id"`
	Vaccinations   []VaccinationResponse   `json:"vaccinations,omitempty"`
	MedicalRecords []MedicalRecordResponse `json:"medical_records,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
