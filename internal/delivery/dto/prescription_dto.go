package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicationRequest struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
	Duration  string `json:"duration" validate:"required"`
}

type CreatePrescriptionRequest struct {
	Medications  []MedicationRequest `json:"medications" validate:"required,min=1,dive"`
	Instructions string              `json:"instructions" validate:"omitempty"`
}

// Response DTOs

type MedicationResponse struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type PrescriptionResponse struct {
	ID           uuid.UUID            `json:"id"`
	Medications  []MedicationResponse `json:"medications"`
	DoctorID     uuid.UUID            `json:"doctor_id"`
	Doctor       *UserResponse        `json:"doctor,omitempty"`
	PetID        uuid.UUID            `json:"pet_id"`
	Date         time.Time            `json:"date"`
	Instructions string               `json:"instructions,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
