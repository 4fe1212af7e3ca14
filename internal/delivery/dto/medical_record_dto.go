package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	AppointmentID         uuid.UUID  `json:"appointment_id" validate:"required"`
	Symptoms              []string   `json:"symptoms" validate:"required,min=1,dive,required"`
	Diagnosis             string     `json:"diagnosis" validate:"required"`
	Treatment             []string   `json:"treatment" validate:"required,min=1,dive,required"`
	PrescribedMedications []string   `json:"prescribed_medications" validate:"omitempty"`
	Notes                 string     `json:"notes" validate:"omitempty"`
	FollowUpDate          *time.Time `json:"follow_up_date" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID                    uuid.UUID     `json:"id"`
	Date                  time.Time     `json:"date"`
	Symptoms              []string      `json:"symptoms"`
	Diagnosis             string        `json:"diagnosis"`
	Treatment             []string      `json:"treatment"`
	PrescribedMedications []string      `json:"prescribed_medications,omitempty"`
	DoctorID              uuid.UUID     `json:"doctor_id"`
	Doctor                *UserResponse `json:"doctor,omitempty"`
	PetID                 uuid.UUID     `json:"pet_id"`
	AppointmentID         uuid.UUID     `json:"appointment_id"`
	Notes                 string        `json:"notes,omitempty"`
	FollowUpDate          *time.Time    `json:"follow_up_date,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
