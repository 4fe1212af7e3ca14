package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PetID    uuid.UUID `json:"pet_id" validate:"required"`
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Reason   string    `json:"reason" validate:"required,min=10,max=500"`
	Notes    string    `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateAppointmentRequest is a field-limited partial update. Status changes
// ride through the dedicated confirm/complete/cancel endpoints, not here.
type UpdateAppointmentRequest struct {
	Date   *time.Time `json:"date" validate:"omitempty"`
	Reason *string    `json:"reason" validate:"omitempty,min=10,max=500"`
	Notes  *string    `json:"notes" validate:"omitempty,max=1000"`
}

type RescheduleAppointmentRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

// AppointmentQuery carries list filters parsed from the query string
type AppointmentQuery struct {
	PetIDs    []uuid.UUID
	DoctorID  uuid.UUID
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID     `json:"id"`
	PetID       uuid.UUID     `json:"pet_id"`
	Pet         *PetResponse  `json:"pet,omitempty"`
	DoctorID    uuid.UUID     `json:"doctor_id"`
	Doctor      *UserResponse `json:"doctor,omitempty"`
	CreatedByID uuid.UUID     `json:"created_by_id"`
	Date        time.Time     `json:"date"`
	Status      string        `json:"status"`
	Reason      string        `json:"reason"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
