package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateVaccinationRequest struct {
	Name        string    `json:"name" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	NextDueDate time.Time `json:"next_due_date" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type VaccinationResponse struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Date             time.Time     `json:"date"`
	NextDueDate      time.Time     `json:"next_due_date"`
	AdministeredByID uuid.UUID     `json:"administered_by_id"`
	AdministeredBy   *UserResponse `json:"administered_by,omitempty"`
	PetID            uuid.UUID     `json:"pet_id"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type VaccinationListResponse struct {
	Vaccinations []VaccinationResponse `json:"vaccinations"`
	Total        int                   `json:"total"`
}
