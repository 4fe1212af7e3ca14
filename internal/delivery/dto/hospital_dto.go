package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name          string          `json:"name" validate:"required"`
	Address       *AddressRequest `json:"address" validate:"required"`
	ContactNumber string          `json:"contact_number" validate:"required,min=10,max=20"`
	Email         string          `json:"email" validate:"required,email"`
	Services      []string        `json:"services" validate:"omitempty"`
}

type UpdateHospitalRequest struct {
	Name          *string         `json:"name" validate:"omitempty"`
	Address       *AddressRequest `json:"address" validate:"omitempty"`
	ContactNumber *string         `json:"contact_number" validate:"omitempty,min=10,max=20"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Services      []string        `json:"services" validate:"omitempty"`
}

// Response DTOs

type HospitalResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Address       map[string]interface{} `json:"address,omitempty"`
	ContactNumber string                 `json:"contact_number"`
	Email         string                 `json:"email"`
	Services      []string               `json:"services,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
