package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// RegisterPetOwnerRequest registers a pet owner account with its profile
type RegisterPetOwnerRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=6"`
	FirstName string          `json:"first_name" validate:"required,min=2"`
	LastName  string          `json:"last_name" validate:"required,min=2"`
	Phone     string          `json:"phone" validate:"required,min=10,max=20"`
	Address   *AddressRequest `json:"address" validate:"required"`
}

// RegisterDoctorRequest registers a doctor account affiliated with a hospital
type RegisterDoctorRequest struct {
	Email          string    `json:"email" validate:"required,email"`
	Password       string    `json:"password" validate:"required,min=6"`
	Name           string    `json:"name" validate:"required,min=2"`
	Specialization string    `json:"specialization" validate:"required"`
	HospitalID     uuid.UUID `json:"hospital_id" validate:"required"`
	ContactNumber  string    `json:"contact_number" validate:"required,min=10,max=20"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID            uuid.UUID              `json:"id"`
	Email         string                 `json:"email"`
	Role          string                 `json:"role"`
	DoctorProfile *DoctorProfileResponse `json:"doctor_profile,omitempty"`
	OwnerProfile  *OwnerProfileResponse  `json:"owner_profile,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type DoctorProfileResponse struct {
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	HospitalID     uuid.UUID `json:"hospital_id"`
	ContactNumber  string    `json:"contact_number"`
}

type OwnerProfileResponse struct {
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Phone     string                 `json:"phone"`
	Address   map[string]interface{} `json:"address,omitempty"`
}
