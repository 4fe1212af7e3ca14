package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is a known status value
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether moving from s to target is a legal edge
// of the appointment state machine:
//
//	pending   -> confirmed | completed | cancelled
//	confirmed -> completed | cancelled
//
// completed and cancelled are terminal. Completing straight from pending is
// allowed so walk-ins can be closed out without an explicit confirmation.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case AppointmentStatusConfirmed:
		return s == AppointmentStatusPending
	case AppointmentStatusCompleted, AppointmentStatusCancelled:
		return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
	}
	return false
}

// Appointment represents a booked visit between a pet and a doctor
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PetID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_pet_date" json:"pet_id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	CreatedByID uuid.UUID         `gorm:"type:uuid;not null;index" json:"created_by_id"`
	Date        time.Time         `gorm:"not null;index:idx_appointments_doctor_date;index:idx_appointments_pet_date" json:"date"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason      string            `gorm:"type:varchar(500);not null" json:"reason"`
	Notes       string            `gorm:"type:varchar(1000)" json:"notes,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet       Pet  `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Doctor    User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment has been confirmed by its doctor
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsAssignedDoctor checks whether userID is the appointment's doctor
func (a *Appointment) IsAssignedDoctor(userID uuid.UUID) bool {
	return a.DoctorID == userID
}

// IsCreator checks whether userID is the pet owner who booked the appointment
func (a *Appointment) IsCreator(userID uuid.UUID) bool {
	return a.CreatedByID == userID
}
