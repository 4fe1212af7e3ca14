package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	PetIDs    []uuid.UUID       // restrict to these pets (empty = no restriction)
	DoctorID  uuid.UUID         // restrict to this doctor (uuid.Nil = no restriction)
	Statuses  []AppointmentStatus
	StartDate *time.Time // inclusive lower bound on date
	EndDate   *time.Time // inclusive upper bound on date
	Page      int
	Limit     int
	SortDesc  bool // false = date ASC (forward-looking), true = date DESC (historical)
}

// Offset returns the row offset implied by Page and Limit
func (f *AppointmentFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
