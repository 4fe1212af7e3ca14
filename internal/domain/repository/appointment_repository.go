package repository

import (
	"time"

	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)

	// UpdateStatus atomically moves an appointment from one of fromStatuses to
	// toStatus, optionally applying extra column updates in the same statement.
	// Returns affected rows: 1 = transition applied, 0 = the appointment was
	// not in an eligible status (lost a race or precondition failed).
	UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, toStatus entity.AppointmentStatus, extra map[string]interface{}) (int64, error)

	// UpdateFields applies a partial update guarded by the given eligible
	// statuses. Same affected-rows contract as UpdateStatus.
	UpdateFields(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, fields map[string]interface{}) (int64, error)

	DistinctPetIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
	CountByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time, status entity.AppointmentStatus) (int64, error)
	CountUpcomingByPets(db *gorm.DB, petIDs []uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
