package repository

import (
	"errors"
	"time"

	"vetclinic-api/internal/domain/entity"
	domainRepo "vetclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Pet").Preload("Doctor.DoctorProfile").Preload("CreatedBy").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if len(filter.PetIDs) > 0 {
			query = query.Where("pet_id IN ?", filter.PetIDs)
		}
		if filter.DoctorID != uuid.Nil {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
		if len(filter.Statuses) > 0 {
			query = query.Where("status IN ?", filter.Statuses)
		}
		if filter.StartDate != nil {
			query = query.Where("date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("date <= ?", *filter.EndDate)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "date ASC"
	if filter != nil && filter.SortDesc {
		order = "date DESC"
	}

	var appointments []entity.Appointment
	listQuery := query.
		Preload("Pet").Preload("Doctor.DoctorProfile").Preload("CreatedBy").
		Order(order)
	if filter != nil && filter.Limit > 0 {
		listQuery = listQuery.Offset(filter.Offset()).Limit(filter.Limit)
	}
	if err := listQuery.Find(&appointments).Error; err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

// UpdateStatus performs a conditional status update. Racing transitions cannot
// both succeed: the WHERE clause on status makes the operation a compare-and-swap.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, toStatus entity.AppointmentStatus, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": toStatus}
	for k, v := range extra {
		updates[k] = v
	}

	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DistinctPetIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	var petIDs []uuid.UUID
	err := db.Model(&entity.Appointment{}).
		Distinct("pet_id").
		Where("doctor_id = ?", doctorID).
		Pluck("pet_id", &petIDs).Error
	if err != nil {
		return nil, err
	}
	return petIDs, nil
}

func (r *appointmentRepository) CountByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date >= ? AND date < ? AND status = ?", doctorID, from, to, status).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountUpcomingByPets(db *gorm.DB, petIDs []uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	if len(petIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("pet_id IN ? AND date >= ? AND status = ?", petIDs, time.Now(), status).
		Count(&count).Error
	return count, err
}
