package repository

import (
	"time"

	"vetclinic-api/internal/domain/entity"
	domainRepo "vetclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vaccinationRepository struct{}

func NewVaccinationRepository() domainRepo.VaccinationRepository {
	return &vaccinationRepository{}
}

func (r *vaccinationRepository) Create(db *gorm.DB, vaccination *entity.Vaccination) error {
	return db.Create(vaccination).Error
}

func (r *vaccinationRepository) FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := db.Preload("AdministeredBy.DoctorProfile").
		Where("pet_id = ?", petID).
		Order("date DESC").
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (r *vaccinationRepository) CountDueByPets(db *gorm.DB, petIDs []uuid.UUID, dueBefore time.Time) (int64, error) {
	if len(petIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&entity.Vaccination{}).
		Where("pet_id IN ? AND next_due_date <= ?", petIDs, dueBefore).
		Count(&count).Error
	return count, err
}
