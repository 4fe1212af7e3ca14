package repository

import (
	"time"

	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaccinationRepository interface {
	Create(db *gorm.DB, vaccination *entity.Vaccination) error
	FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.Vaccination, error)
	CountDueByPets(db *gorm.DB, petIDs []uuid.UUID, dueBefore time.Time) (int64, error)
}
