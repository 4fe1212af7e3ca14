package repository

import (
	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.Prescription, error)
	CountByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
