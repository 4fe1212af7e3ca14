package repository

import (
	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.MedicalRecord, error)
	FindByPetAndDoctor(db *gorm.DB, petID, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
}
