package repository

import (
	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
	IDsByOwner(db *gorm.DB, ownerID uuid.UUID) ([]uuid.UUID, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Pet, error)
	CountByOwner(db *gorm.DB, ownerID uuid.UUID) (int64, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error)
}
