package repository

import (
	"errors"

	"vetclinic-api/internal/domain/entity"
	domainRepo "vetclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

// FindByIDAndOwner scopes the lookup to the owner so other owners' pets
// surface as not found rather than leaking existence.
func (r *petRepository) FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Preload("Vaccinations").Preload("MedicalRecords").
		Where("id = ? AND owner_id = ?", id, ownerID).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Preload("Vaccinations").Preload("MedicalRecords").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) IDsByOwner(db *gorm.DB, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.Pet{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *petRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Pet, error) {
	if len(ids) == 0 {
		return []entity.Pet{}, nil
	}
	var pets []entity.Pet
	err := db.Where("id IN ?", ids).Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) CountByOwner(db *gorm.DB, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Pet{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Omit("Owner", "Vaccinations", "MedicalRecords").Save(pet).Error
}

func (r *petRepository) Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entity.Pet{})
	return result.RowsAffected, result.Error
}
