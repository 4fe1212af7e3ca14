package repository

import (
	"context"
	"errors"

	"vetclinic-api/internal/domain/entity"
	domainRepo "vetclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Hospital").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Omit("User", "Hospital").Save(profile).Error
}

type ownerProfileRepository struct{}

func NewOwnerProfileRepository() domainRepo.OwnerProfileRepository {
	return &ownerProfileRepository{}
}

func (r *ownerProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *ownerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error) {
	var profile entity.OwnerProfile
	err := db.Preload("User").Preload("Pets").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ownerProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.WithContext(ctx).Omit("User", "Pets").Save(profile).Error
}
