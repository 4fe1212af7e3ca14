package repository

import (
	"context"

	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
}

type OwnerProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.OwnerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.OwnerProfile) error
}
