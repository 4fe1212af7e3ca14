package usecase

import (
	"context"
	"errors"

	"vetclinic-api/internal/converter"
	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/delivery/http/middleware"
	"vetclinic-api/internal/domain/entity"
	"vetclinic-api/internal/domain/repository"
	"vetclinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPetWeightInvalid = errors.New("weight must be greater than zero")

type PetUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetAll(ctx context.Context) (*dto.PetListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type petUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	petRepo      repository.PetRepository
	auditService service.AuditService
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	auditService service.AuditService,
) PetUsecase {
	return &petUsecase{
		db:           db,
		log:          log,
		petRepo:      petRepo,
		auditService: auditService,
	}
}

// Create registers a pet under the calling owner
func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !req.Weight.IsPositive() {
		return nil, ErrPetWeightInvalid
	}

	pet := &entity.Pet{
		Name:    req.Name,
		Type:    entity.PetType(req.Type),
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
		OwnerID: userID,
	}

	if err := u.petRepo.Create(u.db, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionPetCreate,
		"pet", pet.ID.String(), pet.Name)

	return converter.PetToResponse(pet), nil
}

// GetAll lists the calling owner's pets
func (u *petUsecase) GetAll(ctx context.Context) (*dto.PetListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pets, err := u.petRepo.FindByOwnerID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list pets for owner %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

// GetByID fetches one of the calling owner's pets. Other owners' pets read
// as not found so pet IDs cannot be probed.
func (u *petUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindByIDAndOwner(u.db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", id, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	return converter.PetToResponse(pet), nil
}

// Update applies a partial edit to one of the calling owner's pets
func (u *petUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindByIDAndOwner(u.db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", id, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Type != nil {
		pet.Type = entity.PetType(*req.Type)
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Weight != nil {
		if !req.Weight.IsPositive() {
			return nil, ErrPetWeightInvalid
		}
		pet.Weight = *req.Weight
	}

	if err := u.petRepo.Update(u.db, pet); err != nil {
		u.log.Warnf("Failed to update pet %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionPetUpdate,
		"pet", pet.ID.String(), nil, pet.Name)

	return converter.PetToResponse(pet), nil
}

// Delete removes one of the calling owner's pets
func (u *petUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.petRepo.Delete(u.db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to delete pet %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPetNotFound
	}

	u.auditService.LogDelete(ctx, u.db, &userID, entity.AuditActionPetDelete,
		"pet", id.String(), nil)

	return nil
}
