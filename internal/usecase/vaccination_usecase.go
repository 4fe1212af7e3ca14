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

var ErrNextDueBeforeDate = errors.New("next due date must be after the vaccination date")

type VaccinationUsecase interface {
	Create(ctx context.Context, petID uuid.UUID, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error)
	ListByPet(ctx context.Context, petID uuid.UUID) (*dto.VaccinationListResponse, error)
}

type vaccinationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	vaccinationRepo repository.VaccinationRepository
	petRepo         repository.PetRepository
	auditService    service.AuditService
}

func NewVaccinationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vaccinationRepo repository.VaccinationRepository,
	petRepo repository.PetRepository,
	auditService service.AuditService,
) VaccinationUsecase {
	return &vaccinationUsecase{
		db:              db,
		log:             log,
		vaccinationRepo: vaccinationRepo,
		petRepo:         petRepo,
		auditService:    auditService,
	}
}

// Create records a vaccine administered by the calling doctor
func (u *vaccinationUsecase) Create(ctx context.Context, petID uuid.UUID, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !req.NextDueDate.After(req.Date) {
		return nil, ErrNextDueBeforeDate
	}

	pet, err := u.petRepo.FindByID(u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	vaccination := &entity.Vaccination{
		Name:             req.Name,
		Date:             req.Date,
		NextDueDate:      req.NextDueDate,
		AdministeredByID: userID,
		PetID:            petID,
		Notes:            req.Notes,
	}

	if err := u.vaccinationRepo.Create(u.db, vaccination); err != nil {
		u.log.Warnf("Failed to create vaccination: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionVaccinationCreate,
		"vaccination", vaccination.ID.String(), vaccination.Name)

	return converter.VaccinationToResponse(vaccination), nil
}

// ListByPet returns all vaccinations recorded for a pet. Owners only see
// their own pets'.
func (u *vaccinationUsecase) ListByPet(ctx context.Context, petID uuid.UUID) (*dto.VaccinationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	if roleID == entity.RoleIDPetOwner {
		pet, err := u.petRepo.FindByIDAndOwner(u.db, petID, userID)
		if err != nil {
			u.log.Warnf("Failed to find pet %s: %+v", petID, err)
			return nil, err
		}
		if pet == nil {
			return nil, ErrPetNotFound
		}
	}

	vaccinations, err := u.vaccinationRepo.FindByPetID(u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to list vaccinations for pet %s: %+v", petID, err)
		return nil, err
	}

	return &dto.VaccinationListResponse{
		Vaccinations: converter.VaccinationsToResponses(vaccinations),
		Total:        len(vaccinations),
	}, nil
}
