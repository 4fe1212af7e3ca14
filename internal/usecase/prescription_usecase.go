package usecase

import (
	"context"
	"errors"
	"time"

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

type PrescriptionUsecase interface {
	Create(ctx context.Context, petID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListByPet(ctx context.Context, petID uuid.UUID) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	petRepo          repository.PetRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	petRepo repository.PetRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		petRepo:          petRepo,
		auditService:     auditService,
	}
}

// Create issues a prescription for a pet by the calling doctor
func (u *prescriptionUsecase) Create(ctx context.Context, petID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindByID(u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	medications := make(entity.MedicationList, len(req.Medications))
	for i, med := range req.Medications {
		medications[i] = entity.Medication{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Duration:  med.Duration,
		}
	}

	prescription := &entity.Prescription{
		Medications:  medications,
		DoctorID:     userID,
		PetID:        petID,
		Date:         time.Now(),
		Instructions: req.Instructions,
	}

	if err := u.prescriptionRepo.Create(u.db, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionPrescriptionCreate,
		"prescription", prescription.ID.String(), nil)

	return converter.PrescriptionToResponse(prescription), nil
}

// ListByPet returns prescriptions for a pet. Doctors and admins may read
// any pet's prescriptions, owners only their own pets'.
func (u *prescriptionUsecase) ListByPet(ctx context.Context, petID uuid.UUID) (*dto.PrescriptionListResponse, error) {
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

	prescriptions, err := u.prescriptionRepo.FindByPetID(u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for pet %s: %+v", petID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
