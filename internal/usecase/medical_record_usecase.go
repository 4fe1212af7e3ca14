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

var (
	ErrRecordAppointmentMismatch = errors.New("appointment does not belong to this pet and doctor")
	ErrFollowUpDatePast          = errors.New("follow-up date cannot be in the past")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, petID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ListByPet(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	petRepo         repository.PetRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	petRepo repository.PetRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:              db,
		log:             log,
		recordRepo:      recordRepo,
		petRepo:         petRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create writes a diagnosis for a pet. The linked appointment must involve
// this pet and the calling doctor.
func (u *medicalRecordUsecase) Create(ctx context.Context, petID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.FollowUpDate != nil {
		today := time.Now().Truncate(24 * time.Hour)
		if req.FollowUpDate.Before(today) {
			return nil, ErrFollowUpDatePast
		}
	}

	appointment, err := u.appointmentRepo.FindByID(u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PetID != petID || !appointment.IsAssignedDoctor(userID) {
		return nil, ErrRecordAppointmentMismatch
	}

	record := &entity.MedicalRecord{
		Date:                  time.Now(),
		Symptoms:              req.Symptoms,
		Diagnosis:             req.Diagnosis,
		Treatment:             req.Treatment,
		PrescribedMedications: req.PrescribedMedications,
		DoctorID:              userID,
		PetID:                 petID,
		AppointmentID:         req.AppointmentID,
		Notes:                 req.Notes,
		FollowUpDate:          req.FollowUpDate,
	}

	if err := u.recordRepo.Create(u.db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionMedicalRecordCreate,
		"medical_record", record.ID.String(), record.Diagnosis)

	return converter.MedicalRecordToResponse(record), nil
}

// ListByPet returns a pet's records newest first. The pet's owner sees all
// of them, a doctor only the ones they authored.
func (u *medicalRecordUsecase) ListByPet(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	var records []entity.MedicalRecord
	var err error

	switch roleID {
	case entity.RoleIDDoctor:
		records, err = u.recordRepo.FindByPetAndDoctor(u.db, petID, userID)
	case entity.RoleIDAdmin:
		records, err = u.recordRepo.FindByPetID(u.db, petID)
	default:
		pet, petErr := u.petRepo.FindByIDAndOwner(u.db, petID, userID)
		if petErr != nil {
			u.log.Warnf("Failed to find pet %s: %+v", petID, petErr)
			return nil, petErr
		}
		if pet == nil {
			return nil, ErrPetNotFound
		}
		records, err = u.recordRepo.FindByPetID(u.db, petID)
	}
	if err != nil {
		u.log.Warnf("Failed to list medical records for pet %s: %+v", petID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}
