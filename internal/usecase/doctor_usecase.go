package usecase

import (
	"context"
	"errors"

	"vetclinic-api/internal/converter"
	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/delivery/http/middleware"
	"vetclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorProfileNotFound = errors.New("doctor profile not found")

type DoctorUsecase interface {
	Patients(ctx context.Context) (*dto.PetListResponse, error)
	MedicalHistory(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error)
	Profile(ctx context.Context) (*dto.UserResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	petRepo         repository.PetRepository
	recordRepo      repository.MedicalRecordRepository
	userRepo        repository.UserRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		petRepo:         petRepo,
		recordRepo:      recordRepo,
		userRepo:        userRepo,
	}
}

// Patients lists the distinct pets the calling doctor has had appointments
// with.
func (u *doctorUsecase) Patients(ctx context.Context) (*dto.PetListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	petIDs, err := u.appointmentRepo.DistinctPetIDsByDoctor(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient IDs for doctor %s: %+v", userID, err)
		return nil, err
	}
	if len(petIDs) == 0 {
		return &dto.PetListResponse{Pets: []dto.PetResponse{}}, nil
	}

	pets, err := u.petRepo.FindByIDs(u.db, petIDs)
	if err != nil {
		u.log.Warnf("Failed to load patients for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

// MedicalHistory returns the records the calling doctor wrote for a pet
func (u *doctorUsecase) MedicalHistory(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.recordRepo.FindByPetAndDoctor(u.db, petID, userID)
	if err != nil {
		u.log.Warnf("Failed to load medical history for pet %s: %+v", petID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// Profile returns the calling doctor's account with its profile
func (u *doctorUsecase) Profile(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return nil, err
	}
	if user == nil || user.DoctorProfile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	return converter.UserToResponse(user), nil
}
