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

var ErrHospitalAlreadyExists = errors.New("hospital with this name or email already exists")

type HospitalUsecase interface {
	Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetAll(ctx context.Context) (*dto.HospitalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

func (u *hospitalUsecase) Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	hospital := &entity.Hospital{
		Name:          req.Name,
		Address:       addressToJSON(req.Address),
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Services:      req.Services,
	}

	if err := u.hospitalRepo.Create(u.db, hospital); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "email") {
			return nil, ErrHospitalAlreadyExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionHospitalCreate,
		"hospital", hospital.ID.String(), hospital.Name)

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetAll(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Address != nil {
		hospital.Address = addressToJSON(req.Address)
	}
	if req.ContactNumber != nil {
		hospital.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		hospital.Email = *req.Email
	}
	if req.Services != nil {
		hospital.Services = req.Services
	}

	if err := u.hospitalRepo.Update(u.db, hospital); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "email") {
			return nil, ErrHospitalAlreadyExists
		}
		u.log.Warnf("Failed to update hospital %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionHospitalUpdate,
		"hospital", hospital.ID.String(), nil, hospital.Name)

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	rows, err := u.hospitalRepo.Delete(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete hospital %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrHospitalNotFound
	}

	u.auditService.LogDelete(ctx, u.db, &userID, entity.AuditActionHospitalDelete,
		"hospital", id.String(), nil)

	return nil
}
