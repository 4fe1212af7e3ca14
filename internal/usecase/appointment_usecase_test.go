package usecase

import (
	"context"
	"testing"
	"time"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/delivery/http/middleware"
	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if appointment, ok := args.Get(0).(*entity.Appointment); ok {
		return appointment, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	args := m.Called(db, filter)
	return args.Get(0).([]entity.Appointment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, toStatus entity.AppointmentStatus, extra map[string]interface{}) (int64, error) {
	args := m.Called(db, id, fromStatuses, toStatus, extra)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fromStatuses []entity.AppointmentStatus, fields map[string]interface{}) (int64, error) {
	args := m.Called(db, id, fromStatuses, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) DistinctPetIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockAppointmentRepository) CountByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time, status entity.AppointmentStatus) (int64, error) {
	args := m.Called(db, doctorID, from, to, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountUpcomingByPets(db *gorm.DB, petIDs []uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	args := m.Called(db, petIDs, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockPetRepository is a mock implementation of PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	args := m.Called(db, pet)
	return args.Error(0)
}

func (m *MockPetRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	args := m.Called(db, id)
	if pet, ok := args.Get(0).(*entity.Pet); ok {
		return pet, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPetRepository) FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Pet, error) {
	args := m.Called(db, id, ownerID)
	if pet, ok := args.Get(0).(*entity.Pet); ok {
		return pet, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPetRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	args := m.Called(db, ownerID)
	return args.Get(0).([]entity.Pet), args.Error(1)
}

func (m *MockPetRepository) IDsByOwner(db *gorm.DB, ownerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(db, ownerID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockPetRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Pet, error) {
	args := m.Called(db, ids)
	return args.Get(0).([]entity.Pet), args.Error(1)
}

func (m *MockPetRepository) CountByOwner(db *gorm.DB, ownerID uuid.UUID) (int64, error) {
	args := m.Called(db, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPetRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	args := m.Called(db, pet)
	return args.Error(0)
}

func (m *MockPetRepository) Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error) {
	args := m.Called(db, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindDoctorByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAuditService is a mock implementation of service.AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

func setupAppointmentUsecase() (AppointmentUsecase, *MockAppointmentRepository, *MockPetRepository, *MockUserRepository, *MockAuditService) {
	appointmentRepo := &MockAppointmentRepository{}
	petRepo := &MockPetRepository{}
	userRepo := &MockUserRepository{}
	auditService := &MockAuditService{}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	uc := NewAppointmentUsecase(nil, log, appointmentRepo, petRepo, userRepo, auditService)
	return uc, appointmentRepo, petRepo, userRepo, auditService
}

func contextForUser(userID uuid.UUID, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleIDKey, roleID)
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	uc, _, _, _, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	_, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		PetID:    uuid.New(),
		DoctorID: uuid.New(),
		Date:     time.Now().Add(-time.Hour),
		Reason:   "annual checkup and vaccines",
	})

	assert.ErrorIs(t, err, ErrAppointmentDatePast)
}

func TestCreateAppointment_PetNotOwned(t *testing.T) {
	uc, _, petRepo, _, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(nil, nil)

	_, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		PetID:    petID,
		DoctorID: uuid.New(),
		Date:     time.Now().Add(24 * time.Hour),
		Reason:   "annual checkup and vaccines",
	})

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestCreateAppointment_DoctorNotFound(t *testing.T) {
	uc, _, petRepo, userRepo, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(&entity.Pet{ID: petID, OwnerID: ownerID}, nil)
	userRepo.On("FindDoctorByID", mock.Anything, doctorID).Return(nil, nil)

	_, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		PetID:    petID,
		DoctorID: doctorID,
		Date:     time.Now().Add(24 * time.Hour),
		Reason:   "annual checkup and vaccines",
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateAppointment_Success(t *testing.T) {
	uc, appointmentRepo, petRepo, userRepo, auditService := setupAppointmentUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(&entity.Pet{ID: petID, OwnerID: ownerID}, nil)
	userRepo.On("FindDoctorByID", mock.Anything, doctorID).Return(&entity.User{ID: doctorID, RoleID: entity.RoleIDDoctor}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
		return a.Status == entity.AppointmentStatusPending && a.CreatedByID == ownerID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Appointment).ID = uuid.New()
	}).Return(nil)
	appointmentRepo.On("FindByID", mock.Anything, mock.Anything).Return(&entity.Appointment{
		ID:     uuid.New(),
		PetID:  petID,
		Status: entity.AppointmentStatusPending,
	}, nil)
	auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentCreate, "appointment", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		PetID:    petID,
		DoctorID: doctorID,
		Date:     time.Now().Add(24 * time.Hour),
		Reason:   "annual checkup and vaccines",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	appointmentRepo.AssertExpectations(t)
}

func TestGetByID_ForbiddenForUnrelatedUser(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ctx := contextForUser(uuid.New(), entity.RoleIDPetOwner)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(&entity.Appointment{
		ID:          appointmentID,
		DoctorID:    uuid.New(),
		CreatedByID: uuid.New(),
		Status:      entity.AppointmentStatusPending,
	}, nil)

	_, err := uc.GetByID(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentAccessDenied)
}

func TestGetByID_AdminSeesAnyAppointment(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ctx := contextForUser(uuid.New(), entity.RoleIDAdmin)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(&entity.Appointment{
		ID:          appointmentID,
		DoctorID:    uuid.New(),
		CreatedByID: uuid.New(),
		Status:      entity.AppointmentStatusConfirmed,
	}, nil)

	resp, err := uc.GetByID(ctx, appointmentID)

	assert.NoError(t, err)
	assert.Equal(t, appointmentID, resp.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ctx := contextForUser(uuid.New(), entity.RoleIDAdmin)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(nil, nil)

	_, err := uc.GetByID(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestConfirm_OnlyAssignedDoctor(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ctx := contextForUser(uuid.New(), entity.RoleIDDoctor)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(&entity.Appointment{
		ID:       appointmentID,
		DoctorID: uuid.New(),
		Status:   entity.AppointmentStatusPending,
	}, nil)

	_, err := uc.Confirm(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentAccessDenied)
	appointmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_Success(t *testing.T) {
	uc, appointmentRepo, _, _, auditService := setupAppointmentUsecase()
	appointmentID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	pending := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusPending,
	}
	confirmed := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusConfirmed,
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(pending, nil).Once()
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed, mock.Anything).Return(int64(1), nil)
	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(confirmed, nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentConfirm, "appointment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Confirm(ctx, appointmentID)

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
	appointmentRepo.AssertExpectations(t)
}

func TestConfirm_NotPendingConflicts(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(&entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusConfirmed,
	}, nil)
	// Conditional update matches nothing when the row is no longer pending
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed, mock.Anything).Return(int64(0), nil)

	_, err := uc.Confirm(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentNotPending)
}

func TestComplete_FromPendingAllowed(t *testing.T) {
	uc, appointmentRepo, _, _, auditService := setupAppointmentUsecase()
	appointmentID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	pending := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusPending,
	}
	completed := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusCompleted,
		Notes:    "healthy, next visit in a year",
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(pending, nil).Once()
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCompleted,
		map[string]interface{}{"notes": "healthy, next visit in a year"}).Return(int64(1), nil)
	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(completed, nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentComplete, "appointment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Complete(ctx, appointmentID, &dto.CompleteAppointmentRequest{
		Notes: "healthy, next visit in a year",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
}

func TestComplete_CancelledRejected(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	cancelled := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusCancelled,
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(cancelled, nil)
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID, mock.Anything,
		entity.AppointmentStatusCompleted, mock.Anything).Return(int64(0), nil)

	_, err := uc.Complete(ctx, appointmentID, &dto.CompleteAppointmentRequest{})

	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	cancelled := &entity.Appointment{
		ID:          appointmentID,
		CreatedByID: ownerID,
		Status:      entity.AppointmentStatusCancelled,
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(cancelled, nil)
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID, mock.Anything,
		entity.AppointmentStatusCancelled, mock.Anything).Return(int64(0), nil)

	_, err := uc.Cancel(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)
}

func TestCancel_CompletedRejected(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	completed := &entity.Appointment{
		ID:          appointmentID,
		CreatedByID: ownerID,
		Status:      entity.AppointmentStatusCompleted,
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(completed, nil)
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID, mock.Anything,
		entity.AppointmentStatusCancelled, mock.Anything).Return(int64(0), nil)

	_, err := uc.Cancel(ctx, appointmentID)

	assert.ErrorIs(t, err, ErrAppointmentAlreadyCompleted)
}

func TestReschedule_PastDateRejected(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(&entity.Appointment{
		ID:          appointmentID,
		CreatedByID: ownerID,
		Status:      entity.AppointmentStatusConfirmed,
	}, nil)

	_, err := uc.Reschedule(ctx, appointmentID, &dto.RescheduleAppointmentRequest{
		Date: time.Now().Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrAppointmentDatePast)
}

func TestReschedule_PreservesStatus(t *testing.T) {
	uc, appointmentRepo, _, _, auditService := setupAppointmentUsecase()
	appointmentID := uuid.New()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)
	newDate := time.Now().Add(48 * time.Hour)

	confirmed := &entity.Appointment{
		ID:          appointmentID,
		CreatedByID: ownerID,
		Status:      entity.AppointmentStatusConfirmed,
	}

	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(confirmed, nil)
	appointmentRepo.On("UpdateFields", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		map[string]interface{}{"date": newDate}).Return(int64(1), nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentReschedule, "appointment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Reschedule(ctx, appointmentID, &dto.RescheduleAppointmentRequest{Date: newDate})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
}

func TestList_OwnerScopedToOwnPets(t *testing.T) {
	uc, appointmentRepo, petRepo, _, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("IDsByOwner", mock.Anything, ownerID).Return([]uuid.UUID{petID}, nil)
	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return len(f.PetIDs) == 1 && f.PetIDs[0] == petID && f.Page == 1 && f.Limit == 10
	})).Return([]entity.Appointment{{ID: uuid.New(), PetID: petID}}, int64(1), nil)

	list, pagination, err := uc.List(ctx, &dto.AppointmentQuery{})

	assert.NoError(t, err)
	assert.Len(t, list.Appointments, 1)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
}

func TestList_OwnerCannotQueryOthersPets(t *testing.T) {
	uc, appointmentRepo, petRepo, _, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	ownPetID := uuid.New()
	otherPetID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("IDsByOwner", mock.Anything, ownerID).Return([]uuid.UUID{ownPetID}, nil)

	// Requesting only someone else's pet intersects to nothing
	list, pagination, err := uc.List(ctx, &dto.AppointmentQuery{PetIDs: []uuid.UUID{otherPetID}})

	assert.NoError(t, err)
	assert.Empty(t, list.Appointments)
	assert.Equal(t, int64(0), pagination.Total)
	appointmentRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestList_OwnerDoctorFilterApplied(t *testing.T) {
	uc, appointmentRepo, petRepo, _, _ := setupAppointmentUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	doctorID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("IDsByOwner", mock.Anything, ownerID).Return([]uuid.UUID{petID}, nil)
	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return f.DoctorID == doctorID && len(f.PetIDs) == 1 && f.PetIDs[0] == petID
	})).Return([]entity.Appointment{}, int64(0), nil)

	_, _, err := uc.List(ctx, &dto.AppointmentQuery{DoctorID: doctorID})

	assert.NoError(t, err)
	appointmentRepo.AssertExpectations(t)
}

func TestList_DoctorScopedToSelf(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return f.DoctorID == doctorID
	})).Return([]entity.Appointment{}, int64(0), nil)

	_, _, err := uc.List(ctx, &dto.AppointmentQuery{DoctorID: uuid.New()})

	assert.NoError(t, err)
	appointmentRepo.AssertExpectations(t)
}

func TestList_InvalidStatusRejected(t *testing.T) {
	uc, _, _, _, _ := setupAppointmentUsecase()
	ctx := contextForUser(uuid.New(), entity.RoleIDAdmin)

	_, _, err := uc.List(ctx, &dto.AppointmentQuery{Status: "missed"})

	assert.ErrorIs(t, err, ErrAppointmentInvalidStatus)
}

func TestList_PaginationClamped(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	ctx := contextForUser(uuid.New(), entity.RoleIDAdmin)

	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return f.Page == 1 && f.Limit == 100
	})).Return([]entity.Appointment{}, int64(250), nil)

	_, pagination, err := uc.List(ctx, &dto.AppointmentQuery{Page: 0, Limit: 500})

	assert.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 100, pagination.Limit)
	assert.Equal(t, 3, pagination.Pages)
}

func TestUpcoming_FiltersOpenStatuses(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return f.DoctorID == doctorID &&
			len(f.Statuses) == 2 &&
			f.StartDate != nil && f.EndDate == nil &&
			!f.SortDesc
	})).Return([]entity.Appointment{}, int64(0), nil)

	_, _, err := uc.Upcoming(ctx, &dto.AppointmentQuery{})

	assert.NoError(t, err)
	appointmentRepo.AssertExpectations(t)
}

func TestPast_SortsDescending(t *testing.T) {
	uc, appointmentRepo, _, _, _ := setupAppointmentUsecase()
	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	appointmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f *entity.AppointmentFilter) bool {
		return f.DoctorID == doctorID &&
			len(f.Statuses) == 2 &&
			f.EndDate != nil && f.StartDate == nil &&
			f.SortDesc
	})).Return([]entity.Appointment{}, int64(0), nil)

	_, _, err := uc.Past(ctx, &dto.AppointmentQuery{})

	assert.NoError(t, err)
	appointmentRepo.AssertExpectations(t)
}

func TestLifecycle_CreateConfirmCompleteThenCancelRejected(t *testing.T) {
	uc, appointmentRepo, petRepo, userRepo, auditService := setupAppointmentUsecase()
	ownerID := uuid.New()
	doctorID := uuid.New()
	petID := uuid.New()
	appointmentID := uuid.New()

	ownerCtx := contextForUser(ownerID, entity.RoleIDPetOwner)
	doctorCtx := contextForUser(doctorID, entity.RoleIDDoctor)

	auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Book
	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(&entity.Pet{ID: petID, OwnerID: ownerID}, nil)
	userRepo.On("FindDoctorByID", mock.Anything, doctorID).Return(&entity.User{ID: doctorID, RoleID: entity.RoleIDDoctor}, nil)

	state := &entity.Appointment{
		ID:          appointmentID,
		PetID:       petID,
		DoctorID:    doctorID,
		CreatedByID: ownerID,
		Status:      entity.AppointmentStatusPending,
	}

	appointmentRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Appointment).ID = appointmentID
	}).Return(nil)
	appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(state, nil)

	resp, err := uc.Create(ownerCtx, &dto.CreateAppointmentRequest{
		PetID:    petID,
		DoctorID: doctorID,
		Date:     time.Now().Add(24 * time.Hour),
		Reason:   "limping on the front left leg",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)

	// Confirm applies the pending -> confirmed conditional update
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed, mock.Anything).Run(func(mock.Arguments) {
		state.Status = entity.AppointmentStatusConfirmed
	}).Return(int64(1), nil)

	resp, err = uc.Confirm(doctorCtx, appointmentID)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)

	// Complete applies the confirmed -> completed conditional update
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCompleted, mock.Anything).Run(func(mock.Arguments) {
		state.Status = entity.AppointmentStatusCompleted
	}).Return(int64(1), nil)

	resp, err = uc.Complete(doctorCtx, appointmentID, &dto.CompleteAppointmentRequest{})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)

	// Cancelling the completed appointment matches no rows and conflicts
	appointmentRepo.On("UpdateStatus", mock.Anything, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCancelled, mock.Anything).Return(int64(0), nil)

	_, err = uc.Cancel(ownerCtx, appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentAlreadyCompleted)
}
