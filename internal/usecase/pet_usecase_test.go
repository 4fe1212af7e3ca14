package usecase

import (
	"testing"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPetUsecase() (PetUsecase, *MockPetRepository, *MockAuditService) {
	petRepo := &MockPetRepository{}
	auditService := &MockAuditService{}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	uc := NewPetUsecase(nil, log, petRepo, auditService)
	return uc, petRepo, auditService
}

func TestCreatePet_Success(t *testing.T) {
	uc, petRepo, auditService := setupPetUsecase()
	ownerID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)
	weight := decimal.NewFromFloat(12.5)

	petRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Pet) bool {
		return p.OwnerID == ownerID && p.Weight.Equal(weight)
	})).Return(nil)
	auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionPetCreate, "pet", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Create(ctx, &dto.CreatePetRequest{
		Name:   "Rex",
		Type:   "dog",
		Breed:  "Labrador",
		Age:    3,
		Weight: weight,
	})

	assert.NoError(t, err)
	assert.True(t, resp.Weight.Equal(weight))
	petRepo.AssertExpectations(t)
}

func TestCreatePet_NonPositiveWeight(t *testing.T) {
	uc, petRepo, _ := setupPetUsecase()
	ctx := contextForUser(uuid.New(), entity.RoleIDPetOwner)

	for _, weight := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-1.2)} {
		_, err := uc.Create(ctx, &dto.CreatePetRequest{
			Name:   "Rex",
			Type:   "dog",
			Breed:  "Labrador",
			Weight: weight,
		})

		assert.ErrorIs(t, err, ErrPetWeightInvalid)
	}
	petRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdatePet_NonPositiveWeight(t *testing.T) {
	uc, petRepo, _ := setupPetUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)
	weight := decimal.Zero

	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(&entity.Pet{
		ID:      petID,
		OwnerID: ownerID,
		Weight:  decimal.NewFromFloat(4.2),
	}, nil)

	_, err := uc.Update(ctx, petID, &dto.UpdatePetRequest{Weight: &weight})

	assert.ErrorIs(t, err, ErrPetWeightInvalid)
	petRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetPet_OtherOwnerReadsAsNotFound(t *testing.T) {
	uc, petRepo, _ := setupPetUsecase()
	ownerID := uuid.New()
	petID := uuid.New()
	ctx := contextForUser(ownerID, entity.RoleIDPetOwner)

	petRepo.On("FindByIDAndOwner", mock.Anything, petID, ownerID).Return(nil, nil)

	_, err := uc.GetByID(ctx, petID)

	assert.ErrorIs(t, err, ErrPetNotFound)
}
