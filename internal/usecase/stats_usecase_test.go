package usecase

import (
	"testing"
	"time"

	"vetclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPrescriptionRepository is a mock implementation of PrescriptionRepository
type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	args := m.Called(db, prescription)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.Prescription, error) {
	args := m.Called(db, petID)
	return args.Get(0).([]entity.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) CountByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func TestStartOfDay_UsesOwnLocation(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	moment := time.Date(2026, 3, 10, 3, 0, 0, 0, zone)

	got := startOfDay(moment)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, zone, got.Location())

	// Epoch truncation lands on the UTC day boundary instead, a different
	// instant for any offset zone
	assert.NotEqual(t, got, moment.Truncate(24*time.Hour))
}

func TestDoctorDashboard_TodayWindowIsLocalMidnight(t *testing.T) {
	appointmentRepo := &MockAppointmentRepository{}
	prescriptionRepo := &MockPrescriptionRepository{}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	uc := NewStatsUsecase(nil, log, nil, appointmentRepo, nil, prescriptionRepo, nil)

	doctorID := uuid.New()
	ctx := contextForUser(doctorID, entity.RoleIDDoctor)

	var gotFrom, gotTo time.Time
	appointmentRepo.On("CountByDoctorBetween", mock.Anything, doctorID, mock.Anything, mock.Anything, entity.AppointmentStatusConfirmed).
		Run(func(args mock.Arguments) {
			gotFrom = args.Get(2).(time.Time)
			gotTo = args.Get(3).(time.Time)
		}).Return(int64(2), nil)
	appointmentRepo.On("DistinctPetIDsByDoctor", mock.Anything, doctorID).Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)
	prescriptionRepo.On("CountByDoctor", mock.Anything, doctorID).Return(int64(5), nil)

	stats, err := uc.DoctorDashboard(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.AppointmentsToday)
	assert.Equal(t, int64(2), stats.TotalPatients)
	assert.Equal(t, int64(5), stats.PrescriptionsIssued)

	assert.Equal(t, 0, gotFrom.Hour())
	assert.Equal(t, 0, gotFrom.Minute())
	assert.Equal(t, 0, gotFrom.Second())
	assert.Equal(t, time.Local, gotFrom.Location())
	assert.Equal(t, 24*time.Hour, gotTo.Sub(gotFrom))
}
