package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/delivery/http/middleware"
	"vetclinic-api/internal/domain/entity"
	"vetclinic-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ownerStatsCacheTTL   = time.Minute
	vaccinationDueWindow = 30 * 24 * time.Hour
)

type StatsUsecase interface {
	OwnerDashboard(ctx context.Context) (*dto.OwnerDashboardStats, error)
	DoctorDashboard(ctx context.Context) (*dto.DoctorDashboardStats, error)
}

type statsUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	petRepo          repository.PetRepository
	appointmentRepo  repository.AppointmentRepository
	vaccinationRepo  repository.VaccinationRepository
	prescriptionRepo repository.PrescriptionRepository
	redisClient      *redis.Client
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	appointmentRepo repository.AppointmentRepository,
	vaccinationRepo repository.VaccinationRepository,
	prescriptionRepo repository.PrescriptionRepository,
	redisClient *redis.Client,
) StatsUsecase {
	return &statsUsecase{
		db:               db,
		log:              log,
		petRepo:          petRepo,
		appointmentRepo:  appointmentRepo,
		vaccinationRepo:  vaccinationRepo,
		prescriptionRepo: prescriptionRepo,
		redisClient:      redisClient,
	}
}

// OwnerDashboard aggregates the pet owner's counts. The result is cached in
// Redis for a minute since the dashboard is polled far more often than the
// underlying data changes.
func (u *statsUsecase) OwnerDashboard(ctx context.Context) (*dto.OwnerDashboardStats, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	cacheKey := fmt.Sprintf("stats:owner:%s", userID.String())
	if cached, err := u.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		stats := &dto.OwnerDashboardStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	}

	petCount, err := u.petRepo.CountByOwner(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count pets for owner %s: %+v", userID, err)
		return nil, err
	}

	petIDs, err := u.petRepo.IDsByOwner(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list pet IDs for owner %s: %+v", userID, err)
		return nil, err
	}

	var upcoming, due int64
	if len(petIDs) > 0 {
		upcoming, err = u.appointmentRepo.CountUpcomingByPets(u.db, petIDs, entity.AppointmentStatusConfirmed)
		if err != nil {
			u.log.Warnf("Failed to count upcoming appointments for owner %s: %+v", userID, err)
			return nil, err
		}

		due, err = u.vaccinationRepo.CountDueByPets(u.db, petIDs, time.Now().Add(vaccinationDueWindow))
		if err != nil {
			u.log.Warnf("Failed to count due vaccinations for owner %s: %+v", userID, err)
			return nil, err
		}
	}

	stats := &dto.OwnerDashboardStats{
		PetCount:             petCount,
		UpcomingAppointments: upcoming,
		VaccinationsDue:      due,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := u.redisClient.Set(ctx, cacheKey, payload, ownerStatsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache owner stats: %+v", err)
		}
	}

	return stats, nil
}

// DoctorDashboard aggregates the calling doctor's workload counts
func (u *statsUsecase) DoctorDashboard(ctx context.Context) (*dto.DoctorDashboardStats, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	dayStart := startOfDay(time.Now())
	dayEnd := dayStart.Add(24 * time.Hour)

	today, err := u.appointmentRepo.CountByDoctorBetween(u.db, userID, dayStart, dayEnd, entity.AppointmentStatusConfirmed)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments for doctor %s: %+v", userID, err)
		return nil, err
	}

	petIDs, err := u.appointmentRepo.DistinctPetIDsByDoctor(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count patients for doctor %s: %+v", userID, err)
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.CountByDoctor(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count prescriptions for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DoctorDashboardStats{
		AppointmentsToday:   today,
		TotalPatients:       int64(len(petIDs)),
		PrescriptionsIssued: prescriptions,
	}, nil
}

// startOfDay returns midnight of t's calendar day in t's own location.
// Truncating against the UTC epoch would shift the day boundary for any
// deployment not running in UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
