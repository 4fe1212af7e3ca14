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
	"vetclinic-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAccessDenied     = errors.New("you don't have access to this appointment")
	ErrAppointmentDatePast         = errors.New("appointment date must be in the future")
	ErrAppointmentNotPending       = errors.New("only pending appointments can be confirmed")
	ErrAppointmentAlreadyCompleted = errors.New("appointment is already completed")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentInvalidStatus    = errors.New("invalid appointment status")
	ErrPetNotFound                 = errors.New("pet not found")
	ErrDoctorNotFound              = errors.New("doctor not found")
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	MyAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error)
	Upcoming(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error)
	Past(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	petRepo         repository.PetRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		petRepo:         petRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// Create books a new appointment. The pet must belong to the caller and the
// doctor must exist with the doctor role. New appointments start as pending.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !req.Date.After(time.Now()) {
		return nil, ErrAppointmentDatePast
	}

	pet, err := u.petRepo.FindByIDAndOwner(u.db, req.PetID, userID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	doctor, err := u.userRepo.FindDoctorByID(u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PetID:       req.PetID,
		DoctorID:    req.DoctorID,
		CreatedByID: userID,
		Date:        req.Date,
		Status:      entity.AppointmentStatusPending,
		Reason:      req.Reason,
		Notes:       req.Notes,
	}

	if err := u.appointmentRepo.Create(u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), appointment.Status)

	// Reload with pet and doctor info for the response
	full, err := u.appointmentRepo.FindByID(u.db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(full), nil
}

// GetByID fetches a single appointment. Admins see any appointment, doctors
// only ones assigned to them, pet owners only ones they booked. An ownership
// mismatch is access denied, not not-found: the caller learns the appointment
// exists but nothing else about it.
func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// List returns appointments scoped by the caller's role. Pet owners only see
// appointments for their own pets, doctors only their assigned ones, admins
// everything. Results are sorted by date ascending.
func (u *appointmentUsecase) List(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	filter, err := u.baseFilter(query)
	if err != nil {
		return nil, nil, err
	}

	switch roleID {
	case entity.RoleIDPetOwner:
		ownedIDs, err := u.petRepo.IDsByOwner(u.db, userID)
		if err != nil {
			u.log.Warnf("Failed to list pets for owner %s: %+v", userID, err)
			return nil, nil, err
		}
		filter.DoctorID = query.DoctorID
		filter.PetIDs = intersectIDs(ownedIDs, query.PetIDs)
		if len(filter.PetIDs) == 0 {
			// Owner has no matching pets, nothing can match
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}},
				response.NewPagination(filter.Page, filter.Limit, 0), nil
		}
	case entity.RoleIDDoctor:
		filter.DoctorID = userID
	default:
		filter.DoctorID = query.DoctorID
	}

	return u.findPage(filter)
}

// Update applies a partial edit to date, reason or notes. Only the assigned
// doctor, the creator or an admin may edit, and only while the appointment is
// still pending or confirmed.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	appointment, err := u.authorize(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Date != nil {
		if !req.Date.After(time.Now()) {
			return nil, ErrAppointmentDatePast
		}
		fields["date"] = *req.Date
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		return converter.AppointmentToResponse(appointment), nil
	}

	active := []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}
	rows, err := u.appointmentRepo.UpdateFields(u.db, id, active, fields)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.staleStatusError(id)
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionAppointmentUpdate,
		"appointment", id.String(), nil, fields)

	return u.reload(id)
}

// Confirm moves a pending appointment to confirmed. Only the assigned doctor
// may confirm. The transition is a single conditional update so two racing
// callers cannot both succeed.
func (u *appointmentUsecase) Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.load(id)
	if err != nil {
		return nil, err
	}
	if !appointment.IsAssignedDoctor(userID) {
		return nil, ErrAppointmentAccessDenied
	}

	rows, err := u.appointmentRepo.UpdateStatus(u.db, id,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed, nil)
	if err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotPending
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionAppointmentConfirm,
		"appointment", id.String(), appointment.Status, entity.AppointmentStatusConfirmed)

	return u.reload(id)
}

// Complete marks an appointment as completed and optionally records visit
// notes. Completing straight from pending is allowed so walk-ins can be
// closed out without an explicit confirmation. Only the assigned doctor may
// complete.
func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.load(id)
	if err != nil {
		return nil, err
	}
	if !appointment.IsAssignedDoctor(userID) {
		return nil, ErrAppointmentAccessDenied
	}

	var extra map[string]interface{}
	if req != nil && req.Notes != "" {
		extra = map[string]interface{}{"notes": req.Notes}
	}

	rows, err := u.appointmentRepo.UpdateStatus(u.db, id,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCompleted, extra)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.staleStatusError(id)
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionAppointmentComplete,
		"appointment", id.String(), appointment.Status, entity.AppointmentStatusCompleted)

	return u.reload(id)
}

// Cancel cancels an appointment that is not already completed or cancelled.
// The assigned doctor, the creator or an admin may cancel.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	appointment, err := u.authorize(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := u.appointmentRepo.UpdateStatus(u.db, id,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCancelled, nil)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.staleStatusError(id)
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionAppointmentCancel,
		"appointment", id.String(), appointment.Status, entity.AppointmentStatusCancelled)

	return u.reload(id)
}

// Reschedule moves an appointment to a new future date, preserving its
// status. Terminal appointments cannot be rescheduled.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	appointment, err := u.authorize(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.Date.After(time.Now()) {
		return nil, ErrAppointmentDatePast
	}

	active := []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}
	rows, err := u.appointmentRepo.UpdateFields(u.db, id, active, map[string]interface{}{"date": req.Date})
	if err != nil {
		u.log.Warnf("Failed to reschedule appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.staleStatusError(id)
	}

	u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionAppointmentReschedule,
		"appointment", id.String(), appointment.Date, req.Date)

	return u.reload(id)
}

// MyAppointments lists all appointments assigned to the calling doctor,
// optionally narrowed by status, date ascending.
func (u *appointmentUsecase) MyAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, errors.New("user not found in context")
	}

	filter, err := u.baseFilter(query)
	if err != nil {
		return nil, nil, err
	}
	filter.DoctorID = userID

	return u.findPage(filter)
}

// Upcoming lists the calling doctor's open appointments from now on, soonest
// first.
func (u *appointmentUsecase) Upcoming(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, errors.New("user not found in context")
	}

	page, limit := normalizePaging(query.Page, query.Limit)
	now := time.Now()
	filter := &entity.AppointmentFilter{
		DoctorID:  userID,
		Statuses:  []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		StartDate: &now,
		Page:      page,
		Limit:     limit,
	}

	return u.findPage(filter)
}

// Past lists the calling doctor's closed appointments before now, most
// recent first.
func (u *appointmentUsecase) Past(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, *response.Pagination, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, errors.New("user not found in context")
	}

	page, limit := normalizePaging(query.Page, query.Limit)
	now := time.Now()
	filter := &entity.AppointmentFilter{
		DoctorID: userID,
		Statuses: []entity.AppointmentStatus{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled},
		EndDate:  &now,
		Page:     page,
		Limit:    limit,
		SortDesc: true,
	}

	return u.findPage(filter)
}

// load fetches an appointment or returns ErrAppointmentNotFound
func (u *appointmentUsecase) load(id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// authorize loads an appointment and checks the caller may act on it.
// Admins always pass. Doctors must be the assigned doctor and creators the
// booking owner.
func (u *appointmentUsecase) authorize(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.load(id)
	if err != nil {
		return nil, err
	}

	if roleID == entity.RoleIDAdmin {
		return appointment, nil
	}
	if appointment.IsAssignedDoctor(userID) || appointment.IsCreator(userID) {
		return appointment, nil
	}
	return nil, ErrAppointmentAccessDenied
}

// staleStatusError explains why a conditional status update matched no rows
func (u *appointmentUsecase) staleStatusError(id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	switch appointment.Status {
	case entity.AppointmentStatusCompleted:
		return ErrAppointmentAlreadyCompleted
	case entity.AppointmentStatusCancelled:
		return ErrAppointmentAlreadyCancelled
	default:
		return ErrAppointmentInvalidStatus
	}
}

func (u *appointmentUsecase) reload(id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.load(id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// baseFilter converts a query into a domain filter, validating the status
func (u *appointmentUsecase) baseFilter(query *dto.AppointmentQuery) (*entity.AppointmentFilter, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	filter := &entity.AppointmentFilter{
		PetIDs:    query.PetIDs,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      page,
		Limit:     limit,
	}

	if query.Status != "" {
		status := entity.AppointmentStatus(query.Status)
		if !entity.ValidAppointmentStatus(status) {
			return nil, ErrAppointmentInvalidStatus
		}
		filter.Statuses = []entity.AppointmentStatus{status}
	}

	return filter, nil
}

func (u *appointmentUsecase) findPage(filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, *response.Pagination, error) {
	appointments, total, err := u.appointmentRepo.FindAll(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, response.NewPagination(filter.Page, filter.Limit, total), nil
}

// normalizePaging clamps paging inputs to page >= 1 and 1 <= limit <= 100
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// intersectIDs returns owned filtered to requested, or owned when no
// explicit pet filter was given
func intersectIDs(owned, requested []uuid.UUID) []uuid.UUID {
	if len(requested) == 0 {
		return owned
	}
	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}
	result := []uuid.UUID{}
	for _, id := range requested {
		if _, ok := ownedSet[id]; ok {
			result = append(result, id)
		}
	}
	return result
}
