package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles booking a new appointment
// @Summary Book an appointment
// @Description Book an appointment for one of the caller's pets
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// List handles listing appointments scoped to the caller's role
// @Summary List appointments
// @Description List appointments visible to the caller, with filters and pagination
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param petId query string false "Filter by pet ID (repeatable)"
// @Param doctorId query string false "Filter by doctor ID (admin only)"
// @Param status query string false "Filter by status"
// @Param startDate query string false "Inclusive lower date bound"
// @Param endDate query string false "Inclusive upper date bound"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseAppointmentQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	list, pagination, err := h.appointmentUsecase.List(r.Context(), query)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.SuccessPaginated(w, http.StatusOK, "Appointments retrieved successfully", list, pagination)
}

// GetByID handles fetching a single appointment
// @Summary Get an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// Update handles a partial appointment edit
// @Summary Update an appointment
// @Description Edit the date, reason or notes of a pending or confirmed appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id} [patch]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// Cancel handles cancelling an appointment
// @Summary Cancel an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), id)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// Reschedule handles moving an appointment to a new date
// @Summary Reschedule an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/reschedule [patch]
func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Reschedule(r.Context(), id, &req)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

// parseIDVar extracts and parses a UUID path variable, writing a 400 on failure
func parseIDVar(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseAppointmentQuery reads list filters from the query string. Dates accept
// RFC3339 or plain YYYY-MM-DD.
func parseAppointmentQuery(r *http.Request) (*dto.AppointmentQuery, error) {
	values := r.URL.Query()
	query := &dto.AppointmentQuery{
		Status: values.Get("status"),
	}

	for _, raw := range values["petId"] {
		petID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidQueryParam("petId")
		}
		query.PetIDs = append(query.PetIDs, petID)
	}

	if raw := values.Get("doctorId"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidQueryParam("doctorId")
		}
		query.DoctorID = doctorID
	}

	if raw := values.Get("startDate"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, errInvalidQueryParam("startDate")
		}
		query.StartDate = &t
	}

	if raw := values.Get("endDate"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, errInvalidQueryParam("endDate")
		}
		// A date-only upper bound means the whole of that day
		if len(raw) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		query.EndDate = &t
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidQueryParam("page")
		}
		query.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidQueryParam("limit")
		}
		query.Limit = limit
	}

	return query, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

type queryParamError string

func (e queryParamError) Error() string {
	return "Invalid query parameter: " + string(e)
}

func errInvalidQueryParam(name string) error {
	return queryParamError(name)
}

// respondAppointmentError maps lifecycle errors to HTTP statuses
func respondAppointmentError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrPetNotFound:
		response.NotFound(w, "Pet not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrAppointmentAccessDenied:
		response.Forbidden(w, err.Error())
	case usecase.ErrAppointmentDatePast, usecase.ErrAppointmentInvalidStatus:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrAppointmentNotPending,
		usecase.ErrAppointmentAlreadyCompleted,
		usecase.ErrAppointmentAlreadyCancelled:
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to process appointment")
	}
}
