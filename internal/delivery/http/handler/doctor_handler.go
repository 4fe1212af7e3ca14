package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/service"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type DoctorHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	doctorUsecase      usecase.DoctorUsecase
	suggestionService  *service.SuggestionService
	validator          *validator.CustomValidator
}

func NewDoctorHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	doctorUsecase usecase.DoctorUsecase,
	suggestionService *service.SuggestionService,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		appointmentUsecase: appointmentUsecase,
		doctorUsecase:      doctorUsecase,
		suggestionService:  suggestionService,
		validator:          validator,
	}
}

// MyAppointments handles listing the calling doctor's appointments
// @Summary List my appointments
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.Response
// @Router /doctor/my-appointments [get]
func (h *DoctorHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	query, err := parseAppointmentQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	list, pagination, err := h.appointmentUsecase.MyAppointments(r.Context(), query)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.SuccessPaginated(w, http.StatusOK, "Appointments retrieved successfully", list, pagination)
}

// Upcoming handles listing the doctor's open appointments from now on
// @Summary List upcoming appointments
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/upcoming [get]
func (h *DoctorHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	query, err := parseAppointmentQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	list, pagination, err := h.appointmentUsecase.Upcoming(r.Context(), query)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.SuccessPaginated(w, http.StatusOK, "Upcoming appointments retrieved successfully", list, pagination)
}

// Past handles listing the doctor's closed appointments, most recent first
// @Summary List past appointments
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/past [get]
func (h *DoctorHandler) Past(w http.ResponseWriter, r *http.Request) {
	query, err := parseAppointmentQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	list, pagination, err := h.appointmentUsecase.Past(r.Context(), query)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.SuccessPaginated(w, http.StatusOK, "Past appointments retrieved successfully", list, pagination)
}

// Confirm handles confirming a pending appointment
// @Summary Confirm an appointment
// @Description Confirm a pending appointment assigned to the calling doctor
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/{id}/confirm [patch]
func (h *DoctorHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Confirm(r.Context(), id)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", appointment)
}

// Complete handles completing an appointment with optional visit notes
// @Summary Complete an appointment
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest false "Completion notes"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/{id}/complete [patch]
func (h *DoctorHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	// Body is optional, a bare complete is fine
	var req dto.CompleteAppointmentRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Complete(r.Context(), id, &req)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// Patients handles listing the doctor's distinct patients
// @Summary List my patients
// @Description List the distinct pets seen by the calling doctor
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/patients [get]
func (h *DoctorHandler) Patients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.doctorUsecase.Patients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// MedicalHistory handles fetching the doctor's records for one patient
// @Summary Get a patient's medical history
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} response.Response
// @Router /doctor/patients/{petId}/medical-history [get]
func (h *DoctorHandler) MedicalHistory(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	history, err := h.doctorUsecase.MedicalHistory(r.Context(), petID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical history")
		return
	}

	response.Success(w, http.StatusOK, "Medical history retrieved successfully", history)
}

// Suggestions handles symptom-based treatment suggestions
// @Summary Get treatment suggestions
// @Description Get indicative diagnoses, treatments and tests for symptoms
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestionRequest true "Symptoms"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/suggestions [post]
func (h *DoctorHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions := h.suggestionService.TreatmentSuggestions(req.Symptoms)

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", &dto.SuggestionResponse{
		Treatments: suggestions,
	})
}

// Profile handles fetching the calling doctor's profile
// @Summary Get my profile
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/profile [get]
func (h *DoctorHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.doctorUsecase.Profile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}
