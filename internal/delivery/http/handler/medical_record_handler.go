package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Create handles writing a medical record for a pet (doctor only)
// @Summary Create a medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param request body dto.CreateMedicalRecordRequest true "Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /pets/{petId}/medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrRecordAppointmentMismatch:
			response.Forbidden(w, err.Error())
		case usecase.ErrFollowUpDatePast:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// ListByPet handles listing a pet's medical records
// @Summary List a pet's medical records
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/medical-records [get]
func (h *MedicalRecordHandler) ListByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	records, err := h.recordUsecase.ListByPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
