package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create handles issuing a prescription for a pet (doctor only)
// @Summary Create a prescription
// @Tags Prescriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param request body dto.CreatePrescriptionRequest true "Prescription Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/prescriptions [post]
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

// ListByPet handles listing a pet's prescriptions
// @Summary List a pet's prescriptions
// @Tags Prescriptions
// @Security BearerAuth
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/prescriptions [get]
func (h *PrescriptionHandler) ListByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListByPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get prescriptions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}
