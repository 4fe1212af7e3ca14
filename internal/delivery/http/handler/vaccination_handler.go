package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type VaccinationHandler struct {
	vaccinationUsecase usecase.VaccinationUsecase
	validator          *validator.CustomValidator
}

func NewVaccinationHandler(vaccinationUsecase usecase.VaccinationUsecase, validator *validator.CustomValidator) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinationUsecase: vaccinationUsecase,
		validator:          validator,
	}
}

// Create handles recording a vaccination for a pet (doctor only)
// @Summary Record a vaccination
// @Tags Vaccinations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path string true "Pet ID"
// @Param request body dto.CreateVaccinationRequest true "Vaccination Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/vaccinations [post]
func (h *VaccinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	var req dto.CreateVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccination, err := h.vaccinationUsecase.Create(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrNextDueBeforeDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to record vaccination")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vaccination recorded successfully", vaccination)
}

// ListByPet handles listing a pet's vaccinations
// @Summary List a pet's vaccinations
// @Tags Vaccinations
// @Security BearerAuth
// @Produce json
// @Param petId path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/vaccinations [get]
func (h *VaccinationHandler) ListByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := parseIDVar(w, r, "petId")
	if !ok {
		return
	}

	vaccinations, err := h.vaccinationUsecase.ListByPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get vaccinations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vaccinations retrieved successfully", vaccinations)
}
