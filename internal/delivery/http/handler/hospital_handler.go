package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Create handles registering a hospital (admin only)
// @Summary Create a hospital
// @Tags Hospitals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHospitalRequest true "Hospital Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals [post]
func (h *HospitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalAlreadyExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

// GetAll handles listing hospitals (public)
// @Summary List hospitals
// @Tags Hospitals
// @Produce json
// @Success 200 {object} response.Response
// @Router /hospitals [get]
func (h *HospitalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// GetByID handles fetching a hospital (public)
// @Summary Get a hospital
// @Tags Hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [get]
func (h *HospitalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	hospital, err := h.hospitalUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

// Update handles a partial hospital edit (admin only)
// @Summary Update a hospital
// @Tags Hospitals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body dto.UpdateHospitalRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [patch]
func (h *HospitalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalAlreadyExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

// Delete handles removing a hospital (admin only)
// @Summary Delete a hospital
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [delete]
func (h *HospitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.hospitalUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}
