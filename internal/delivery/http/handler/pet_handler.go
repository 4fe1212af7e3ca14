package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
	"vetclinic-api/pkg/validator"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

// Create handles registering a new pet
// @Summary Register a pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePetRequest true "Pet Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pets [post]
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPetWeightInvalid:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet registered successfully", pet)
}

// GetAll handles listing the caller's pets
// @Summary List my pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pets [get]
func (h *PetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// GetByID handles fetching one of the caller's pets
// @Summary Get a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [get]
func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	pet, err := h.petUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

// Update handles a partial pet edit
// @Summary Update a pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body dto.UpdatePetRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [patch]
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetWeightInvalid:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

// Delete handles removing one of the caller's pets
// @Summary Delete a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.petUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}
