package converter

import (
	"github.com/google/uuid"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// VaccinationToResponse converts a Vaccination entity to its DTO
func VaccinationToResponse(vaccination *entity.Vaccination) *dto.VaccinationResponse {
	if vaccination == nil {
		return nil
	}

	response := &dto.VaccinationResponse{
		ID:               vaccination.ID,
		Name:             vaccination.Name,
		Date:             vaccination.Date,
		NextDueDate:      vaccination.NextDueDate,
		AdministeredByID: vaccination.AdministeredByID,
		PetID:            vaccination.PetID,
		Notes:            vaccination.Notes,
		CreatedAt:        vaccination.CreatedAt,
		UpdatedAt:        vaccination.UpdatedAt,
	}

	if vaccination.AdministeredBy.ID != uuid.Nil {
		response.AdministeredBy = UserToResponse(&vaccination.AdministeredBy)
	}

	return response
}

// VaccinationsToResponses converts a slice of Vaccination entities to DTOs
func VaccinationsToResponses(vaccinations []entity.Vaccination) []dto.VaccinationResponse {
	responses := make([]dto.VaccinationResponse, len(vaccinations))
	for i, vaccination := range vaccinations {
		responses[i] = *VaccinationToResponse(&vaccination)
	}
	return responses
}
