package converter

import (
	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		Type:      string(pet.Type),
		Breed:     pet.Breed,
		Age:       pet.Age,
		Weight:    pet.Weight,
		OwnerID:   pet.OwnerID,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}

	if len(pet.Vaccinations) > 0 {
		response.Vaccinations = VaccinationsToResponses(pet.Vaccinations)
	}
	if len(pet.MedicalRecords) > 0 {
		response.MedicalRecords = MedicalRecordsToResponses(pet.MedicalRecords)
	}

	return response
}

// PetsToResponses converts a slice of Pet entities to DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
