package converter

import (
	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:            hospital.ID,
		Name:          hospital.Name,
		Address:       hospital.Address,
		ContactNumber: hospital.ContactNumber,
		Email:         hospital.Email,
		Services:      hospital.Services,
		CreatedAt:     hospital.CreatedAt,
		UpdatedAt:     hospital.UpdatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		responses[i] = *HospitalToResponse(&hospital)
	}
	return responses
}
