package converter

import (
	"github.com/google/uuid"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	medications := make([]dto.MedicationResponse, len(prescription.Medications))
	for i, med := range prescription.Medications {
		medications[i] = dto.MedicationResponse{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Duration:  med.Duration,
		}
	}

	response := &dto.PrescriptionResponse{
		ID:           prescription.ID,
		Medications:  medications,
		DoctorID:     prescription.DoctorID,
		PetID:        prescription.PetID,
		Date:         prescription.Date,
		Instructions: prescription.Instructions,
		CreatedAt:    prescription.CreatedAt,
		UpdatedAt:    prescription.UpdatedAt,
	}

	if prescription.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&prescription.Doctor)
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
