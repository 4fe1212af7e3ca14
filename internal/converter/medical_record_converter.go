package converter

import (
	"github.com/google/uuid"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:                    record.ID,
		Date:                  record.Date,
		Symptoms:              record.Symptoms,
		Diagnosis:             record.Diagnosis,
		Treatment:             record.Treatment,
		PrescribedMedications: record.PrescribedMedications,
		DoctorID:              record.DoctorID,
		PetID:                 record.PetID,
		AppointmentID:         record.AppointmentID,
		Notes:                 record.Notes,
		FollowUpDate:          record.FollowUpDate,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}

	if record.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&record.Doctor)
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *MedicalRecordToResponse(&record)
	}
	return responses
}
