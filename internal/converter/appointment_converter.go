package converter

import (
	"github.com/google/uuid"

	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PetID:       appointment.PetID,
		DoctorID:    appointment.DoctorID,
		CreatedByID: appointment.CreatedByID,
		Date:        appointment.Date,
		Status:      string(appointment.Status),
		Reason:      appointment.Reason,
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include pet and doctor info when preloaded
	if appointment.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
