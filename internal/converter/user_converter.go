package converter

import (
	"vetclinic-api/internal/delivery/dto"
	"vetclinic-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      entity.RoleNameByID(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			Name:           user.DoctorProfile.Name,
			Specialization: user.DoctorProfile.Specialization,
			HospitalID:     user.DoctorProfile.HospitalID,
			ContactNumber:  user.DoctorProfile.ContactNumber,
		}
	}

	if user.OwnerProfile != nil {
		response.OwnerProfile = &dto.OwnerProfileResponse{
			FirstName: user.OwnerProfile.FirstName,
			LastName:  user.OwnerProfile.LastName,
			Phone:     user.OwnerProfile.Phone,
			Address:   user.OwnerProfile.Address,
		}
	}

	return response
}
