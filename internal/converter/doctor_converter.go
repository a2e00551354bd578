package converter

import (
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
)

// DoctorRequestToEntity converts a CreateDoctorRequest DTO to a Doctor entity
func DoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
	}
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Phone:     doctor.Phone,
		Email:     doctor.Email,
		CreatedAt: doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
