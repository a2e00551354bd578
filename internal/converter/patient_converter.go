package converter

import (
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
)

// PatientRequestToEntity converts a CreatePatientRequest DTO to a Patient entity
func PatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	return &entity.Patient{
		IDType:   req.IDType,
		IDNumber: req.IDNumber,
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Address:  req.Address,
	}
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		IDType:    patient.IDType,
		IDNumber:  patient.IDNumber,
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Phone:     patient.Phone,
		Address:   patient.Address,
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
