package converter

import (
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
)

// ClinicalHistoryRequestToEntity converts a ClinicalHistoryRequest DTO to a ClinicalHistory entity for patientID
func ClinicalHistoryRequestToEntity(patientID uint, req *dto.ClinicalHistoryRequest) *entity.ClinicalHistory {
	return &entity.ClinicalHistory{
		PatientID:   patientID,
		Date:        req.Date,
		Diagnosis:   req.Diagnosis,
		Treatment:   req.Treatment,
		BloodType:   req.BloodType,
		Allergies:   req.Allergies,
		Relatives:   req.Relatives,
		Description: req.Description,
	}
}

// ClinicalHistoryToResponse converts a ClinicalHistory entity to ClinicalHistoryResponse DTO
func ClinicalHistoryToResponse(record *entity.ClinicalHistory) *dto.ClinicalHistoryResponse {
	if record == nil {
		return nil
	}

	return &dto.ClinicalHistoryResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		Date:        record.Date,
		Diagnosis:   record.Diagnosis,
		Treatment:   record.Treatment,
		BloodType:   record.BloodType,
		Allergies:   record.Allergies,
		Relatives:   record.Relatives,
		Description: record.Description,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ClinicalHistoriesToResponses converts a slice of ClinicalHistory entities to slice of ClinicalHistoryResponse DTOs
func ClinicalHistoriesToResponses(records []entity.ClinicalHistory) []dto.ClinicalHistoryResponse {
	responses := make([]dto.ClinicalHistoryResponse, len(records))
	for i := range records {
		responses[i] = *ClinicalHistoryToResponse(&records[i])
	}
	return responses
}
