package converter

import (
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
)

// AppointmentRequestToEntity converts a CreateAppointmentRequest DTO to a pending Appointment entity
func AppointmentRequestToEntity(req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
	}
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Reason:    appointment.Reason,
		Status:    string(appointment.Status),
	}
}

// AppointmentDetailsToResponses converts joined appointment rows to AppointmentResponse DTOs
func AppointmentDetailsToResponses(rows []entity.AppointmentDetail) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.AppointmentResponse{
			ID:          row.ID,
			PatientID:   row.PatientID,
			DoctorID:    row.DoctorID,
			PatientName: row.PatientName,
			DoctorName:  row.DoctorName,
			Date:        row.Date,
			Time:        row.Time,
			Reason:      row.Reason,
			Status:      string(row.Status),
		}
	}
	return responses
}
