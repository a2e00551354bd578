package dto

// Request DTOs

// CreateAppointmentRequest carries no content rules for date, time or
// reason; only the referenced ids are checked.
type CreateAppointmentRequest struct {
	PatientID uint   `schema:"paciente_id" json:"patient_id" validate:"required"`
	DoctorID  uint   `schema:"doctor_id" json:"doctor_id" validate:"required"`
	Date      string `schema:"fecha" json:"date"`
	Time      string `schema:"hora" json:"time"`
	Reason    string `schema:"motivo" json:"reason"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uint   `json:"id"`
	PatientID   uint   `json:"patient_id"`
	DoctorID    uint   `json:"doctor_id"`
	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentBoardResponse is everything the appointments page needs.
type AppointmentBoardResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Patients     []PatientResponse     `json:"patients"`
	Doctors      []DoctorResponse      `json:"doctors"`
}
