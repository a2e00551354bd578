package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a booking of a patient with a doctor. Date and time are
// stored as submitted; no overlap or uniqueness rule applies.
type Appointment struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint              `gorm:"not null;index" json:"doctor_id"`
	Date      string            `gorm:"column:appointment_date;type:varchar(20);not null" json:"date"`
	Time      string            `gorm:"column:appointment_time;type:varchar(20);not null" json:"time"`
	Reason    string            `gorm:"type:text" json:"reason"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if appointment is still pending
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// AppointmentDetail is an appointment row joined with the names of its
// patient and doctor.
type AppointmentDetail struct {
	ID          uint              `gorm:"column:id"`
	PatientID   uint              `gorm:"column:patient_id"`
	DoctorID    uint              `gorm:"column:doctor_id"`
	PatientName string            `gorm:"column:patient_name"`
	DoctorName  string            `gorm:"column:doctor_name"`
	Date        string            `gorm:"column:appointment_date"`
	Time        string            `gorm:"column:appointment_time"`
	Reason      string            `gorm:"column:reason"`
	Status      AppointmentStatus `gorm:"column:status"`
}
