package repository

import (
	"errors"

	"healthtrack/internal/domain/entity"
	domainRepo "healthtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusPending
	}
	return db.Create(appointment).Error
}

// FindAllDetailed joins every appointment with its patient and doctor names.
// Rows whose patient or doctor no longer exists are not returned.
func (r *appointmentRepository) FindAllDetailed(db *gorm.DB) ([]entity.AppointmentDetail, error) {
	var rows []entity.AppointmentDetail
	err := db.Table("appointments AS a").
		Select("a.id, a.patient_id, a.doctor_id, p.name AS patient_name, d.name AS doctor_name, " +
			"a.appointment_date, a.appointment_time, a.reason, a.status").
		Joins("JOIN patients p ON a.patient_id = p.id").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Order("a.appointment_date DESC").
		Order("a.appointment_time DESC").
		Order("a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus moves an appointment from one status to another in a single
// statement. Returns affected rows: 0 means the appointment was not in the
// expected status.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uint, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// Delete removes the appointment if present. Deleting a missing id affects
// no rows and is not an error.
func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
