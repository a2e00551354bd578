package repository

import (
	"healthtrack/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAllDetailed(db *gorm.DB) ([]entity.AppointmentDetail, error)
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uint, from, to entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
