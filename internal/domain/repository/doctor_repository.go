package repository

import (
	"healthtrack/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
