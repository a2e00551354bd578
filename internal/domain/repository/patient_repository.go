package repository

import (
	"healthtrack/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB, keyword string) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
