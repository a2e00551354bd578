package repository

import (
	"healthtrack/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicalHistoryRepository interface {
	Create(db *gorm.DB, record *entity.ClinicalHistory) error
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.ClinicalHistory, error)
	FindByID(db *gorm.DB, id uint) (*entity.ClinicalHistory, error)
	Update(db *gorm.DB, record *entity.ClinicalHistory) error
}
