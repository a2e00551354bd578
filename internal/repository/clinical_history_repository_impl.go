package repository

import (
	"errors"

	"healthtrack/internal/domain/entity"
	domainRepo "healthtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicalHistoryRepository struct{}

func NewClinicalHistoryRepository() domainRepo.ClinicalHistoryRepository {
	return &clinicalHistoryRepository{}
}

func (r *clinicalHistoryRepository) Create(db *gorm.DB, record *entity.ClinicalHistory) error {
	return db.Create(record).Error
}

func (r *clinicalHistoryRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.ClinicalHistory, error) {
	var records []entity.ClinicalHistory
	err := db.Where("patient_id = ?", patientID).
		Order("record_date DESC").
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *clinicalHistoryRepository) FindByID(db *gorm.DB, id uint) (*entity.ClinicalHistory, error) {
	var record entity.ClinicalHistory
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Update overwrites every editable field of the record with the given id,
// including empty values. The patient link is never changed.
func (r *clinicalHistoryRepository) Update(db *gorm.DB, record *entity.ClinicalHistory) error {
	return db.Model(&entity.ClinicalHistory{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"record_date": record.Date,
			"diagnosis":   record.Diagnosis,
			"treatment":   record.Treatment,
			"blood_type":  record.BloodType,
			"allergies":   record.Allergies,
			"relatives":   record.Relatives,
			"description": record.Description,
		}).Error
}
