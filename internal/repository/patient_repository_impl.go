package repository

import (
	"errors"
	"strings"

	"healthtrack/internal/domain/entity"
	domainRepo "healthtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// Create inserts the patient as given. Digit-only checks belong to the
// request layer, not here.
func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

// FindAll lists patients ordered by name, optionally filtered by a keyword
// matched against name, identification number and phone.
func (r *patientRepository) FindAll(db *gorm.DB, keyword string) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.Order("name ASC").Order("id ASC")
	if kw := strings.TrimSpace(keyword); kw != "" {
		like := "%" + kw + "%"
		query = query.Where("name LIKE ? OR id_number LIKE ? OR phone LIKE ?", like, like, like)
	}
	if err := query.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
