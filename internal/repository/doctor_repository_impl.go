package repository

import (
	"errors"

	"healthtrack/internal/domain/entity"
	domainRepo "healthtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("name ASC").Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
