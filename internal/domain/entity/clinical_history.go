package entity

import "time"

// ClinicalHistory is one entry of a patient's clinical record
type ClinicalHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	Date        string    `gorm:"column:record_date;type:varchar(20)" json:"date"`
	Diagnosis   string    `gorm:"type:text" json:"diagnosis"`
	Treatment   string    `gorm:"type:text" json:"treatment"`
	BloodType   string    `gorm:"type:varchar(10)" json:"blood_type"`
	Allergies   string    `gorm:"type:text" json:"allergies"`
	Relatives   string    `gorm:"type:text" json:"relatives"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
}

func (ClinicalHistory) TableName() string {
	return "clinical_histories"
}
