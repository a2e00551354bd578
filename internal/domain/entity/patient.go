package entity

import "time"

// Patient represents a person registered at the clinic
type Patient struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IDType    string    `gorm:"column:id_type;type:varchar(30)" json:"id_type"`
	IDNumber  string    `gorm:"column:id_number;type:varchar(30);index" json:"id_number"`
	Name      string    `gorm:"type:varchar(150);index" json:"name"`
	Age       int       `json:"age"`
	Gender    string    `gorm:"type:varchar(30)" json:"gender"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}
