package entity

import "time"

// Doctor represents a physician that can be booked for appointments
type Doctor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null;index" json:"name"`
	Specialty string    `gorm:"type:varchar(100);not null" json:"specialty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Email     string    `gorm:"type:varchar(150)" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
