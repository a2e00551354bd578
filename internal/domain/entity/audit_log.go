package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityName string    `gorm:"column:entity_name;type:varchar(50);index" json:"entity_name"`
	EntityID   string    `gorm:"column:entity_id;type:varchar(50)" json:"entity_id"`
	Metadata   JSON      `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON is a map persisted as a JSON document in a text column
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan scan value into JSON, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionDoctorDelete      = "doctor.delete"
	AuditActionPatientCreate     = "patient.create"
	AuditActionPatientDelete     = "patient.delete"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentStatus = "appointment.status"
	AuditActionAppointmentDelete = "appointment.delete"
	AuditActionHistoryCreate     = "history.create"
	AuditActionHistoryUpdate     = "history.update"
)
