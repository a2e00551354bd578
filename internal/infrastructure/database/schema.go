package database

import (
	"fmt"

	"healthtrack/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every table owned by the application, parents first.
var Models = []interface{}{
	&entity.Doctor{},
	&entity.Patient{},
	&entity.Appointment{},
	&entity.ClinicalHistory{},
	&entity.AuditLog{},
}

// EnsureSchema creates any missing table. It never drops or rewrites data
// and is safe to run on every start.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
