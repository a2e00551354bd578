package repository

import (
	"fmt"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/infrastructure/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB, name string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{Name: name, Specialty: "Cardiología", Phone: "5550000", Email: "doc@example.com"}
	if err := NewDoctorRepository().Create(db, doctor); err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, name string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{IDType: "CC", IDNumber: "1000", Name: name, Age: 40, Gender: "Femenino", Phone: "3001234", Address: "Calle 1"}
	if err := NewPatientRepository().Create(db, patient); err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return patient
}
