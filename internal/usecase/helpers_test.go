package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/infrastructure/database"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctors     DoctorUsecase
	patients    PatientUsecase
	appointment AppointmentUsecase
	history     ClinicalHistoryUsecase
	auditLogs   AuditLogUsecase
}

var testSpecialties = []string{"Cardiología", "Pediatría", "Dermatología"}

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// newTestEnv wires every use case over a fresh database. redisClient may be
// nil for a pass-through directory cache.
func newTestEnv(t *testing.T, name string, redisClient *redis.Client) *testEnv {
	t.Helper()
	db := setupTestDB(t, name)

	log := logrus.New()
	log.SetOutput(io.Discard)

	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewClinicalHistoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	audit := service.NewAuditService(db, log, auditLogRepo)
	directory := service.NewDirectoryCache(redisClient, time.Minute, log)

	return &testEnv{
		db:          db,
		log:         log,
		doctors:     NewDoctorUsecase(db, log, doctorRepo, directory, audit, testSpecialties),
		patients:    NewPatientUsecase(db, log, patientRepo, directory, audit),
		appointment: NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, directory, audit),
		history:     NewClinicalHistoryUsecase(db, log, historyRepo, patientRepo, audit),
		auditLogs:   NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

func (e *testEnv) seedDoctor(t *testing.T, name string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{Name: name, Specialty: "Cardiología", Phone: "5550000"}
	require.NoError(t, e.db.Create(doctor).Error)
	return doctor
}

func (e *testEnv) seedPatient(t *testing.T, name string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{IDType: "CC", IDNumber: "1000", Name: name, Age: 30, Phone: "3000000"}
	require.NoError(t, e.db.Create(patient).Error)
	return patient
}

func (e *testEnv) auditActions(t *testing.T) []string {
	t.Helper()
	var logs []entity.AuditLog
	require.NoError(t, e.db.Order("id ASC").Find(&logs).Error)
	actions := make([]string, len(logs))
	for i, l := range logs {
		actions[i] = l.Action
	}
	return actions
}
