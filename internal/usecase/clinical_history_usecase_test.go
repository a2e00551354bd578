package usecase

import (
	"context"
	"testing"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClinicalHistoryUsecase_AddAndView(t *testing.T) {
	env := newTestEnv(t, "uc_history_add", nil)
	ctx := context.Background()
	patient := env.seedPatient(t, "Luis Torres")

	record, err := env.history.AddRecord(ctx, patient.ID, &dto.ClinicalHistoryRequest{
		Date: "2024-02-01", Diagnosis: "Gripe", Treatment: "Reposo",
	})
	require.NoError(t, err)
	assert.Equal(t, patient.ID, record.PatientID)
	assert.Empty(t, record.BloodType)

	history, err := env.history.GetPatientHistory(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis Torres", history.Patient.Name)
	require.Equal(t, 1, history.Total)
	assert.Equal(t, "Gripe", history.Records[0].Diagnosis)
}

func TestClinicalHistoryUsecase_UnknownPatient(t *testing.T) {
	env := newTestEnv(t, "uc_history_unknown", nil)
	ctx := context.Background()

	_, err := env.history.GetPatientHistory(ctx, 77)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = env.history.AddRecord(ctx, 77, &dto.ClinicalHistoryRequest{Diagnosis: "x"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Empty(t, env.auditActions(t))
}

func TestClinicalHistoryUsecase_UpdateKeepsPatient(t *testing.T) {
	env := newTestEnv(t, "uc_history_update", nil)
	ctx := context.Background()
	patient := env.seedPatient(t, "Luis Torres")

	record, err := env.history.AddRecord(ctx, patient.ID, &dto.ClinicalHistoryRequest{
		Date: "2024-02-01", Diagnosis: "Gripe", Treatment: "Reposo", Allergies: "Polen",
	})
	require.NoError(t, err)

	updated, err := env.history.UpdateRecord(ctx, record.ID, &dto.ClinicalHistoryRequest{
		Date: "2024-02-03", Diagnosis: "Bronquitis", Treatment: "Antibiótico", BloodType: "O+",
	})
	require.NoError(t, err)
	assert.Equal(t, patient.ID, updated.PatientID)
	assert.Equal(t, "Bronquitis", updated.Diagnosis)
	assert.Empty(t, updated.Allergies)

	reread, err := env.history.GetRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-03", reread.Date)
	assert.Equal(t, "O+", reread.BloodType)

	_, err = env.history.UpdateRecord(ctx, record.ID+10, &dto.ClinicalHistoryRequest{})
	assert.ErrorIs(t, err, ErrClinicalHistoryNotFound)
	_, err = env.history.GetRecord(ctx, record.ID+10)
	assert.ErrorIs(t, err, ErrClinicalHistoryNotFound)

	assert.Equal(t, []string{entity.AuditActionHistoryCreate, entity.AuditActionHistoryUpdate}, env.auditActions(t))
}
