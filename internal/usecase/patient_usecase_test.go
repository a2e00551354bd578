package usecase

import (
	"context"
	"testing"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_CreateGetAndSearch(t *testing.T) {
	env := newTestEnv(t, "uc_patient_create", nil)
	ctx := context.Background()

	created, err := env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		IDType: "CC", IDNumber: "123456", Name: "Luis Torres", Age: 52,
		Gender: "Masculino", Phone: "3105551234", Address: "Calle 10",
	})
	require.NoError(t, err)
	env.seedPatient(t, "María López")

	got, err := env.patients.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.IDNumber)
	assert.Equal(t, 52, got.Age)

	all, err := env.patients.GetAllPatients(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	found, err := env.patients.GetAllPatients(ctx, "Luis")
	require.NoError(t, err)
	require.Equal(t, 1, found.Total)
	assert.Equal(t, created.ID, found.Patients[0].ID)

	assert.Equal(t, []string{entity.AuditActionPatientCreate}, env.auditActions(t))
}

func TestPatientUsecase_GetMissing(t *testing.T) {
	env := newTestEnv(t, "uc_patient_missing", nil)

	_, err := env.patients.GetPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.ErrorIs(t, env.patients.DeletePatient(context.Background(), 99), ErrPatientNotFound)
}

func TestPatientUsecase_Delete(t *testing.T) {
	env := newTestEnv(t, "uc_patient_delete", nil)
	patient := env.seedPatient(t, "Luis Torres")

	require.NoError(t, env.patients.DeletePatient(context.Background(), patient.ID))

	_, err := env.patients.GetPatient(context.Background(), patient.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
