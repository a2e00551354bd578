package repository

import (
	"testing"

	"healthtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepository_CreateStoresSubmittedValues(t *testing.T) {
	db := setupTestDB(t, "patient_create")
	repo := NewPatientRepository()

	patient := &entity.Patient{
		IDType:   "CC",
		IDNumber: "123456789",
		Name:     "Luis Torres",
		Age:      52,
		Gender:   "Masculino",
		Phone:    "3105551234",
		Address:  "Carrera 7 # 12-30",
	}
	require.NoError(t, repo.Create(db, patient))

	found, err := repo.FindByID(db, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "CC", found.IDType)
	assert.Equal(t, "123456789", found.IDNumber)
	assert.Equal(t, "Luis Torres", found.Name)
	assert.Equal(t, 52, found.Age)
	assert.Equal(t, "Masculino", found.Gender)
	assert.Equal(t, "3105551234", found.Phone)
	assert.Equal(t, "Carrera 7 # 12-30", found.Address)
}

func TestPatientRepository_CreateDoesNotValidate(t *testing.T) {
	db := setupTestDB(t, "patient_novalidate")
	repo := NewPatientRepository()

	patient := &entity.Patient{IDNumber: "abc", Phone: "555-12", Name: "Sin Validar"}
	assert.NoError(t, repo.Create(db, patient))
}

func TestPatientRepository_FindAllWithKeyword(t *testing.T) {
	db := setupTestDB(t, "patient_keyword")
	repo := NewPatientRepository()

	require.NoError(t, repo.Create(db, &entity.Patient{Name: "María López", IDNumber: "111", Phone: "3000000001"}))
	require.NoError(t, repo.Create(db, &entity.Patient{Name: "Andrés Mora", IDNumber: "222", Phone: "3000000002"}))
	require.NoError(t, repo.Create(db, &entity.Patient{Name: "Mariana Díaz", IDNumber: "333", Phone: "3000000003"}))

	all, err := repo.FindAll(db, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Andrés Mora", all[0].Name)

	byName, err := repo.FindAll(db, "Mari")
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "María López", byName[0].Name)
	assert.Equal(t, "Mariana Díaz", byName[1].Name)

	byID, err := repo.FindAll(db, " 222 ")
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Andrés Mora", byID[0].Name)

	byPhone, err := repo.FindAll(db, "0003")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Mariana Díaz", byPhone[0].Name)
}

func TestPatientRepository_FindByIDMissing(t *testing.T) {
	db := setupTestDB(t, "patient_missing")

	found, err := NewPatientRepository().FindByID(db, 42)
	assert.NoError(t, err)
	assert.Nil(t, found)
}
