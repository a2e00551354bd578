package handler_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientForm(idNumber, phone string) url.Values {
	return url.Values{
		"tipo_identificacion": {"CC"},
		"identificacion":      {idNumber},
		"nombre":              {"Luis Torres"},
		"edad":                {"52"},
		"genero":              {"Masculino"},
		"telefono":            {phone},
		"direccion":           {"Calle 10 # 4-20"},
	}
}

func TestPatientSubmit_Valid(t *testing.T) {
	s := newTestServer(t, "http_patient_valid")

	rec := s.postForm("/pacientes", patientForm("123456789", "3105551234"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luis Torres")

	var patients []entity.Patient
	require.NoError(t, s.db.Find(&patients).Error)
	require.Len(t, patients, 1)
	assert.Equal(t, "CC", patients[0].IDType)
	assert.Equal(t, "123456789", patients[0].IDNumber)
	assert.Equal(t, 52, patients[0].Age)
	assert.Equal(t, "Masculino", patients[0].Gender)
	assert.Equal(t, "3105551234", patients[0].Phone)
	assert.Equal(t, "Calle 10 # 4-20", patients[0].Address)
}

func TestPatientSubmit_RejectsNonDigitFields(t *testing.T) {
	s := newTestServer(t, "http_patient_invalid")

	tests := []struct {
		name     string
		idNumber string
		phone    string
		field    string
	}{
		{"id number with letters", "12AB", "3105551234", "id_number must contain only digits"},
		{"phone with dashes", "123456", "310-555", "phone must contain only digits"},
		{"empty id number", "", "3105551234", "id_number must contain only digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.postForm("/pacientes", patientForm(tt.idNumber, tt.phone))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.field)
		})
	}

	assert.Zero(t, s.count(t, &entity.Patient{}))
}

func TestPatientSubmit_RejectsNonNumericAge(t *testing.T) {
	s := newTestServer(t, "http_patient_age")

	form := patientForm("123456", "3105551234")
	form.Set("edad", "treinta")

	rec := s.postForm("/pacientes", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "edad is invalid")
	assert.Zero(t, s.count(t, &entity.Patient{}))
}

func TestPatientPage_Search(t *testing.T) {
	s := newTestServer(t, "http_patient_search")
	s.seedPatient(t, "Luis Torres")
	s.seedPatient(t, "María López")

	rec := s.get("/pacientes?q=Mar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María López")
	assert.NotContains(t, rec.Body.String(), "Luis Torres")
}

func TestPatientAPI(t *testing.T) {
	s := newTestServer(t, "http_patient_api")

	rec := s.sendJSON(http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"id_type": "CC", "id_number": "555", "name": "Luis Torres", "age": 52, "phone": "3105551234",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.PatientResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))

	rec = s.get("/api/v1/patients/" + itoa(created.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.get("/api/v1/patients/9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.get("/api/v1/patients/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.sendJSON(http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"id_number": "55 5", "phone": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Error, "id_number")
	assert.Contains(t, env.Error, "phone")

	rec = s.get("/api/v1/patients?q=Luis")
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.PatientListResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	assert.Equal(t, 1, list.Total)
}
