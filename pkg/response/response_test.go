package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Doctor created successfully", map[string]string{"name": "Ana Ruiz"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Doctor created successfully", body["message"])
	assert.NotContains(t, body, "error")
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"phone": "phone must contain only digits"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, map[string]interface{}{"phone": "phone must contain only digits"}, body["error"])
}

func TestErrorHelpersDefaultMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decode(t, rec)["message"])

	rec = httptest.NewRecorder()
	InternalServerError(rec, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["message"])
}

func TestConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Only pending appointments can change status")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}
