package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, buf
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	log, buf := newBufferedLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	NewRequestLogger(log).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/citas", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, seen, entry["request_id"])
	assert.Equal(t, "/citas", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestRequestLogger_ReusesValidIncomingID(t *testing.T) {
	log, _ := newBufferedLogger()
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	NewRequestLogger(log).Handle(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger_ReplacesInvalidIncomingID(t *testing.T) {
	log, _ := newBufferedLogger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	NewRequestLogger(log).Handle(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestLogger_ServerErrorsLogAtErrorLevel(t *testing.T) {
	log, buf := newBufferedLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	NewRequestLogger(log).Handle(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/doctores", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	handler := NewCORSMiddleware().Handle(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
	assert.True(t, called)
	assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
}
