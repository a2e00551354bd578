package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrDoctorInUse             = errors.New("doctor is referenced by appointments")
	ErrPatientNotFound         = errors.New("patient not found")
	ErrPatientInUse            = errors.New("patient is referenced by other records")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotPending   = errors.New("appointment is not pending")
	ErrClinicalHistoryNotFound = errors.New("clinical history record not found")
)

// FieldError reports request fields that reference data which does not
// exist. Handlers render it the same way as a validation failure.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}
