package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsForeignKeyError(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}

	assert.True(t, isForeignKeyError(fkErr))
	assert.True(t, isForeignKeyError(fmt.Errorf("delete doctor: %w", fkErr)))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyError(errors.New("boom")))
}
