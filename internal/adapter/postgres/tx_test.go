package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, retryable(fmt.Errorf("deposit: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, retryable(&pgconn.PgError{Code: "23514"}))
	assert.False(t, retryable(errors.New("boom")))
	assert.False(t, retryable(nil))
}
