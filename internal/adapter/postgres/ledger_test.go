package postgres

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"crowdfund/internal/core/domain"
)

// Amounts are validated before the pool is touched, so no database is
// needed here.
func TestLedgerRejectsAmountsFinerThanScale(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(nil, nil)
	tiny := decimal.RequireFromString("0.0000000000000000005")

	assert.ErrorIs(t, l.Fund(ctx, "bob", tiny), domain.ErrInvalidAmount)
	assert.ErrorIs(t, l.Deposit(ctx, 0, "bob", tiny), domain.ErrTransferFailed)
	assert.ErrorIs(t, l.Fund(ctx, "bob", decimal.New(1, 60)), domain.ErrInvalidAmount)
}
