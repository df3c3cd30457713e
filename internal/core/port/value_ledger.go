package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// ValueLedger is the host environment that owns value. It moves value
// between accounts and the trust balance held for each campaign, atomically
// per call. Implementations wrap domain.ErrTransferFailed when a movement
// cannot happen (for example an insufficient balance) and must join the
// unit of work carried by ctx.
type ValueLedger interface {
	// Deposit moves amount from the account into trust for the campaign.
	Deposit(ctx context.Context, campaignID int64, from domain.Account, amount decimal.Decimal) error
	// Release moves a payout out of trust to its recipient.
	Release(ctx context.Context, p domain.Payout) error
	// Fund credits an account with value created outside the system.
	Fund(ctx context.Context, account domain.Account, amount decimal.Decimal) error
	// Balance returns the free balance of an account.
	Balance(ctx context.Context, account domain.Account) (decimal.Decimal, error)
	// Escrow returns the trust balance held for a campaign.
	Escrow(ctx context.Context, campaignID int64) (decimal.Decimal, error)
}

// TransferJournal gives read access to the transfers recorded by the value
// ledger.
type TransferJournal interface {
	// Transfers returns the transfers of a campaign, oldest first.
	Transfers(ctx context.Context, campaignID int64) ([]domain.Transfer, error)
	// GetStats returns aggregated transfers in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// Clock supplies the logical time used to evaluate deadlines.
type Clock interface {
	Now() time.Time
}
