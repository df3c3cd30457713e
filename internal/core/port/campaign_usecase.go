package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the business operations of the crowdfunding
// ledger. It is the primary port into the application domain. Every
// operation receives the caller identity explicitly; attached value is an
// explicit amount argument.
type CampaignUseCase interface {
	// CreateCampaign opens a new campaign owned by caller and returns its
	// id. No value moves.
	CreateCampaign(ctx context.Context, caller domain.Account, req CreateCampaignReq) (int64, error)

	// Contribute moves amount from caller into trust for the campaign and
	// credits the caller's contribution. Contributions are rejected once
	// the deadline has passed.
	Contribute(ctx context.Context, caller domain.Account, id int64, amount decimal.Decimal) error

	// WithdrawFunds releases everything raised by a successful campaign to
	// its organizer, once. It returns the amount released.
	WithdrawFunds(ctx context.Context, caller domain.Account, id int64) (decimal.Decimal, error)

	// WithdrawContribution refunds the caller's contribution to a failed
	// campaign. It returns the amount refunded.
	WithdrawContribution(ctx context.Context, caller domain.Account, id int64) (decimal.Decimal, error)

	// CampaignsCount returns the number of campaigns ever created.
	CampaignsCount(ctx context.Context) (int64, error)

	// Campaign returns a snapshot of the campaign or domain.ErrNotFound.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// Contribution returns the amount the account holds in the campaign.
	Contribution(ctx context.Context, id int64, who domain.Account) (decimal.Decimal, error)

	// Transfers returns the value movements of a campaign.
	Transfers(ctx context.Context, id int64) ([]domain.Transfer, error)

	// GetStats returns aggregated transfers for campaigns in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// Fund credits an account on the value ledger.
	Fund(ctx context.Context, account domain.Account, amount decimal.Decimal) error

	// Balance returns the free balance of an account on the value ledger.
	Balance(ctx context.Context, account domain.Account) (decimal.Decimal, error)
}

// CreateCampaignReq holds the parameters of a new campaign.
type CreateCampaignReq struct {
	Title       string
	Description string
	Duration    time.Duration
	Goal        decimal.Decimal
}

// StatsResp contains aggregated transfer counts and amounts. Amounts sum
// the value moved by transfers of the respective kind.
type StatsResp struct {
	Deposits      int64           `json:"deposits"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Payouts       int64           `json:"payouts"`
	PayoutAmount  decimal.Decimal `json:"payout_amount"`
	Refunds       int64           `json:"refunds"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
}

// StatsReq selects the transfers to aggregate. Zero bounds are filled in
// from the ledger clock.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
