package port

import (
	"context"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// Transactor runs a function as a single unit of work. Every repository and
// ledger call made with the context passed to fn takes part in the same unit
// of work and is discarded together if fn returns an error. A context that
// already carries a unit of work joins it instead of starting a new one, so
// a nested call issued while a transfer is in flight observes the state
// written so far.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CampaignRepository is the campaign store. It is an outbound port and
// enforces no business rule; ids returned by Append are resolvable by Get
// immediately and are never reused. Get and GetForUpdate return nil, nil
// when the campaign does not exist.
type CampaignRepository interface {
	Transactor

	// Append stores a new campaign and returns the id assigned to it.
	// Ids are sequence numbers starting at zero.
	Append(ctx context.Context, c *domain.Campaign) (int64, error)
	// Get returns a snapshot of the campaign.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetForUpdate returns the campaign and locks it until the current unit
	// of work ends. It must be called inside WithinTx.
	GetForUpdate(ctx context.Context, id int64) (*domain.Campaign, error)
	// Update persists the mutable fields of the campaign (TotalRaised,
	// Settled, UpdatedAt).
	Update(ctx context.Context, c *domain.Campaign) error
	// Count returns the number of campaigns ever created.
	Count(ctx context.Context) (int64, error)

	// GetContribution returns the amount recorded for who, zero if absent.
	GetContribution(ctx context.Context, id int64, who domain.Account) (decimal.Decimal, error)
	// SetContribution overwrites the amount recorded for who.
	SetContribution(ctx context.Context, id int64, who domain.Account, amount decimal.Decimal) error
	// SumContributions returns the sum of all amounts recorded for the
	// campaign.
	SumContributions(ctx context.Context, id int64) (decimal.Decimal, error)
}
