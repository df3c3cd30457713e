package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferKind classifies a movement of value on the ledger.
type TransferKind string

const (
	// TransferDeposit moves a contribution from an account into trust.
	TransferDeposit TransferKind = "deposit"
	// TransferPayout releases the whole trust balance to the organizer.
	TransferPayout TransferKind = "payout"
	// TransferRefund releases a contribution back to its contributor.
	TransferRefund TransferKind = "refund"
	// TransferFund credits an account from outside the system.
	TransferFund TransferKind = "fund"
)

// Transfer is a journal record of a value movement. CampaignID is nil for
// movements that do not involve a campaign (funding an account).
type Transfer struct {
	ID         uuid.UUID
	CampaignID *int64
	Kind       TransferKind
	Account    Account
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
