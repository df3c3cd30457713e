package domain

import "github.com/shopspring/decimal"

// Payout is a release of value held in trust for a campaign. It can only be
// obtained from Campaign.Settle or Campaign.Refund, i.e. from a state change
// that already removed the amount from the campaign's books, which is what
// allows a value ledger to accept it without re-checking the campaign.
type Payout struct {
	campaignID int64
	recipient  Account
	amount     decimal.Decimal
	kind       TransferKind
}

func (p Payout) CampaignID() int64       { return p.campaignID }
func (p Payout) Recipient() Account      { return p.recipient }
func (p Payout) Amount() decimal.Decimal { return p.amount }
func (p Payout) Kind() TransferKind      { return p.kind }

// IsZero reports whether p was not produced by a settlement.
func (p Payout) IsZero() bool {
	return p.kind == ""
}
