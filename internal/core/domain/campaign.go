package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is a funding round with a goal, a deadline and an organizer.
// Amounts are whole ledger units represented as decimals.
//
// Goal and Deadline never change after creation. Settled flips from false
// to true exactly once, on a successful WithdrawFunds. TotalRaised always
// equals the sum of the contribution ledger of the campaign.
type Campaign struct {
	ID          int64
	Organizer   Account
	Title       string
	Description string
	Goal        decimal.Decimal
	Deadline    time.Time
	TotalRaised decimal.Decimal
	Settled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCampaign validates the creation parameters and returns an open
// campaign owned by organizer. The deadline is now+duration truncated to
// whole seconds, the resolution of ledger timestamps. The ID is assigned
// by the store on append.
func NewCampaign(organizer Account, title, description string, duration time.Duration, goal decimal.Decimal, now time.Time) (*Campaign, error) {
	switch {
	case !organizer.Valid():
		return nil, fmt.Errorf("%w: organizer is required", ErrInvalidParameters)
	case strings.TrimSpace(title) == "":
		return nil, fmt.Errorf("%w: title is required", ErrInvalidParameters)
	case strings.TrimSpace(description) == "":
		return nil, fmt.Errorf("%w: description is required", ErrInvalidParameters)
	case duration < time.Second:
		return nil, fmt.Errorf("%w: duration must be at least one second", ErrInvalidParameters)
	case !goal.IsPositive():
		return nil, fmt.Errorf("%w: goal must be positive", ErrInvalidParameters)
	case !ValidAmount(goal):
		return nil, fmt.Errorf("%w: goal does not fit the ledger (max %d decimal places)", ErrInvalidParameters, AmountScale)
	}
	now = now.UTC()
	return &Campaign{
		Organizer:   organizer,
		Title:       title,
		Description: description,
		Goal:        goal,
		Deadline:    now.Add(duration).Truncate(time.Second),
		TotalRaised: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Open reports whether the campaign still accepts contributions at now.
func (c *Campaign) Open(now time.Time) bool {
	return now.Before(c.Deadline)
}

// GoalReached reports whether the funds held reach the goal.
func (c *Campaign) GoalReached() bool {
	return c.TotalRaised.GreaterThanOrEqual(c.Goal)
}

// Accept records a contribution of amount at now. The caller is
// responsible for moving the value and for crediting the contributor's
// entry in the contribution ledger.
func (c *Campaign) Accept(amount decimal.Decimal, now time.Time) error {
	if !c.Open(now) {
		return ErrCampaignClosed
	}
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}
	c.TotalRaised = c.TotalRaised.Add(amount)
	c.UpdatedAt = now.UTC()
	return nil
}

// Settle marks a successful campaign as settled and returns the payout of
// the whole amount raised to the organizer. The campaign must be persisted
// before the payout is released.
func (c *Campaign) Settle(caller Account, now time.Time) (Payout, error) {
	switch {
	case caller != c.Organizer:
		return Payout{}, ErrUnauthorized
	case c.Open(now):
		return Payout{}, ErrTooEarly
	case !c.GoalReached():
		return Payout{}, ErrGoalNotReached
	case c.Settled:
		return Payout{}, ErrAlreadySettled
	}
	c.Settled = true
	c.UpdatedAt = now.UTC()
	return Payout{
		campaignID: c.ID,
		recipient:  c.Organizer,
		amount:     c.TotalRaised,
		kind:       TransferPayout,
	}, nil
}

// Refund returns the payout of balance back to caller for a failed
// campaign and removes it from TotalRaised. balance is the caller's entry
// in the contribution ledger; the caller must zero that entry and persist
// the campaign before the payout is released.
func (c *Campaign) Refund(caller Account, balance decimal.Decimal, now time.Time) (Payout, error) {
	switch {
	case c.Open(now):
		return Payout{}, ErrTooEarly
	case c.GoalReached():
		return Payout{}, ErrGoalWasReached
	case !balance.IsPositive():
		return Payout{}, ErrNothingToWithdraw
	}
	c.TotalRaised = c.TotalRaised.Sub(balance)
	c.UpdatedAt = now.UTC()
	return Payout{
		campaignID: c.ID,
		recipient:  caller,
		amount:     balance,
		kind:       TransferRefund,
	}, nil
}
