package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestCampaign(t *testing.T, goal string) *Campaign {
	t.Helper()
	c, err := NewCampaign("org", "Title", "Description", time.Hour, dec(goal), t0)
	require.NoError(t, err)
	c.ID = 7
	return c
}

func TestNewCampaignTruncatesDeadline(t *testing.T) {
	c, err := NewCampaign("org", "t", "d", 90*time.Second, dec("1"), t0.Add(400*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, t0.Add(90*time.Second), c.Deadline)
	assert.True(t, c.TotalRaised.IsZero())
	assert.False(t, c.Settled)
}

func TestOpenUntilDeadline(t *testing.T) {
	c := newTestCampaign(t, "1")
	assert.True(t, c.Open(t0))
	assert.True(t, c.Open(c.Deadline.Add(-time.Nanosecond)))
	assert.False(t, c.Open(c.Deadline))
}

func TestAccept(t *testing.T) {
	c := newTestCampaign(t, "1")

	require.NoError(t, c.Accept(dec("0.4"), t0))
	require.NoError(t, c.Accept(dec("0.6"), t0))
	assert.True(t, dec("1").Equal(c.TotalRaised))
	assert.True(t, c.GoalReached())

	assert.ErrorIs(t, c.Accept(decimal.Zero, t0), ErrInvalidAmount)
	assert.ErrorIs(t, c.Accept(dec("-1"), t0), ErrInvalidAmount)
	// Closed takes precedence over a bad amount.
	assert.ErrorIs(t, c.Accept(decimal.Zero, c.Deadline), ErrCampaignClosed)
}

func TestSettleCheckOrder(t *testing.T) {
	c := newTestCampaign(t, "1")
	require.NoError(t, c.Accept(dec("0.5"), t0))

	_, err := c.Settle("stranger", c.Deadline)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.Settle("org", t0)
	assert.ErrorIs(t, err, ErrTooEarly)
	_, err = c.Settle("org", c.Deadline)
	assert.ErrorIs(t, err, ErrGoalNotReached)

	require.NoError(t, c.Accept(dec("0.5"), t0))
	p, err := c.Settle("org", c.Deadline)
	require.NoError(t, err)
	assert.True(t, c.Settled)
	assert.Equal(t, int64(7), p.CampaignID())
	assert.Equal(t, Account("org"), p.Recipient())
	assert.Equal(t, TransferPayout, p.Kind())
	assert.True(t, dec("1").Equal(p.Amount()))
	assert.True(t, dec("1").Equal(c.TotalRaised))

	_, err = c.Settle("org", c.Deadline)
	assert.ErrorIs(t, err, ErrAlreadySettled)
}

func TestRefundCheckOrder(t *testing.T) {
	c := newTestCampaign(t, "2")
	require.NoError(t, c.Accept(dec("0.5"), t0))

	_, err := c.Refund("alice", dec("0.5"), t0)
	assert.ErrorIs(t, err, ErrTooEarly)
	_, err = c.Refund("bob", decimal.Zero, c.Deadline)
	assert.ErrorIs(t, err, ErrNothingToWithdraw)

	p, err := c.Refund("alice", dec("0.5"), c.Deadline)
	require.NoError(t, err)
	assert.True(t, c.TotalRaised.IsZero())
	assert.False(t, c.Settled)
	assert.Equal(t, Account("alice"), p.Recipient())
	assert.Equal(t, TransferRefund, p.Kind())
	assert.True(t, dec("0.5").Equal(p.Amount()))
}

func TestRefundRejectedWhenGoalReached(t *testing.T) {
	c := newTestCampaign(t, "1")
	require.NoError(t, c.Accept(dec("1"), t0))

	_, err := c.Refund("org", dec("1"), c.Deadline)
	assert.ErrorIs(t, err, ErrGoalWasReached)
}

func TestZeroPayout(t *testing.T) {
	assert.True(t, Payout{}.IsZero())
}
