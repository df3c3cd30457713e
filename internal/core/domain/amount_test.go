package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidAmount(t *testing.T) {
	cases := map[string]bool{
		"1":                      true,
		"0.000000000000000001":   true,
		"1.50000000000000000000": true, // trailing zeros beyond the scale are exact
		"0.0000000000000000005":  false,
		"1.0000000000000000001":  false,
		"0":                      false,
		"-1":                     false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidAmount(dec(in)), in)
	}

	assert.True(t, ValidAmount(decimal.New(1, 60).Sub(decimal.New(1, -18))))
	assert.False(t, ValidAmount(decimal.New(1, 60)))
}

func TestNewCampaignRejectsGoalFinerThanLedger(t *testing.T) {
	_, err := NewCampaign("org", "t", "d", time.Hour, dec("0.0000000000000000004"), t0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewCampaign("org", "t", "d", time.Hour, dec("1.0000000000000000001"), t0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestAcceptRejectsAmountFinerThanLedger(t *testing.T) {
	c := newTestCampaign(t, "1")

	err := c.Accept(dec("0.0000000000000000005"), t0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, c.TotalRaised.IsZero())
}
