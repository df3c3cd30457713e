package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

func newCampaign(t *testing.T) *domain.Campaign {
	t.Helper()
	c, err := domain.NewCampaign("alice", "title", "description", time.Hour, decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)
	return c
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for want := int64(0); want < 3; want++ {
		c := newCampaign(t)
		id, err := s.Append(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, want, id)
		assert.Equal(t, want, c.ID)

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	missing, err := s.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id, err := s.Append(ctx, newCampaign(t))
	require.NoError(t, err)
	require.NoError(t, s.Fund(ctx, "bob", decimal.NewFromInt(5)))

	boom := errors.New("boom")
	err = s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.Deposit(ctx, id, "bob", decimal.NewFromInt(2)); err != nil {
			return err
		}
		if err := s.SetContribution(ctx, id, "bob", decimal.NewFromInt(2)); err != nil {
			return err
		}
		_, err := s.Append(ctx, newCampaign(t))
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	balance, err := s.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(5)), "balance restored, got %s", balance)

	escrow, err := s.Escrow(ctx, id)
	require.NoError(t, err)
	assert.True(t, escrow.IsZero())

	contribution, err := s.GetContribution(ctx, id, "bob")
	require.NoError(t, err)
	assert.True(t, contribution.IsZero())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	transfers, err := s.Transfers(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestNestedWithinTxJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			return s.WithinTx(ctx, func(ctx context.Context) error {
				_, err := s.Append(ctx, newCampaign(t))
				return err
			})
		})
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested unit of work deadlocked")
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDepositRequiresBalance(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id, err := s.Append(ctx, newCampaign(t))
	require.NoError(t, err)
	require.NoError(t, s.Fund(ctx, "bob", decimal.RequireFromString("0.5")))

	err = s.Deposit(ctx, id, "bob", decimal.NewFromInt(1))
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	err = s.Deposit(ctx, 42, "bob", decimal.RequireFromString("0.1"))
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Deposit(ctx, id, "bob", decimal.RequireFromString("0.5")))
	balance, err := s.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	escrow, err := s.Escrow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "0.5", escrow.String())
}

func TestLedgerRejectsAmountsFinerThanScale(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id, err := s.Append(ctx, newCampaign(t))
	require.NoError(t, err)
	require.NoError(t, s.Fund(ctx, "bob", decimal.NewFromInt(100)))

	tiny := decimal.RequireFromString("0.0000000000000000005")
	require.ErrorIs(t, s.Fund(ctx, "bob", tiny), domain.ErrInvalidAmount)
	require.ErrorIs(t, s.Deposit(ctx, id, "bob", tiny), domain.ErrTransferFailed)

	balance, err := s.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "100", balance.String())
	escrow, err := s.Escrow(ctx, id)
	require.NoError(t, err)
	assert.True(t, escrow.IsZero())
}

func TestReleaseRejectsZeroPayout(t *testing.T) {
	s := NewStore()
	err := s.Release(context.Background(), domain.Payout{})
	require.ErrorIs(t, err, domain.ErrTransferFailed)
}

func TestSetContributionZeroRemovesEntry(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id, err := s.Append(ctx, newCampaign(t))
	require.NoError(t, err)

	require.NoError(t, s.SetContribution(ctx, id, "bob", decimal.NewFromInt(3)))
	require.NoError(t, s.SetContribution(ctx, id, "carol", decimal.NewFromInt(4)))
	sum, err := s.SumContributions(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "7", sum.String())

	require.NoError(t, s.SetContribution(ctx, id, "bob", decimal.Zero))
	sum, err = s.SumContributions(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "4", sum.String())

	require.Error(t, s.SetContribution(ctx, id, "bob", decimal.NewFromInt(-1)))
}
