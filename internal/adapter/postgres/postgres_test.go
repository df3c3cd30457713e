package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// newTestPool connects to the database named by PSQL_TEST_ADDRESS, applies
// the migrations and empties every table. Tests are skipped without it.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE transfers, escrows, contributions, accounts, campaigns`)
	require.NoError(t, err)
	return pool
}

func appendCampaign(t *testing.T, repo *CampaignRepository, goal string) *domain.Campaign {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	c, err := domain.NewCampaign("org", "Title", "Description", time.Hour, decimal.RequireFromString(goal), now)
	require.NoError(t, err)
	_, err = repo.Append(context.Background(), c)
	require.NoError(t, err)
	return c
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool, nil)
	ctx := context.Background()

	first := appendCampaign(t, repo, "1")
	second := appendCampaign(t, repo, "2")
	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.Get(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, second.Goal.Equal(got.Goal))
	assert.True(t, second.Deadline.Equal(got.Deadline))

	missing, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDepositAndReleaseWithinTx(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool, nil)
	ledger := NewLedger(pool, nil)
	ctx := context.Background()

	c := appendCampaign(t, repo, "1")
	require.NoError(t, ledger.Fund(ctx, "alice", decimal.NewFromInt(5)))

	err := repo.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := repo.GetForUpdate(ctx, c.ID)
		if err != nil {
			return err
		}
		amount := decimal.NewFromInt(2)
		if err := locked.Accept(amount, time.Now()); err != nil {
			return err
		}
		if err := ledger.Deposit(ctx, c.ID, "alice", amount); err != nil {
			return err
		}
		if err := repo.SetContribution(ctx, c.ID, "alice", amount); err != nil {
			return err
		}
		return repo.Update(ctx, locked)
	})
	require.NoError(t, err)

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3).Equal(balance))
	escrow, err := ledger.Escrow(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(escrow))
	sum, err := repo.SumContributions(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(sum))

	err = ledger.Deposit(ctx, c.ID, "alice", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrTransferFailed)

	transfers, err := ledger.Transfers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, domain.TransferDeposit, transfers[0].Kind)

	stats, err := ledger.GetStats(ctx, port.StatsReq{From: time.Now().Add(-time.Hour), To: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Deposits)
	assert.True(t, decimal.NewFromInt(2).Equal(stats.DepositAmount))
}

func TestWithinTxRollsBack(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool, nil)
	ledger := NewLedger(pool, nil)
	ctx := context.Background()

	c := appendCampaign(t, repo, "1")
	require.NoError(t, ledger.Fund(ctx, "alice", decimal.NewFromInt(5)))

	err := repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := ledger.Deposit(ctx, c.ID, "alice", decimal.NewFromInt(1)); err != nil {
			return err
		}
		return domain.ErrCampaignClosed
	})
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(balance))
	escrow, err := ledger.Escrow(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, escrow.IsZero())
}

func TestGetForUpdateNeedsTx(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool, nil)

	_, err := repo.GetForUpdate(context.Background(), 0)
	assert.Error(t, err)
}

func TestTransfersUseLedgerClock(t *testing.T) {
	pool := newTestPool(t)
	clk := clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := NewCampaignRepository(pool, clk)
	ledger := NewLedger(pool, clk)
	ctx := context.Background()

	c := appendCampaign(t, repo, "1")
	require.NoError(t, ledger.Fund(ctx, "alice", decimal.NewFromInt(5)))
	clk.Advance(time.Hour)
	require.NoError(t, ledger.Deposit(ctx, c.ID, "alice", decimal.NewFromInt(1)))

	transfers, err := ledger.Transfers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.True(t, clk.Now().Equal(transfers[0].CreatedAt), "transfer stamped %s", transfers[0].CreatedAt)
}
