package db

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore(memory.WithClock(clk))
	svc := usecase.NewCampaignUseCase(store, store, store, clk, nil)

	id, err := Seed(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	c, err := svc.Campaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, DemoOrganizer, c.Organizer)
	assert.True(t, decimal.RequireFromString("1.3").Equal(c.Goal))
	assert.Equal(t, clk.Now().Add(24*time.Hour), c.Deadline)

	for _, acc := range []domain.Account{"organizer", "contributor-1", "contributor-2"} {
		balance, err := svc.Balance(ctx, acc)
		require.NoError(t, err)
		assert.True(t, demoBalance.Equal(balance), acc.String())
	}

	id, err = Seed(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
