package main

import (
	"context"
	"log/slog"

	"crowdfund/internal/adapter/clock"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// app holds the wired service and the resources it owns.
type app struct {
	svc      *usecase.CampaignUseCase
	advancer httpadapter.Advancer
	close    func()
}

// newApp wires the storage driver and clock selected by cfg into the
// campaign use case.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	var (
		repo    port.CampaignRepository
		ledger  port.ValueLedger
		journal port.TransferJournal
		a       = &app{close: func() {}}
		clk     port.Clock = clock.System{}
	)
	if cfg.Clock.Adjustable() {
		offset := clock.NewOffset()
		clk, a.advancer = offset, offset
		logger.Warn("clock can be advanced over HTTP")
	}

	if cfg.Storage.Memory() {
		store := memory.NewStore(memory.WithClock(clk))
		repo, ledger, journal = store, store, store
		logger.Warn("using in-memory storage, state is lost on exit")
	} else {
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, err
		}
		l := postgres.NewLedger(pool, clk)
		repo, ledger, journal = postgres.NewCampaignRepository(pool, clk), l, l
		a.close = pool.Close
	}

	a.svc = usecase.NewCampaignUseCase(repo, ledger, journal, clk, logger)
	return a, nil
}

func (a *app) handlerOptions() []httpadapter.Option {
	if a.advancer == nil {
		return nil
	}
	return []httpadapter.Option{httpadapter.WithClockAdvancer(a.advancer)}
}
