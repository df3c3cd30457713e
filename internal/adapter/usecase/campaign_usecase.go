package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var tracer = otel.Tracer("crowdfund/internal/adapter/usecase")

// statsWindow is the period GetStats covers when no start is given.
const statsWindow = 24 * time.Hour

// CampaignUseCase is the campaign lifecycle engine. It validates and applies
// create, contribute and the two settlement operations against the
// campaign store, moving value through the ledger.
//
// Every mutating operation runs as one unit of work on the store: the
// campaign is read and locked, the domain checks run against a single
// reading of the clock, state changes are written, and only then is value
// released. A failure anywhere discards the whole unit of work.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	ledger  port.ValueLedger
	journal port.TransferJournal
	clock   port.Clock
	logger  *slog.Logger
}

// NewCampaignUseCase wires the engine. A nil logger discards logs.
func NewCampaignUseCase(repo port.CampaignRepository, ledger port.ValueLedger, journal port.TransferJournal, clock port.Clock, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{
		repo:    repo,
		ledger:  ledger,
		journal: journal,
		clock:   clock,
		logger:  logger,
	}
}

// CreateCampaign opens a campaign owned by caller. The deadline is the
// current clock reading plus req.Duration.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller domain.Account, req port.CreateCampaignReq) (id int64, err error) {
	ctx, span := tracer.Start(ctx, "CreateCampaign", trace.WithAttributes(
		attribute.String("caller", caller.String()),
	))
	defer func() { finish(span, err) }()

	c, err := domain.NewCampaign(caller, req.Title, req.Description, req.Duration, req.Goal, u.clock.Now())
	if err != nil {
		return 0, err
	}
	err = u.repo.WithinTx(ctx, func(ctx context.Context) error {
		id, err = u.repo.Append(ctx, c)
		return err
	})
	if err != nil {
		return 0, err
	}

	u.logger.Info("campaign created",
		slog.Int64("campaign_id", id),
		slog.String("organizer", caller.String()),
		slog.String("goal", c.Goal.String()),
		slog.Time("deadline", c.Deadline),
	)
	return id, nil
}

// Contribute moves amount from caller into trust for the campaign and adds
// it to the caller's contribution.
func (u *CampaignUseCase) Contribute(ctx context.Context, caller domain.Account, id int64, amount decimal.Decimal) (err error) {
	ctx, span := tracer.Start(ctx, "Contribute", trace.WithAttributes(
		attribute.Int64("campaign_id", id),
		attribute.String("caller", caller.String()),
		attribute.String("amount", amount.String()),
	))
	defer func() { finish(span, err) }()

	now := u.clock.Now()
	err = u.repo.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lock(ctx, id)
		if err != nil {
			return err
		}
		if err = c.Accept(amount, now); err != nil {
			return err
		}
		if err = u.ledger.Deposit(ctx, id, caller, amount); err != nil {
			return err
		}
		held, err := u.repo.GetContribution(ctx, id, caller)
		if err != nil {
			return err
		}
		if err = u.repo.SetContribution(ctx, id, caller, held.Add(amount)); err != nil {
			return err
		}
		return u.repo.Update(ctx, c)
	})
	if err != nil {
		return err
	}

	u.logger.Info("contribution accepted",
		slog.Int64("campaign_id", id),
		slog.String("contributor", caller.String()),
		slog.String("amount", amount.String()),
	)
	return nil
}

// WithdrawFunds releases everything raised by a successful campaign to its
// organizer. The settled flag is written before the release, so a nested
// call made while the release is in flight fails with
// domain.ErrAlreadySettled.
func (u *CampaignUseCase) WithdrawFunds(ctx context.Context, caller domain.Account, id int64) (amount decimal.Decimal, err error) {
	ctx, span := tracer.Start(ctx, "WithdrawFunds", trace.WithAttributes(
		attribute.Int64("campaign_id", id),
		attribute.String("caller", caller.String()),
	))
	defer func() { finish(span, err) }()

	now := u.clock.Now()
	var payout domain.Payout
	err = u.repo.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lock(ctx, id)
		if err != nil {
			return err
		}
		if payout, err = c.Settle(caller, now); err != nil {
			return err
		}
		if err = u.repo.Update(ctx, c); err != nil {
			return err
		}
		return u.ledger.Release(ctx, payout)
	})
	if err != nil {
		return decimal.Zero, err
	}

	u.logger.Info("funds withdrawn",
		slog.Int64("campaign_id", id),
		slog.String("organizer", caller.String()),
		slog.String("amount", payout.Amount().String()),
	)
	return payout.Amount(), nil
}

// WithdrawContribution refunds the caller's contribution to a failed
// campaign. The contribution is zeroed before the release, so a nested call
// made while the release is in flight fails with
// domain.ErrNothingToWithdraw. Refunds never mark the campaign settled.
func (u *CampaignUseCase) WithdrawContribution(ctx context.Context, caller domain.Account, id int64) (amount decimal.Decimal, err error) {
	ctx, span := tracer.Start(ctx, "WithdrawContribution", trace.WithAttributes(
		attribute.Int64("campaign_id", id),
		attribute.String("caller", caller.String()),
	))
	defer func() { finish(span, err) }()

	now := u.clock.Now()
	var payout domain.Payout
	err = u.repo.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lock(ctx, id)
		if err != nil {
			return err
		}
		held, err := u.repo.GetContribution(ctx, id, caller)
		if err != nil {
			return err
		}
		if payout, err = c.Refund(caller, held, now); err != nil {
			return err
		}
		if err = u.repo.SetContribution(ctx, id, caller, decimal.Zero); err != nil {
			return err
		}
		if err = u.repo.Update(ctx, c); err != nil {
			return err
		}
		return u.ledger.Release(ctx, payout)
	})
	if err != nil {
		return decimal.Zero, err
	}

	u.logger.Info("contribution refunded",
		slog.Int64("campaign_id", id),
		slog.String("contributor", caller.String()),
		slog.String("amount", payout.Amount().String()),
	)
	return payout.Amount(), nil
}

// CampaignsCount returns the number of campaigns ever created.
func (u *CampaignUseCase) CampaignsCount(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

// Campaign returns a snapshot of the campaign.
func (u *CampaignUseCase) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// Contribution returns the amount who holds in the campaign, zero when who
// never contributed or was refunded.
func (u *CampaignUseCase) Contribution(ctx context.Context, id int64, who domain.Account) (decimal.Decimal, error) {
	if _, err := u.Campaign(ctx, id); err != nil {
		return decimal.Zero, err
	}
	return u.repo.GetContribution(ctx, id, who)
}

// Transfers returns the value movements of a campaign, oldest first.
func (u *CampaignUseCase) Transfers(ctx context.Context, id int64) ([]domain.Transfer, error) {
	if _, err := u.Campaign(ctx, id); err != nil {
		return nil, err
	}
	return u.journal.Transfers(ctx, id)
}

// GetStats returns aggregated transfers for campaigns in a period. A zero
// To means the current ledger time and a zero From means statsWindow
// before To.
func (u *CampaignUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if req.To.IsZero() {
		req.To = u.clock.Now()
	}
	if req.From.IsZero() {
		req.From = req.To.Add(-statsWindow)
	}
	return u.journal.GetStats(ctx, req)
}

// Fund credits an account on the value ledger.
func (u *CampaignUseCase) Fund(ctx context.Context, account domain.Account, amount decimal.Decimal) error {
	if err := u.ledger.Fund(ctx, account, amount); err != nil {
		return err
	}
	u.logger.Info("account funded",
		slog.String("account", account.String()),
		slog.String("amount", amount.String()),
	)
	return nil
}

// Balance returns the free balance of an account.
func (u *CampaignUseCase) Balance(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	return u.ledger.Balance(ctx, account)
}

// lock loads the campaign for update inside the current unit of work.
func (u *CampaignUseCase) lock(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, domain.Code(err))
	}
	span.End()
}
