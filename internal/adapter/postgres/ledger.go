package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Ledger implements port.ValueLedger and port.TransferJournal on the
// accounts, escrows and transfers tables. Every movement joins the
// transaction carried by ctx.
type Ledger struct {
	pool  *pgxpool.Pool
	clock port.Clock
}

// NewLedger returns a ledger backed by pool that stamps transfers with
// clk. A nil clk means system time.
func NewLedger(pool *pgxpool.Pool, clk port.Clock) *Ledger {
	if clk == nil {
		clk = clock.System{}
	}
	return &Ledger{pool: pool, clock: clk}
}

// Deposit moves amount from the account into trust for the campaign.
func (l *Ledger) Deposit(ctx context.Context, campaignID int64, from domain.Account, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		return fmt.Errorf("%w: deposit of %s", domain.ErrTransferFailed, amount)
	}
	return withinTx(ctx, l.pool, func(ctx context.Context) error {
		q := conn(ctx, l.pool)
		now := l.clock.Now().UTC()
		tag, err := q.Exec(ctx,
			`UPDATE escrows SET balance = balance + $1 WHERE campaign_id = $2`, amount, campaignID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
		}
		tag, err = q.Exec(ctx,
			`UPDATE accounts SET balance = balance - $1, updated_at = $3 WHERE account = $2 AND balance >= $1`,
			amount, string(from), now)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: insufficient balance on %s", domain.ErrTransferFailed, from)
		}
		return l.record(ctx, &campaignID, domain.TransferDeposit, from, amount, now)
	})
}

// Release moves a payout out of trust to its recipient.
func (l *Ledger) Release(ctx context.Context, p domain.Payout) error {
	if p.IsZero() || !p.Amount().IsPositive() {
		return fmt.Errorf("%w: empty payout", domain.ErrTransferFailed)
	}
	return withinTx(ctx, l.pool, func(ctx context.Context) error {
		q := conn(ctx, l.pool)
		id := p.CampaignID()
		now := l.clock.Now().UTC()
		tag, err := q.Exec(ctx,
			`UPDATE escrows SET balance = balance - $1 WHERE campaign_id = $2 AND balance >= $1`,
			p.Amount(), id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: trust balance of campaign %d below %s", domain.ErrTransferFailed, id, p.Amount())
		}
		if err := l.credit(ctx, p.Recipient(), p.Amount(), now); err != nil {
			return err
		}
		return l.record(ctx, &id, p.Kind(), p.Recipient(), p.Amount(), now)
	})
}

// Fund credits an account.
func (l *Ledger) Fund(ctx context.Context, account domain.Account, amount decimal.Decimal) error {
	if !account.Valid() {
		return fmt.Errorf("%w: account is required", domain.ErrInvalidParameters)
	}
	if !domain.ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return withinTx(ctx, l.pool, func(ctx context.Context) error {
		now := l.clock.Now().UTC()
		if err := l.credit(ctx, account, amount, now); err != nil {
			return err
		}
		return l.record(ctx, nil, domain.TransferFund, account, amount, now)
	})
}

// Balance returns the free balance of an account. Unknown accounts hold
// nothing.
func (l *Ledger) Balance(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := conn(ctx, l.pool).QueryRow(ctx,
		`SELECT balance FROM accounts WHERE account = $1`, string(account)).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	return balance, err
}

// Escrow returns the trust balance held for a campaign.
func (l *Ledger) Escrow(ctx context.Context, campaignID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := conn(ctx, l.pool).QueryRow(ctx,
		`SELECT balance FROM escrows WHERE campaign_id = $1`, campaignID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	return balance, err
}

// Transfers returns the transfers of a campaign, oldest first.
func (l *Ledger) Transfers(ctx context.Context, campaignID int64) ([]domain.Transfer, error) {
	if _, err := l.Escrow(ctx, campaignID); err != nil {
		return nil, err
	}
	rows, err := conn(ctx, l.pool).Query(ctx, `
        SELECT id, campaign_id, kind, account, amount, created_at
        FROM transfers
        WHERE campaign_id = $1
        ORDER BY seq`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transfer, error) {
		var (
			t       domain.Transfer
			kind    string
			account string
		)
		err := row.Scan(&t.ID, &t.CampaignID, &kind, &account, &t.Amount, &t.CreatedAt)
		t.Kind = domain.TransferKind(kind)
		t.Account = domain.Account(account)
		t.CreatedAt = t.CreatedAt.UTC()
		return t, err
	})
}

// GetStats aggregates campaign transfers in [req.From, req.To].
func (l *Ledger) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT
            count(*) FILTER (WHERE kind = 'deposit'),
            COALESCE(sum(amount) FILTER (WHERE kind = 'deposit'), 0),
            count(*) FILTER (WHERE kind = 'payout'),
            COALESCE(sum(amount) FILTER (WHERE kind = 'payout'), 0),
            count(*) FILTER (WHERE kind = 'refund'),
            COALESCE(sum(amount) FILTER (WHERE kind = 'refund'), 0)
        FROM transfers
        WHERE campaign_id IS NOT NULL AND created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var resp port.StatsResp
	err := conn(ctx, l.pool).QueryRow(ctx, query, args...).Scan(
		&resp.Deposits, &resp.DepositAmount,
		&resp.Payouts, &resp.PayoutAmount,
		&resp.Refunds, &resp.RefundAmount,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (l *Ledger) credit(ctx context.Context, account domain.Account, amount decimal.Decimal, now time.Time) error {
	_, err := conn(ctx, l.pool).Exec(ctx, `
        INSERT INTO accounts (account, balance, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (account) DO UPDATE
        SET balance = accounts.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at`,
		string(account), amount, now)
	return err
}

func (l *Ledger) record(ctx context.Context, campaignID *int64, kind domain.TransferKind, account domain.Account, amount decimal.Decimal, now time.Time) error {
	_, err := conn(ctx, l.pool).Exec(ctx, `
        INSERT INTO transfers (id, campaign_id, kind, account, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), campaignID, string(kind), string(account), amount, now)
	return err
}
