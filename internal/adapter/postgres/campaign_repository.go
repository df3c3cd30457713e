package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const campaignColumns = `id, organizer, title, description, goal, deadline, total_raised, settled, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool  *pgxpool.Pool
	clock port.Clock
}

// NewCampaignRepository returns a new repository instance. clk stamps
// contribution rows; nil means system time.
func NewCampaignRepository(pool *pgxpool.Pool, clk port.Clock) *CampaignRepository {
	if clk == nil {
		clk = clock.System{}
	}
	return &CampaignRepository{pool: pool, clock: clk}
}

// WithinTx runs fn in a serializable transaction.
func (r *CampaignRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withinTx(ctx, r.pool, fn)
}

// Append inserts the campaign with the next sequence id and opens its
// trust balance. Ids are derived from the table rather than a sequence so
// that a rolled back insert leaves no gap.
func (r *CampaignRepository) Append(ctx context.Context, c *domain.Campaign) (int64, error) {
	var id int64
	err := r.WithinTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.pool)
		err := q.QueryRow(ctx, `
            INSERT INTO campaigns (`+campaignColumns+`)
            SELECT COALESCE(MAX(id) + 1, 0), $1::text, $2::text, $3::text, $4::numeric, $5::timestamptz,
                $6::numeric, $7::boolean, $8::timestamptz, $9::timestamptz
            FROM campaigns
            RETURNING id`,
			string(c.Organizer), c.Title, c.Description, c.Goal, c.Deadline,
			c.TotalRaised, c.Settled, c.CreatedAt, c.UpdatedAt,
		).Scan(&id)
		if err != nil {
			return err
		}
		_, err = q.Exec(ctx, `INSERT INTO escrows (campaign_id, balance) VALUES ($1, 0)`, id)
		return err
	})
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// Get returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

// GetForUpdate returns a campaign by id and locks its row until the
// transaction ends.
func (r *CampaignRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Campaign, error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); !ok {
		return nil, errors.New("postgres: GetForUpdate called outside of a transaction")
	}
	return scanCampaign(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
}

// Update persists the amount raised, the settled flag and the update time.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE campaigns SET total_raised = $1, settled = $2, updated_at = $3 WHERE id = $4`,
		c.TotalRaised, c.Settled, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of campaigns.
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

// GetContribution returns the amount recorded for who, zero if absent.
func (r *CampaignRepository) GetContribution(ctx context.Context, id int64, who domain.Account) (decimal.Decimal, error) {
	var (
		amount decimal.Decimal
		exists bool
	)
	err := conn(ctx, r.pool).QueryRow(ctx, `
        SELECT
            COALESCE((SELECT amount FROM contributions WHERE campaign_id = $1 AND account = $2), 0),
            EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`,
		id, string(who)).Scan(&amount, &exists)
	if err != nil {
		return decimal.Zero, err
	}
	if !exists {
		return decimal.Zero, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return amount, nil
}

// SetContribution overwrites the amount recorded for who. A zero amount
// removes the row.
func (r *CampaignRepository) SetContribution(ctx context.Context, id int64, who domain.Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("postgres: negative contribution %s for %s", amount, who)
	}
	q := conn(ctx, r.pool)
	if amount.IsZero() {
		_, err := q.Exec(ctx, `DELETE FROM contributions WHERE campaign_id = $1 AND account = $2`, id, string(who))
		return err
	}
	_, err := q.Exec(ctx, `
        INSERT INTO contributions (campaign_id, account, amount, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (campaign_id, account) DO UPDATE
        SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
		id, string(who), amount, r.clock.Now().UTC())
	return err
}

// SumContributions returns the sum of the contribution ledger of a
// campaign.
func (r *CampaignRepository) SumContributions(ctx context.Context, id int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM contributions WHERE campaign_id = $1`, id).Scan(&sum)
	return sum, err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		organizer string
	)
	err := row.Scan(&c.ID, &organizer, &c.Title, &c.Description, &c.Goal, &c.Deadline,
		&c.TotalRaised, &c.Settled, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Organizer = domain.Account(organizer)
	c.Deadline = c.Deadline.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}
