// Package memory implements the campaign store and the value ledger in
// process memory. Campaigns live in an append-only arena indexed by id.
// Every unit of work runs under a single mutex and is rolled back from a
// snapshot when it fails, which gives the same all-or-nothing semantics as
// the postgres adapter without a database.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdfund/internal/adapter/clock"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type txKey struct{}

type state struct {
	campaigns     []domain.Campaign
	contributions []map[domain.Account]decimal.Decimal
	escrow        []decimal.Decimal
	accounts      map[domain.Account]decimal.Decimal
	transfers     []domain.Transfer
}

func (st *state) clone() *state {
	cp := &state{
		campaigns:     slices.Clone(st.campaigns),
		contributions: make([]map[domain.Account]decimal.Decimal, len(st.contributions)),
		escrow:        slices.Clone(st.escrow),
		accounts:      maps.Clone(st.accounts),
		transfers:     slices.Clone(st.transfers),
	}
	for i, m := range st.contributions {
		cp.contributions[i] = maps.Clone(m)
	}
	return cp
}

func (st *state) campaign(id int64) (*domain.Campaign, error) {
	if id < 0 || id >= int64(len(st.campaigns)) {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return &st.campaigns[id], nil
}

// Store implements port.CampaignRepository, port.ValueLedger and
// port.TransferJournal over shared in-memory state.
type Store struct {
	mu    sync.Mutex
	st    *state
	clock port.Clock
}

// Option configures a Store.
type Option func(s *Store)

// WithClock stamps journal entries with c. Defaults to system time.
func WithClock(c port.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		st:    &state{accounts: make(map[domain.Account]decimal.Decimal)},
		clock: clock.System{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// WithinTx runs fn while holding the store lock. State changes made by fn
// are discarded when it returns an error or panics.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if r := recover(); r != nil {
			s.st = snapshot
			panic(r)
		}
		if err != nil {
			s.st = snapshot
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, s))
}

// view runs a read under the lock unless ctx already holds it.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if s.inTx(ctx) {
		return fn(s.st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// update runs a write as its own unit of work unless ctx already carries
// one.
func (s *Store) update(ctx context.Context, fn func(st *state) error) error {
	return s.WithinTx(ctx, func(context.Context) error {
		return fn(s.st)
	})
}

// Append stores c with the next sequence id.
func (s *Store) Append(ctx context.Context, c *domain.Campaign) (int64, error) {
	var id int64
	err := s.update(ctx, func(st *state) error {
		id = int64(len(st.campaigns))
		stored := *c
		stored.ID = id
		st.campaigns = append(st.campaigns, stored)
		st.contributions = append(st.contributions, make(map[domain.Account]decimal.Decimal))
		st.escrow = append(st.escrow, decimal.Zero)
		return nil
	})
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// Get returns a copy of the campaign, or nil when it does not exist.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.view(ctx, func(st *state) error {
		c, err := st.campaign(id)
		if err != nil {
			return nil
		}
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

// GetForUpdate returns a copy of the campaign. The store lock held by the
// unit of work already serializes access.
func (s *Store) GetForUpdate(ctx context.Context, id int64) (*domain.Campaign, error) {
	if !s.inTx(ctx) {
		return nil, errors.New("memory: GetForUpdate called outside of a unit of work")
	}
	return s.Get(ctx, id)
}

// Update persists the mutable fields of c.
func (s *Store) Update(ctx context.Context, c *domain.Campaign) error {
	return s.update(ctx, func(st *state) error {
		stored, err := st.campaign(c.ID)
		if err != nil {
			return err
		}
		stored.TotalRaised = c.TotalRaised
		stored.Settled = c.Settled
		stored.UpdatedAt = c.UpdatedAt
		return nil
	})
}

// Count returns the number of campaigns.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.view(ctx, func(st *state) error {
		n = int64(len(st.campaigns))
		return nil
	})
	return n, err
}

// GetContribution returns the amount recorded for who.
func (s *Store) GetContribution(ctx context.Context, id int64, who domain.Account) (decimal.Decimal, error) {
	amount := decimal.Zero
	err := s.view(ctx, func(st *state) error {
		if _, err := st.campaign(id); err != nil {
			return err
		}
		if v, ok := st.contributions[id][who]; ok {
			amount = v
		}
		return nil
	})
	return amount, err
}

// SetContribution overwrites the amount recorded for who. A zero amount
// removes the entry.
func (s *Store) SetContribution(ctx context.Context, id int64, who domain.Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("memory: negative contribution %s for %s", amount, who)
	}
	return s.update(ctx, func(st *state) error {
		if _, err := st.campaign(id); err != nil {
			return err
		}
		if amount.IsZero() {
			delete(st.contributions[id], who)
			return nil
		}
		st.contributions[id][who] = amount
		return nil
	})
}

// SumContributions returns the sum of the contribution ledger of a
// campaign.
func (s *Store) SumContributions(ctx context.Context, id int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := s.view(ctx, func(st *state) error {
		if _, err := st.campaign(id); err != nil {
			return err
		}
		for _, v := range st.contributions[id] {
			sum = sum.Add(v)
		}
		return nil
	})
	return sum, err
}

func (st *state) record(at time.Time, campaignID *int64, kind domain.TransferKind, account domain.Account, amount decimal.Decimal) {
	st.transfers = append(st.transfers, domain.Transfer{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Kind:       kind,
		Account:    account,
		Amount:     amount,
		CreatedAt:  at.UTC(),
	})
}
