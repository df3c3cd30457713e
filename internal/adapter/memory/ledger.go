package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Deposit moves amount from the account into trust for the campaign.
func (s *Store) Deposit(ctx context.Context, campaignID int64, from domain.Account, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		return fmt.Errorf("%w: deposit of %s", domain.ErrTransferFailed, amount)
	}
	return s.update(ctx, func(st *state) error {
		if _, err := st.campaign(campaignID); err != nil {
			return err
		}
		balance := st.accounts[from]
		if balance.LessThan(amount) {
			return fmt.Errorf("%w: insufficient balance on %s", domain.ErrTransferFailed, from)
		}
		st.accounts[from] = balance.Sub(amount)
		st.escrow[campaignID] = st.escrow[campaignID].Add(amount)
		st.record(s.clock.Now(), &campaignID, domain.TransferDeposit, from, amount)
		return nil
	})
}

// Release moves a payout out of trust to its recipient.
func (s *Store) Release(ctx context.Context, p domain.Payout) error {
	if p.IsZero() || !p.Amount().IsPositive() {
		return fmt.Errorf("%w: empty payout", domain.ErrTransferFailed)
	}
	return s.update(ctx, func(st *state) error {
		id := p.CampaignID()
		if _, err := st.campaign(id); err != nil {
			return err
		}
		if st.escrow[id].LessThan(p.Amount()) {
			return fmt.Errorf("%w: trust balance of campaign %d below %s", domain.ErrTransferFailed, id, p.Amount())
		}
		st.escrow[id] = st.escrow[id].Sub(p.Amount())
		st.accounts[p.Recipient()] = st.accounts[p.Recipient()].Add(p.Amount())
		st.record(s.clock.Now(), &id, p.Kind(), p.Recipient(), p.Amount())
		return nil
	})
}

// Fund credits an account.
func (s *Store) Fund(ctx context.Context, account domain.Account, amount decimal.Decimal) error {
	if !account.Valid() {
		return fmt.Errorf("%w: account is required", domain.ErrInvalidParameters)
	}
	if !domain.ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return s.update(ctx, func(st *state) error {
		st.accounts[account] = st.accounts[account].Add(amount)
		st.record(s.clock.Now(), nil, domain.TransferFund, account, amount)
		return nil
	})
}

// Balance returns the free balance of an account.
func (s *Store) Balance(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	balance := decimal.Zero
	err := s.view(ctx, func(st *state) error {
		balance = st.accounts[account]
		return nil
	})
	return balance, err
}

// Escrow returns the trust balance held for a campaign.
func (s *Store) Escrow(ctx context.Context, campaignID int64) (decimal.Decimal, error) {
	balance := decimal.Zero
	err := s.view(ctx, func(st *state) error {
		if _, err := st.campaign(campaignID); err != nil {
			return err
		}
		balance = st.escrow[campaignID]
		return nil
	})
	return balance, err
}

// Transfers returns the transfers of a campaign, oldest first.
func (s *Store) Transfers(ctx context.Context, campaignID int64) ([]domain.Transfer, error) {
	var out []domain.Transfer
	err := s.view(ctx, func(st *state) error {
		if _, err := st.campaign(campaignID); err != nil {
			return err
		}
		for _, t := range st.transfers {
			if t.CampaignID != nil && *t.CampaignID == campaignID {
				out = append(out, t)
			}
		}
		return nil
	})
	return out, err
}

// GetStats aggregates campaign transfers in [req.From, req.To].
func (s *Store) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	resp := &port.StatsResp{
		DepositAmount: decimal.Zero,
		PayoutAmount:  decimal.Zero,
		RefundAmount:  decimal.Zero,
	}
	err := s.view(ctx, func(st *state) error {
		for _, t := range st.transfers {
			if t.CampaignID == nil || t.CreatedAt.Before(req.From) || t.CreatedAt.After(req.To) {
				continue
			}
			if req.CampaignID != nil && *t.CampaignID != *req.CampaignID {
				continue
			}
			switch t.Kind {
			case domain.TransferDeposit:
				resp.Deposits++
				resp.DepositAmount = resp.DepositAmount.Add(t.Amount)
			case domain.TransferPayout:
				resp.Payouts++
				resp.PayoutAmount = resp.PayoutAmount.Add(t.Amount)
			case domain.TransferRefund:
				resp.Refunds++
				resp.RefundAmount = resp.RefundAmount.Add(t.Amount)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
