package db

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Demo accounts credited by Seed.
const (
	DemoOrganizer    domain.Account = "organizer"
	DemoContributor1 domain.Account = "contributor-1"
	DemoContributor2 domain.Account = "contributor-2"
)

var demoBalance = decimal.NewFromInt(100)

// Seed funds the demo accounts and opens a demo campaign through the use
// case, so that every write goes through the same rules as live traffic.
// It returns the id of the demo campaign. Running it twice opens a second
// campaign.
func Seed(ctx context.Context, svc port.CampaignUseCase) (int64, error) {
	for _, acc := range []domain.Account{DemoOrganizer, DemoContributor1, DemoContributor2} {
		if err := svc.Fund(ctx, acc, demoBalance); err != nil {
			return 0, fmt.Errorf("fund %s: %w", acc, err)
		}
	}

	id, err := svc.CreateCampaign(ctx, DemoOrganizer, port.CreateCampaignReq{
		Title:       "Community garden",
		Description: "Raised beds and a tool shed for the neighbourhood garden.",
		Duration:    24 * time.Hour,
		Goal:        decimal.RequireFromString("1.3"),
	})
	if err != nil {
		return 0, fmt.Errorf("create demo campaign: %w", err)
	}
	return id, nil
}
