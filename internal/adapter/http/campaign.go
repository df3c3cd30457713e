package httpadapter

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// maxDurationSeconds is the longest duration a time.Duration can hold.
const maxDurationSeconds = int64(math.MaxInt64 / int64(time.Second))

type createCampaignRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DurationSeconds int64           `json:"duration_seconds"`
	Goal            decimal.Decimal `json:"goal"`
}

type campaignResponse struct {
	ID          int64           `json:"id"`
	Organizer   domain.Account  `json:"organizer"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Goal        decimal.Decimal `json:"goal"`
	Deadline    time.Time       `json:"deadline"`
	TotalRaised decimal.Decimal `json:"total_raised"`
	Settled     bool            `json:"settled"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type amountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

type transferResponse struct {
	ID        string              `json:"id"`
	Kind      domain.TransferKind `json:"kind"`
	Account   domain.Account      `json:"account"`
	Amount    decimal.Decimal     `json:"amount"`
	CreatedAt time.Time           `json:"created_at"`
}

// handleCreateCampaign opens a campaign owned by the caller. The body
// carries the title, description, duration in seconds and goal. On
// success it returns HTTP 201 with the new campaign id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(w, r)
	if !ok {
		return
	}
	var body createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.DurationSeconds > maxDurationSeconds {
		h.writeError(w, "create campaign", fmt.Errorf("%w: duration too long", domain.ErrInvalidParameters))
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), who, port.CreateCampaignReq{
		Title:       body.Title,
		Description: body.Description,
		Duration:    time.Duration(body.DurationSeconds) * time.Second,
		Goal:        body.Goal,
	})
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) handleCampaignsCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CampaignsCount(r.Context())
	if err != nil {
		h.writeError(w, "campaigns count", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"count": n})
}

// handleGetCampaign returns the campaign snapshot. Unknown ids result in
// HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResponse{
		ID:          c.ID,
		Organizer:   c.Organizer,
		Title:       c.Title,
		Description: c.Description,
		Goal:        c.Goal,
		Deadline:    c.Deadline,
		TotalRaised: c.TotalRaised,
		Settled:     c.Settled,
	})
}

// handleContribute moves the amount in the body from the caller into the
// campaign. It answers HTTP 204 on success.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var body amountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.Contribute(r.Context(), who, id, body.Amount); err != nil {
		h.writeError(w, "contribute", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.Contribution(r.Context(), id, domain.Account(chi.URLParam(r, "account")))
	if err != nil {
		h.writeError(w, "get contribution", err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: amount})
}

// handleTransfers lists the value movements of a campaign, oldest first.
func (h *Handler) handleTransfers(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	transfers, err := h.svc.Transfers(r.Context(), id)
	if err != nil {
		h.writeError(w, "list transfers", err)
		return
	}
	out := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, transferResponse{
			ID:        t.ID.String(),
			Kind:      t.Kind,
			Account:   t.Account,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
