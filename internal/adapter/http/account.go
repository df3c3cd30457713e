package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.Balance(r.Context(), domain.Account(chi.URLParam(r, "account")))
	if err != nil {
		h.writeError(w, "balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: balance})
}

// handleFund credits the account in the path with the amount in the body
// and returns the new balance.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
	account := domain.Account(chi.URLParam(r, "account"))
	var body amountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.Fund(r.Context(), account, body.Amount); err != nil {
		h.writeError(w, "fund", err)
		return
	}
	h.handleBalance(w, r)
}

type advanceRequest struct {
	Seconds int64 `json:"seconds"`
}

// handleClockAdvance fast-forwards the ledger clock and returns the new
// time. Only registered when the handler has an Advancer.
func (h *Handler) handleClockAdvance(w http.ResponseWriter, r *http.Request) {
	var body advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.Seconds <= 0 {
		http.Error(w, "seconds must be positive", http.StatusBadRequest)
		return
	}
	now := h.clock.Advance(time.Duration(body.Seconds) * time.Second)
	h.logger.Info("clock advanced", slog.Int64("seconds", body.Seconds), slog.Time("now", now))
	h.writeJSON(w, http.StatusOK, map[string]time.Time{"now": now})
}
