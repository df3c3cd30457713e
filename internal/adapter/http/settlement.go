package httpadapter

import (
	"net/http"
)

// handleWithdrawFunds releases the funds of a successful campaign to its
// organizer, who must be the caller. Rejections (too early, goal not
// reached, already settled) are reported with HTTP 409 and the error code.
func (h *Handler) handleWithdrawFunds(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.WithdrawFunds(r.Context(), who, id)
	if err != nil {
		h.writeError(w, "withdraw funds", err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: amount})
}

// handleWithdrawContribution refunds the caller's contribution to a failed
// campaign.
func (h *Handler) handleWithdrawContribution(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.WithdrawContribution(r.Context(), who, id)
	if err != nil {
		h.writeError(w, "withdraw contribution", err)
		return
	}
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: amount})
}
