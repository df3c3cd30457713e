package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusOf maps lifecycle errors to HTTP statuses. Zero means the error is
// not a domain error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidParameters), errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCampaignClosed),
		errors.Is(err, domain.ErrTooEarly),
		errors.Is(err, domain.ErrGoalNotReached),
		errors.Is(err, domain.ErrGoalWasReached),
		errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrNothingToWithdraw):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusUnprocessableEntity
	default:
		return 0
	}
}

// writeError reports a failed operation. Domain errors are returned with
// their code so the caller can surface the reason; anything else is logged
// and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusOf(err)
	if status == 0 {
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, status, errorResponse{Error: domain.Code(err), Message: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// caller extracts the caller identity. It writes a 400 and returns false
// when the header is missing.
func caller(w http.ResponseWriter, r *http.Request) (domain.Account, bool) {
	a := domain.Account(r.Header.Get(AccountHeader))
	if !a.Valid() {
		http.Error(w, "missing "+AccountHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return a, true
}

// campaignID parses the {id} path parameter. It writes a 400 and returns
// false when it is not an integer.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
