package httpadapter

import (
	"crowdfund/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
)

// AccountHeader carries the identity of the caller. Every mutating route
// reads it explicitly; there is no session or ambient caller.
const AccountHeader = "X-Account"

// Advancer is a clock that can be fast-forwarded.
type Advancer interface {
	Advance(d time.Duration) time.Time
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	clock  Advancer
	router chi.Router
}

// Option configures optional routes of a Handler.
type Option func(h *Handler)

// WithClockAdvancer exposes POST /api/v1/clock/advance backed by c. It is
// meant for development ledgers only.
func WithClockAdvancer(c Advancer) Option {
	return func(h *Handler) {
		h.clock = c
	}
}

// NewHandler creates a handler with all routes configured. It accepts a
// use case implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/count", h.handleCampaignsCount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/contributions", h.handleContribute)
				r.Get("/contributions/{account}", h.handleGetContribution)
				r.Post("/withdraw", h.handleWithdrawFunds)
				r.Post("/refund", h.handleWithdrawContribution)
				r.Get("/transfers", h.handleTransfers)
			})
		})
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/accounts/{account}/balance", h.handleBalance)
		r.Post("/accounts/{account}/fund", h.handleFund)
		if h.clock != nil {
			r.Post("/clock/advance", h.handleClockAdvance)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
