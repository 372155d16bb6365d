package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the engine triggers for manual invocation and spend ingestion,
// plus read-only views of the store. Routes are registered on a chi.Router.
type Handler struct {
	triggers port.Triggers
	store    port.CampaignStore
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when not
// nil, is mounted at /metrics.
func NewHandler(triggers port.Triggers, store port.CampaignStore, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{triggers: triggers, store: store, logger: logger.With("component", "http")}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/triggers", func(r chi.Router) {
			r.Post("/budget", h.handleBudgetTick)
			r.Post("/dayparting", h.handleDaypartingTick)
			r.Post("/daily-reset", h.handleDailyReset)
			r.Post("/monthly-reset", h.handleMonthlyReset)
		})
		r.Get("/campaigns", h.handleListCampaigns)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/spend", h.handleSpend)
			r.Get("/spend", h.handleSpendRecords)
			r.Get("/history", h.handleStatusHistory)
			r.Post("/activate", h.handleSetActive(true))
			r.Post("/deactivate", h.handleSetActive(false))
		})
		r.Get("/brands/{id}", h.handleGetBrand)
		r.Get("/schedules/{id}", h.handleGetSchedule)
		r.Delete("/schedules/{id}", h.handleDeleteSchedule)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps domain errors onto status codes. Unclassified errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrTransientConflict):
		w.Header().Set("Retry-After", "1")
		http.Error(w, "campaign busy, retry later", http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
