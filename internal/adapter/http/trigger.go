package httpadapter

import (
	"context"
	"net/http"

	"ad-budget/internal/core/domain"
)

type summaryResponse struct {
	Task        string  `json:"task"`
	Processed   int     `json:"processed"`
	Paused      int     `json:"paused"`
	Reactivated int     `json:"reactivated"`
	Reset       int     `json:"reset"`
	Skipped     int     `json:"skipped"`
	Errors      int     `json:"errors"`
	DurationMS  float64 `json:"duration_ms"`
}

func newSummaryResponse(s domain.BatchSummary) summaryResponse {
	return summaryResponse{
		Task:        s.Task,
		Processed:   s.Processed,
		Paused:      s.Paused,
		Reactivated: s.Reactivated,
		Reset:       s.Reset,
		Skipped:     s.Skipped,
		Errors:      s.Errors,
		DurationMS:  float64(s.Duration.Microseconds()) / 1000,
	}
}

func (h *Handler) runTrigger(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context) (domain.BatchSummary, error)) {
	summary, err := fn(r.Context())
	if err != nil {
		h.writeError(w, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSummaryResponse(summary))
}

// handleBudgetTick runs one budget enforcement pass over due campaigns.
func (h *Handler) handleBudgetTick(w http.ResponseWriter, r *http.Request) {
	h.runTrigger(w, r, "budget tick", h.triggers.OnBudgetTick)
}

// handleDaypartingTick runs one dayparting pass over scheduled campaigns.
func (h *Handler) handleDaypartingTick(w http.ResponseWriter, r *http.Request) {
	h.runTrigger(w, r, "dayparting tick", h.triggers.OnDaypartingTick)
}

// handleDailyReset accepts an optional `date` query parameter (YYYY-MM-DD).
// Without it the current UTC day is reset. Malformed dates produce HTTP 400.
func (h *Handler) handleDailyReset(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	h.runTrigger(w, r, "daily reset", func(ctx context.Context) (domain.BatchSummary, error) {
		return h.triggers.OnDailyBoundary(ctx, date)
	})
}

// handleMonthlyReset accepts an optional `month` query parameter (YYYY-MM).
func (h *Handler) handleMonthlyReset(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	h.runTrigger(w, r, "monthly reset", func(ctx context.Context) (domain.BatchSummary, error) {
		return h.triggers.OnMonthlyBoundary(ctx, month)
	})
}
