package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

type campaignResponse struct {
	ID                   int64           `json:"id"`
	BrandID              int64           `json:"brand_id"`
	Name                 string          `json:"name"`
	DailySpend           decimal.Decimal `json:"daily_spend"`
	MonthlySpend         decimal.Decimal `json:"monthly_spend"`
	IsActive             bool            `json:"is_active"`
	PauseReason          string          `json:"pause_reason,omitempty"`
	ScheduleID           *int64          `json:"schedule_id,omitempty"`
	LastDailyReset       string          `json:"last_daily_reset,omitempty"`
	LastMonthlyReset     string          `json:"last_monthly_reset,omitempty"`
	BudgetCheckFrequency *int            `json:"budget_check_frequency,omitempty"`
	LastBudgetCheck      *time.Time      `json:"last_budget_check,omitempty"`
}

type statusChangeResponse struct {
	ID        int64     `json:"id"`
	OldStatus bool      `json:"old_status"`
	NewStatus bool      `json:"new_status"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type brandResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

type scheduleResponse struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DaysOfWeek  string `json:"days_of_week"`
	Description string `json:"description,omitempty"`
}

// handleListCampaigns returns campaigns, optionally filtered with
// `active=true` and `scheduled=true` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{
		ActiveOnly:   q.Get("active") == "true",
		WithSchedule: q.Get("scheduled") == "true",
	}
	campaigns, err := h.store.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	resp := make([]campaignResponse, len(campaigns))
	for i, c := range campaigns {
		resp[i] = campaignResponse{
			ID:                   c.ID,
			BrandID:              c.BrandID,
			Name:                 c.Name,
			DailySpend:           c.DailySpend,
			MonthlySpend:         c.MonthlySpend,
			IsActive:             c.IsActive,
			PauseReason:          string(c.PauseReason),
			ScheduleID:           c.ScheduleID,
			LastDailyReset:       c.LastDailyReset,
			LastMonthlyReset:     c.LastMonthlyReset,
			BudgetCheckFrequency: c.BudgetCheckFrequency,
			LastBudgetCheck:      c.LastBudgetCheck,
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleSpendRecords returns the spend ledger of a campaign in commit order.
func (h *Handler) handleSpendRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	records, err := h.store.SpendRecords(r.Context(), id)
	if err != nil {
		h.writeError(w, "spend records", err)
		return
	}
	resp := make([]spendResponse, len(records))
	for i := range records {
		resp[i] = newSpendResponse(&records[i])
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleStatusHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	history, err := h.store.StatusHistory(r.Context(), id)
	if err != nil {
		h.writeError(w, "status history", err)
		return
	}
	resp := make([]statusChangeResponse, len(history))
	for i, sc := range history {
		resp[i] = statusChangeResponse{
			ID:        sc.ID,
			OldStatus: sc.OldStatus,
			NewStatus: sc.NewStatus,
			Reason:    sc.Reason,
			Timestamp: sc.Timestamp,
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}
	b, err := h.store.GetBrand(r.Context(), id)
	if err != nil {
		h.writeError(w, "get brand", err)
		return
	}
	h.writeJSON(w, http.StatusOK, brandResponse{
		ID:            b.ID,
		Name:          b.Name,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
	})
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid schedule id", http.StatusBadRequest)
		return
	}
	s, err := h.store.GetSchedule(r.Context(), id)
	if err != nil {
		h.writeError(w, "get schedule", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newScheduleResponse(s))
}

// handleDeleteSchedule removes a schedule. Campaigns referencing it are
// detached and run unrestricted from then on.
func (h *Handler) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid schedule id", http.StatusBadRequest)
		return
	}
	if err := h.store.DeleteSchedule(r.Context(), id); err != nil {
		h.writeError(w, "delete schedule", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newScheduleResponse(s *domain.DaypartingSchedule) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		DaysOfWeek:  s.DaysOfWeek.String(),
		Description: s.Description,
	}
}
