package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
)

type spendRequest struct {
	Amount decimal.Decimal   `json:"amount"`
	Meta   map[string]string `json:"meta"`
}

type spendResponse struct {
	ID                 int64             `json:"id"`
	CampaignID         int64             `json:"campaign_id"`
	Amount             decimal.Decimal   `json:"amount"`
	Type               string            `json:"type"`
	Source             string            `json:"source"`
	CreatedBy          string            `json:"created_by,omitempty"`
	ReferenceID        string            `json:"reference_id,omitempty"`
	Description        string            `json:"description,omitempty"`
	DailySpendBefore   decimal.Decimal   `json:"daily_spend_before"`
	DailySpendAfter    decimal.Decimal   `json:"daily_spend_after"`
	MonthlySpendBefore decimal.Decimal   `json:"monthly_spend_before"`
	MonthlySpendAfter  decimal.Decimal   `json:"monthly_spend_after"`
	Meta               map[string]string `json:"meta,omitempty"`
	Timestamp          time.Time         `json:"timestamp"`
}

func newSpendResponse(rec *domain.SpendRecord) spendResponse {
	return spendResponse{
		ID:                 rec.ID,
		CampaignID:         rec.CampaignID,
		Amount:             rec.Amount,
		Type:               string(rec.Type),
		Source:             string(rec.Source),
		CreatedBy:          rec.CreatedBy,
		ReferenceID:        rec.ReferenceID,
		Description:        rec.Description,
		DailySpendBefore:   rec.DailySpendBefore,
		DailySpendAfter:    rec.DailySpendAfter,
		MonthlySpendBefore: rec.MonthlySpendBefore,
		MonthlySpendAfter:  rec.MonthlySpendAfter,
		Meta:               rec.Meta,
		Timestamp:          rec.Timestamp,
	}
}

type outcomeResponse struct {
	CampaignID int64  `json:"campaign_id"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// handleSpend ingests one spend event. The body is {"amount": "12.50",
// "meta": {...}}; amount may be a JSON string or number. On success it
// returns HTTP 201 with the recorded entry.
func (h *Handler) handleSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req spendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rec, err := h.triggers.OnSpendEvent(r.Context(), id, req.Amount, req.Meta)
	if err != nil {
		h.writeError(w, "spend", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newSpendResponse(rec))
}

func (h *Handler) handleSetActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, "invalid campaign id", http.StatusBadRequest)
			return
		}
		out, err := h.triggers.SetActive(r.Context(), id, active)
		if err != nil {
			h.writeError(w, "set active", err)
			return
		}
		h.writeJSON(w, http.StatusOK, outcomeResponse{
			CampaignID: out.CampaignID,
			Action:     string(out.Action),
			Reason:     string(out.Reason),
		})
	}
}
