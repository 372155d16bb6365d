package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port/mocks"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestBudgetTrigger(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().OnBudgetTick(mock.Anything).Return(domain.BatchSummary{
		Task:      "enforce_budgets",
		Processed: 3,
		Paused:    1,
		Duration:  1500 * time.Microsecond,
	}, nil).Once()

	rec := serve(t, h, http.MethodPost, "/api/v1/triggers/budget", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, summaryResponse{Task: "enforce_budgets", Processed: 3, Paused: 1, DurationMS: 1.5}, resp)
}

func TestDailyResetPassesDate(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().OnDailyBoundary(mock.Anything, "2024-03-01").Return(domain.BatchSummary{Task: "reset_daily"}, nil).Once()
	triggers.EXPECT().OnDailyBoundary(mock.Anything, "garbage").
		Return(domain.BatchSummary{}, fmt.Errorf("%w: bad date", domain.ErrInvalidInput)).Once()

	rec := serve(t, h, http.MethodPost, "/api/v1/triggers/daily-reset?date=2024-03-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/v1/triggers/daily-reset?date=garbage", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthlyResetDefaultsToCurrentMonth(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().OnMonthlyBoundary(mock.Anything, "").Return(domain.BatchSummary{Task: "reset_monthly"}, nil).Once()

	rec := serve(t, h, http.MethodPost, "/api/v1/triggers/monthly-reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerRequiresPost(t *testing.T) {
	h := NewHandler(mocks.NewMockTriggers(t), mocks.NewMockCampaignStore(t), discardLogger, nil)
	rec := serve(t, h, http.MethodGet, "/api/v1/triggers/dayparting", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSpend(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().
		OnSpendEvent(mock.Anything, int64(5), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("12.5"))
		}), map[string]string{"type": "click"}).
		Return(&domain.SpendRecord{
			ID:              9,
			CampaignID:      5,
			Amount:          decimal.RequireFromString("12.5"),
			Type:            domain.SpendClick,
			Source:          domain.SourceSystem,
			DailySpendAfter: decimal.RequireFromString("112.5"),
		}, nil).Once()

	rec := serve(t, h, http.MethodPost, "/api/v1/campaigns/5/spend", `{"amount":"12.50","meta":{"type":"click"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, float64(9), resp["id"])
	assert.Equal(t, "click", resp["type"])
	assert.Equal(t, "112.5", resp["daily_spend_after"])
}

func TestSpendErrors(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().OnSpendEvent(mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidAmount).Once()
	triggers.EXPECT().OnSpendEvent(mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("campaign 2: %w", domain.ErrNotFound)).Once()
	triggers.EXPECT().OnSpendEvent(mock.Anything, int64(3), mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: lock wait", domain.ErrTransientConflict)).Once()
	triggers.EXPECT().OnSpendEvent(mock.Anything, int64(4), mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded).Once()

	body := `{"amount":"1"}`
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodPost, "/api/v1/campaigns/1/spend", body).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodPost, "/api/v1/campaigns/2/spend", body).Code)
	rec := serve(t, h, http.MethodPost, "/api/v1/campaigns/3/spend", body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusInternalServerError, serve(t, h, http.MethodPost, "/api/v1/campaigns/4/spend", body).Code)

	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodPost, "/api/v1/campaigns/x/spend", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodPost, "/api/v1/campaigns/1/spend", "{").Code)
}

func TestSetActive(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	h := NewHandler(triggers, mocks.NewMockCampaignStore(t), discardLogger, nil)

	triggers.EXPECT().SetActive(mock.Anything, int64(3), false).
		Return(domain.Outcome{CampaignID: 3, Action: domain.ActionPaused, Reason: domain.ReasonAdmin}, nil).Once()

	rec := serve(t, h, http.MethodPost, "/api/v1/campaigns/3/deactivate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp outcomeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, outcomeResponse{CampaignID: 3, Action: "paused", Reason: "Manual"}, resp)
}

func TestMetricsMounted(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	h := NewHandler(mocks.NewMockTriggers(t), mocks.NewMockCampaignStore(t), discardLogger, metrics)

	rec := serve(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
