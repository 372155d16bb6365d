package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
	"ad-budget/internal/core/port/mocks"
)

func TestListCampaigns(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	h := NewHandler(mocks.NewMockTriggers(t), store, discardLogger, nil)

	store.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{ActiveOnly: true}).
		Return([]domain.Campaign{{
			ID:          1,
			BrandID:     2,
			Name:        "spring",
			DailySpend:  decimal.RequireFromString("10.5"),
			IsActive:    true,
			PauseReason: domain.ReasonNone,
		}}, nil).Once()

	rec := serve(t, h, http.MethodGet, "/api/v1/campaigns?active=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "spring", resp[0]["name"])
	assert.Equal(t, "10.5", resp[0]["daily_spend"])
	assert.NotContains(t, resp[0], "pause_reason")
}

func TestSpendRecordsAndHistory(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	h := NewHandler(mocks.NewMockTriggers(t), store, discardLogger, nil)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store.EXPECT().SpendRecords(mock.Anything, int64(4)).Return([]domain.SpendRecord{
		{ID: 1, CampaignID: 4, Amount: decimal.NewFromInt(150), Type: domain.SpendBudgetReset, ReferenceID: "daily_reset_2024-03-01", Timestamp: ts},
	}, nil).Once()
	store.EXPECT().StatusHistory(mock.Anything, int64(4)).Return([]domain.StatusChange{
		{ID: 2, CampaignID: 4, OldStatus: false, NewStatus: true, Reason: "DailyReset", Timestamp: ts},
	}, nil).Once()
	store.EXPECT().SpendRecords(mock.Anything, int64(5)).Return(nil, fmt.Errorf("campaign 5: %w", domain.ErrNotFound)).Once()

	rec := serve(t, h, http.MethodGet, "/api/v1/campaigns/4/spend", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []spendResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "budget_reset", records[0].Type)
	assert.Equal(t, "daily_reset_2024-03-01", records[0].ReferenceID)

	rec = serve(t, h, http.MethodGet, "/api/v1/campaigns/4/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []statusChangeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
	assert.Equal(t, []statusChangeResponse{{ID: 2, NewStatus: true, Reason: "DailyReset", Timestamp: ts}}, history)

	rec = serve(t, h, http.MethodGet, "/api/v1/campaigns/5/spend", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBrandAndSchedule(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	h := NewHandler(mocks.NewMockTriggers(t), store, discardLogger, nil)

	store.EXPECT().GetBrand(mock.Anything, int64(1)).Return(&domain.Brand{
		ID: 1, Name: "Acme", DailyBudget: decimal.NewFromInt(100), MonthlyBudget: decimal.NewFromInt(3000),
	}, nil).Once()
	store.EXPECT().GetSchedule(mock.Anything, int64(2)).Return(&domain.DaypartingSchedule{
		ID:         2,
		StartTime:  domain.TimeOfDay(22 * time.Hour),
		EndTime:    domain.TimeOfDay(2 * time.Hour),
		DaysOfWeek: domain.NewWeekdays(time.Friday, time.Saturday),
	}, nil).Once()

	rec := serve(t, h, http.MethodGet, "/api/v1/brands/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var brand brandResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&brand))
	assert.Equal(t, "Acme", brand.Name)
	assert.True(t, brand.MonthlyBudget.Equal(decimal.NewFromInt(3000)))

	rec = serve(t, h, http.MethodGet, "/api/v1/schedules/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sched scheduleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sched))
	assert.Equal(t, scheduleResponse{ID: 2, StartTime: "22:00", EndTime: "02:00", DaysOfWeek: "fri,sat"}, sched)
}

func TestDeleteSchedule(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	h := NewHandler(mocks.NewMockTriggers(t), store, discardLogger, nil)

	store.EXPECT().DeleteSchedule(mock.Anything, int64(2)).Return(nil).Once()
	store.EXPECT().DeleteSchedule(mock.Anything, int64(3)).Return(fmt.Errorf("schedule 3: %w", domain.ErrNotFound)).Once()

	assert.Equal(t, http.StatusNoContent, serve(t, h, http.MethodDelete, "/api/v1/schedules/2", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodDelete, "/api/v1/schedules/3", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodDelete, "/api/v1/schedules/0", "").Code)
}
