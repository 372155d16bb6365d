package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/adapter/clock"
	"ad-budget/internal/adapter/memory"
	"ad-budget/internal/core/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// recordingSink keeps every emitted audit event.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (s *recordingSink) Emit(_ context.Context, ev domain.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) Events() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEvent(nil), s.events...)
}

type fixture struct {
	store  *memory.CampaignStore
	clock  *clock.Manual
	sink   *recordingSink
	engine *Engine
	brand  *domain.Brand
}

// friday is 2024-03-01 12:00 UTC.
var friday = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, daily, monthly string) *fixture {
	t.Helper()
	f := &fixture{
		store: memory.NewCampaignStore(time.Second),
		clock: clock.NewManual(friday),
		sink:  &recordingSink{},
	}
	f.engine = NewEngine(f.store, f.clock, f.sink, Options{
		Workers:              4,
		RetryInitialInterval: time.Millisecond,
		Logger:               discardLogger,
	})
	f.brand = &domain.Brand{Name: "Acme", DailyBudget: dec(daily), MonthlyBudget: dec(monthly)}
	require.NoError(t, f.store.CreateBrand(f.brand))
	return f
}

// campaign creates an active campaign with the given spend, reset for the
// fixture's current day and month. mods adjust it before it is stored.
func (f *fixture) campaign(t *testing.T, daily, monthly string, mods ...func(*domain.Campaign)) int64 {
	t.Helper()
	now := f.clock.Now()
	c := &domain.Campaign{
		BrandID:          f.brand.ID,
		Name:             t.Name(),
		DailySpend:       dec(daily),
		MonthlySpend:     dec(monthly),
		IsActive:         true,
		LastDailyReset:   domain.DayPeriod(now),
		LastMonthlyReset: domain.MonthPeriod(now),
		CreatedAt:        now,
	}
	for _, mod := range mods {
		mod(c)
	}
	require.NoError(t, f.store.CreateCampaign(c))
	return c.ID
}

// businessHours creates a Mon-Fri 09:00-17:00 schedule.
func (f *fixture) businessHours(t *testing.T) int64 {
	t.Helper()
	days, err := domain.ParseWeekdays("mon,tue,wed,thu,fri")
	require.NoError(t, err)
	s := &domain.DaypartingSchedule{
		StartTime:  domain.TimeOfDay(9 * time.Hour),
		EndTime:    domain.TimeOfDay(17 * time.Hour),
		DaysOfWeek: days,
	}
	require.NoError(t, f.store.CreateSchedule(s))
	return s.ID
}

func (f *fixture) get(t *testing.T, id int64) *domain.Campaign {
	t.Helper()
	c, err := f.store.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	return c
}

func paused(reason domain.PauseReason) func(*domain.Campaign) {
	return func(c *domain.Campaign) {
		c.IsActive = false
		c.PauseReason = reason
	}
}

func onSchedule(id int64) func(*domain.Campaign) {
	return func(c *domain.Campaign) { c.ScheduleID = &id }
}
