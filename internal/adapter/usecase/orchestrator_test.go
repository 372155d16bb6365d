package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/core/domain"
)

type recordingObserver struct {
	mu        sync.Mutex
	summaries []domain.BatchSummary
}

func (o *recordingObserver) ObserveBatch(s domain.BatchSummary) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.summaries = append(o.summaries, s)
}

func newOrchestrator(f *fixture, checkOnSpend bool) (*Orchestrator, *recordingObserver) {
	obs := &recordingObserver{}
	return NewOrchestrator(f.engine, f.store, f.clock, obs, discardLogger, OrchestratorConfig{
		DefaultCheckInterval: 15 * time.Minute,
		CheckOnSpend:         checkOnSpend,
	}), obs
}

func checkedAgo(d time.Duration) func(*domain.Campaign) {
	return func(c *domain.Campaign) {
		ts := friday.Add(-d)
		c.LastBudgetCheck = &ts
	}
}

func everyMinutes(n int) func(*domain.Campaign) {
	return func(c *domain.Campaign) { c.BudgetCheckFrequency = &n }
}

func TestOnBudgetTickHonoursCadence(t *testing.T) {
	f := newFixture(t, "100", "3000")
	recent := f.campaign(t, "150", "150", checkedAgo(5*time.Minute))
	never := f.campaign(t, "150", "150")
	fast := f.campaign(t, "150", "150", checkedAgo(5*time.Minute), everyMinutes(1))
	slow := f.campaign(t, "150", "150", checkedAgo(20*time.Minute), everyMinutes(60))
	inactive := f.campaign(t, "150", "150", paused(domain.ReasonManual))

	o, obs := newOrchestrator(f, true)
	summary, err := o.OnBudgetTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "enforce_budgets", summary.Task)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Paused)

	assert.True(t, f.get(t, recent).IsActive)
	assert.False(t, f.get(t, never).IsActive)
	assert.False(t, f.get(t, fast).IsActive)
	assert.True(t, f.get(t, slow).IsActive)
	assert.Nil(t, f.get(t, inactive).LastBudgetCheck)

	require.Len(t, obs.summaries, 1)
	assert.Equal(t, summary, obs.summaries[0])
}

func TestOnSpendEventChecksImmediately(t *testing.T) {
	f := newFixture(t, "100", "3000")
	// a long cadence override does not delay the check after a spend
	id := f.campaign(t, "90", "90", checkedAgo(time.Minute), everyMinutes(1440))

	o, _ := newOrchestrator(f, true)
	rec, err := o.OnSpendEvent(context.Background(), id, dec("15"), nil)
	require.NoError(t, err)
	assert.True(t, rec.DailySpendAfter.Equal(dec("105")))

	c := f.get(t, id)
	assert.False(t, c.IsActive)
	assert.Equal(t, domain.ReasonBudgetExceeded, c.PauseReason)
	require.NotNil(t, c.LastBudgetCheck)
	assert.Equal(t, friday, *c.LastBudgetCheck)
}

func TestOnSpendEventWithoutCheck(t *testing.T) {
	f := newFixture(t, "100", "3000")
	id := f.campaign(t, "90", "90")

	o, _ := newOrchestrator(f, false)
	_, err := o.OnSpendEvent(context.Background(), id, dec("15"), nil)
	require.NoError(t, err)

	c := f.get(t, id)
	assert.True(t, c.DailySpend.Equal(dec("105")))
	assert.True(t, c.IsActive)
}

func TestOnSpendEventRecordsWhilePaused(t *testing.T) {
	f := newFixture(t, "100", "3000")
	id := f.campaign(t, "150", "150", paused(domain.ReasonBudgetExceeded))

	o, _ := newOrchestrator(f, true)
	_, err := o.OnSpendEvent(context.Background(), id, dec("1"), nil)
	require.NoError(t, err)
	assert.True(t, f.get(t, id).DailySpend.Equal(dec("151")))
}

func TestOnDaypartingTick(t *testing.T) {
	f := newFixture(t, "100", "3000")
	sched := f.businessHours(t)
	scheduled := f.campaign(t, "0", "0", onSchedule(sched))
	unscheduled := f.campaign(t, "0", "0")
	f.clock.Set(saturday10)

	o, _ := newOrchestrator(f, true)
	summary, err := o.OnDaypartingTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Paused)
	assert.False(t, f.get(t, scheduled).IsActive)
	assert.True(t, f.get(t, unscheduled).IsActive)
}

func TestOnDailyBoundary(t *testing.T) {
	f := newFixture(t, "100", "3000")
	a := f.campaign(t, "150", "150", yesterday, paused(domain.ReasonBudgetExceeded))
	b := f.campaign(t, "10", "10")

	o, _ := newOrchestrator(f, true)
	summary, err := o.OnDailyBoundary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.BatchSummary{
		Task:        "reset_daily",
		Processed:   2,
		Reactivated: 1,
		Reset:       1,
		Skipped:     1,
	}, summary)
	assert.True(t, f.get(t, a).IsActive)
	assert.True(t, f.get(t, b).DailySpend.Equal(dec("10")))

	_, err = o.OnDailyBoundary(context.Background(), "01/03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOnMonthlyBoundary(t *testing.T) {
	f := newFixture(t, "100", "3000")
	id := f.campaign(t, "10", "500", func(c *domain.Campaign) { c.LastMonthlyReset = "2024-02" })

	o, _ := newOrchestrator(f, true)
	summary, err := o.OnMonthlyBoundary(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reset)
	assert.True(t, f.get(t, id).MonthlySpend.IsZero())

	_, err = o.OnMonthlyBoundary(context.Background(), "2024-13")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
