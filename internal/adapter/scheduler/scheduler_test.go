package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-budget/internal/adapter/clock"
	"ad-budget/internal/config/configs"
	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port/mocks"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStartRejectsInvalidSpec(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	s := New(triggers, clock.System{}, configs.Schedule{BudgetTick: "every minute"}, discardLogger)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget_tick")
	assert.False(t, s.IsRunning())
}

func TestStartStop(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	s := New(triggers, clock.System{}, configs.Schedule{DailyReset: "0 2 * * *"}, discardLogger)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(ctx), "second start is a no-op")

	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestJobsUseClockPeriods(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	clk := clock.NewManual(time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC))
	s := New(triggers, clk, configs.Schedule{}, discardLogger)

	triggers.EXPECT().OnDailyBoundary(mock.Anything, "2024-03-01").Return(domain.BatchSummary{}, nil).Once()
	triggers.EXPECT().OnMonthlyBoundary(mock.Anything, "2024-03").Return(domain.BatchSummary{}, nil).Once()
	triggers.EXPECT().OnBudgetTick(mock.Anything).Return(domain.BatchSummary{}, nil).Once()
	triggers.EXPECT().OnDaypartingTick(mock.Anything).Return(domain.BatchSummary{}, assert.AnError).Once()

	jobs := s.jobs()
	require.Len(t, jobs, 4)
	for _, j := range jobs {
		s.runJob(context.Background(), j)
	}
}

func TestDisabledJobsAreSkipped(t *testing.T) {
	triggers := mocks.NewMockTriggers(t)
	s := New(triggers, clock.System{}, configs.Schedule{BudgetTick: "off", DaypartingTick: "off"}, discardLogger)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
	assert.Empty(t, s.cron.Entries())
}
