package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ad-budget/internal/config/configs"
	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// Scheduler fires the engine triggers on cron schedules evaluated in UTC.
// A job still running when its next tick arrives makes that tick skip; the
// triggers are idempotent so the following tick catches up.
//
// Common expressions:
//   - "0 2 * * *"   - daily at 02:00
//   - "30 1 1 * *"  - monthly on the 1st at 01:30
//   - "@every 1m"   - every minute
type Scheduler struct {
	triggers port.Triggers
	clock    port.Clock
	cfg      configs.Schedule
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// New creates a scheduler for triggers.
func New(triggers port.Triggers, clock port.Clock, cfg configs.Schedule, logger *slog.Logger) *Scheduler {
	logger = logger.With("component", "scheduler")
	cl := cronLogger{logger: logger}
	return &Scheduler{
		triggers: triggers,
		clock:    clock,
		cfg:      cfg,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

type job struct {
	name string
	spec string
	run  func(ctx context.Context) (domain.BatchSummary, error)
}

func (s *Scheduler) jobs() []job {
	return []job{
		{name: "budget_tick", spec: s.cfg.BudgetTick, run: s.triggers.OnBudgetTick},
		{name: "dayparting_tick", spec: s.cfg.DaypartingTick, run: s.triggers.OnDaypartingTick},
		{name: "daily_reset", spec: s.cfg.DailyReset, run: func(ctx context.Context) (domain.BatchSummary, error) {
			return s.triggers.OnDailyBoundary(ctx, domain.DayPeriod(s.clock.Now()))
		}},
		{name: "monthly_reset", spec: s.cfg.MonthlyReset, run: func(ctx context.Context) (domain.BatchSummary, error) {
			return s.triggers.OnMonthlyBoundary(ctx, domain.MonthPeriod(s.clock.Now()))
		}},
	}
}

// Start validates every expression, registers the jobs and starts the cron
// loop. Jobs with an empty or "off" expression are disabled. The scheduler stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	for _, j := range s.jobs() {
		if j.spec == "" || j.spec == "off" {
			s.logger.Info("job disabled", "job", j.name)
			continue
		}
		if _, err := cron.ParseStandard(j.spec); err != nil {
			return fmt.Errorf("invalid cron schedule %q for %s: %w", j.spec, j.name, err)
		}
		if _, err := s.cron.AddFunc(j.spec, func() { s.runJob(ctx, j) }); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", j.name, err)
		}
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started",
		"budget_tick", s.cfg.BudgetTick,
		"dayparting_tick", s.cfg.DaypartingTick,
		"daily_reset", s.cfg.DailyReset,
		"monthly_reset", s.cfg.MonthlyReset,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *Scheduler) runJob(ctx context.Context, j job) {
	if _, err := j.run(ctx); err != nil {
		s.logger.Error("scheduled job failed", "job", j.name, "error", err)
	}
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
