package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// OrchestratorConfig holds the routing policy of the Orchestrator.
type OrchestratorConfig struct {
	// DefaultCheckInterval is the budget check cadence for campaigns
	// without an override.
	DefaultCheckInterval time.Duration
	// CheckOnSpend runs an opportunistic budget check for the campaign
	// right after each spend event, regardless of its cadence override.
	CheckOnSpend bool
}

// Orchestrator implements port.Triggers. It selects the campaigns each
// trigger applies to, hands them to the Engine and reports a summary.
type Orchestrator struct {
	engine   port.Engine
	store    port.CampaignStore
	clock    port.Clock
	observer port.BatchObserver
	logger   *slog.Logger
	cfg      OrchestratorConfig
}

var _ port.Triggers = (*Orchestrator)(nil)

// NewOrchestrator wires the trigger surface. observer may be nil.
func NewOrchestrator(engine port.Engine, store port.CampaignStore, clock port.Clock, observer port.BatchObserver, logger *slog.Logger, cfg OrchestratorConfig) *Orchestrator {
	if cfg.DefaultCheckInterval <= 0 {
		cfg.DefaultCheckInterval = 15 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		engine:   engine,
		store:    store,
		clock:    clock,
		observer: observer,
		logger:   logger.With("component", "orchestrator"),
		cfg:      cfg,
	}
}

// OnSpendEvent records the spend. The follow-up budget check is best
// effort: its failure is logged and never fails the spend event.
func (o *Orchestrator) OnSpendEvent(ctx context.Context, campaignID int64, amount decimal.Decimal, meta map[string]string) (*domain.SpendRecord, error) {
	rec, err := o.engine.RecordSpend(ctx, campaignID, amount, meta)
	if err != nil {
		return nil, err
	}
	if o.cfg.CheckOnSpend {
		for _, out := range o.engine.EnforceBudgets(ctx, []int64{campaignID}) {
			if out.Err != nil {
				o.logger.Warn("budget check after spend failed",
					"campaign_id", campaignID,
					"error", out.Err,
				)
			}
		}
	}
	return rec, nil
}

// OnBudgetTick enforces budgets on active campaigns whose check interval
// has elapsed.
func (o *Orchestrator) OnBudgetTick(ctx context.Context) (domain.BatchSummary, error) {
	start := o.clock.Now()
	campaigns, err := o.store.ListCampaigns(ctx, port.CampaignFilter{ActiveOnly: true})
	if err != nil {
		return domain.BatchSummary{}, fmt.Errorf("list active campaigns: %w", err)
	}
	var due []int64
	for i := range campaigns {
		if campaigns[i].BudgetCheckDue(start, o.cfg.DefaultCheckInterval) {
			due = append(due, campaigns[i].ID)
		}
	}
	return o.finish("enforce_budgets", start, o.engine.EnforceBudgets(ctx, due)), nil
}

// OnDaypartingTick evaluates every campaign that has a schedule.
func (o *Orchestrator) OnDaypartingTick(ctx context.Context) (domain.BatchSummary, error) {
	start := o.clock.Now()
	ids, err := o.ids(ctx, port.CampaignFilter{WithSchedule: true})
	if err != nil {
		return domain.BatchSummary{}, err
	}
	return o.finish("enforce_dayparting", start, o.engine.EnforceDayparting(ctx, ids, start)), nil
}

// OnDailyBoundary resets daily spend for date, or for today when empty.
func (o *Orchestrator) OnDailyBoundary(ctx context.Context, date string) (domain.BatchSummary, error) {
	start := o.clock.Now()
	if date == "" {
		date = domain.DayPeriod(start)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return domain.BatchSummary{}, fmt.Errorf("%w: bad date %q", domain.ErrInvalidInput, date)
	}
	ids, err := o.ids(ctx, port.CampaignFilter{})
	if err != nil {
		return domain.BatchSummary{}, err
	}
	return o.finish("reset_daily", start, o.engine.ResetDaily(ctx, ids, date)), nil
}

// OnMonthlyBoundary resets monthly spend for yearMonth, or for the current
// month when empty.
func (o *Orchestrator) OnMonthlyBoundary(ctx context.Context, yearMonth string) (domain.BatchSummary, error) {
	start := o.clock.Now()
	if yearMonth == "" {
		yearMonth = domain.MonthPeriod(start)
	} else if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return domain.BatchSummary{}, fmt.Errorf("%w: bad month %q", domain.ErrInvalidInput, yearMonth)
	}
	ids, err := o.ids(ctx, port.CampaignFilter{})
	if err != nil {
		return domain.BatchSummary{}, err
	}
	return o.finish("reset_monthly", start, o.engine.ResetMonthly(ctx, ids, yearMonth)), nil
}

// SetActive forwards an administrative override.
func (o *Orchestrator) SetActive(ctx context.Context, campaignID int64, active bool) (domain.Outcome, error) {
	return o.engine.SetActive(ctx, campaignID, active)
}

func (o *Orchestrator) ids(ctx context.Context, filter port.CampaignFilter) ([]int64, error) {
	campaigns, err := o.store.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	ids := make([]int64, len(campaigns))
	for i := range campaigns {
		ids[i] = campaigns[i].ID
	}
	return ids, nil
}

func (o *Orchestrator) finish(task string, start time.Time, outcomes []domain.Outcome) domain.BatchSummary {
	summary := domain.Summarize(task, outcomes, o.clock.Now().Sub(start))
	o.logger.Info("task completed",
		"task", task,
		"processed", summary.Processed,
		"paused", summary.Paused,
		"reactivated", summary.Reactivated,
		"reset", summary.Reset,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"duration", summary.Duration,
	)
	if o.observer != nil {
		o.observer.ObserveBatch(summary)
	}
	return summary
}
