package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
)

// Engine is the spend accounting and enforcement core. Every batch
// operation processes each campaign in its own transaction and reports one
// or more outcomes per campaign; a failing campaign never aborts the batch.
type Engine interface {
	// RecordSpend adds amount to both spend counters of the campaign and
	// appends a SpendRecord, atomically. It never pauses the campaign.
	RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, meta map[string]string) (*domain.SpendRecord, error)

	// EnforceBudgets pauses active campaigns whose daily or monthly spend is
	// strictly greater than the brand budget. It never reactivates.
	EnforceBudgets(ctx context.Context, campaignIDs []int64) []domain.Outcome

	// EnforceDayparting pauses scheduled campaigns outside their window and
	// reactivates those paused by dayparting once inside it and under budget.
	EnforceDayparting(ctx context.Context, campaignIDs []int64, now time.Time) []domain.Outcome

	// ResetDaily zeroes daily spend once per day period.
	ResetDaily(ctx context.Context, campaignIDs []int64, today string) []domain.Outcome
	// ResetMonthly zeroes monthly spend once per month period.
	ResetMonthly(ctx context.Context, campaignIDs []int64, month string) []domain.Outcome

	// SetActive is the explicit administrative override of the active flag.
	SetActive(ctx context.Context, campaignID int64, active bool) (domain.Outcome, error)
}

// Triggers is the surface invoked by the external scheduler and by manual
// fallbacks. Every call is safe to retry or replay.
type Triggers interface {
	OnSpendEvent(ctx context.Context, campaignID int64, amount decimal.Decimal, meta map[string]string) (*domain.SpendRecord, error)
	OnBudgetTick(ctx context.Context) (domain.BatchSummary, error)
	OnDaypartingTick(ctx context.Context) (domain.BatchSummary, error)
	// OnDailyBoundary resets daily counters for date ("2006-01-02"); an empty
	// date means the current UTC day.
	OnDailyBoundary(ctx context.Context, date string) (domain.BatchSummary, error)
	// OnMonthlyBoundary resets monthly counters for yearMonth ("2006-01"); an
	// empty value means the current UTC month.
	OnMonthlyBoundary(ctx context.Context, yearMonth string) (domain.BatchSummary, error)
	SetActive(ctx context.Context, campaignID int64, active bool) (domain.Outcome, error)
}
