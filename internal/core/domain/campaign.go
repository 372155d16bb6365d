package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PauseReason records why a campaign is inactive. Active campaigns carry
// ReasonNone.
type PauseReason string

const (
	ReasonNone           PauseReason = ""
	ReasonBudgetExceeded PauseReason = "budget_exceeded"
	ReasonOutsideWindow  PauseReason = "outside_window"
	ReasonManual         PauseReason = "manual"
)

// Campaign represents an advertising campaign of a brand. Spend counters
// only grow within a period and are zeroed by the reset operations.
type Campaign struct {
	ID           int64
	BrandID      int64
	Name         string
	DailySpend   decimal.Decimal
	MonthlySpend decimal.Decimal
	IsActive     bool
	PauseReason  PauseReason
	ScheduleID   *int64

	// LastDailyReset holds the DayPeriod of the last daily reset and
	// LastMonthlyReset the MonthPeriod of the last monthly reset.
	LastDailyReset   string
	LastMonthlyReset string

	// BudgetCheckFrequency overrides the default budget check interval,
	// in minutes.
	BudgetCheckFrequency *int
	LastBudgetCheck      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CampaignState is a campaign together with the brand budgets and the
// optional dayparting schedule it is evaluated against.
type CampaignState struct {
	Campaign Campaign
	Brand    Brand
	Schedule *DaypartingSchedule
}

// OverBudget reports whether either counter is strictly greater than its
// budget. Spend equal to the budget is still permitted.
func (s *CampaignState) OverBudget() bool {
	return s.OverDaily() || s.OverMonthly()
}

// OverDaily reports whether daily spend exceeds the daily budget.
func (s *CampaignState) OverDaily() bool {
	return s.Campaign.DailySpend.GreaterThan(s.Brand.DailyBudget)
}

// OverMonthly reports whether monthly spend exceeds the monthly budget.
func (s *CampaignState) OverMonthly() bool {
	return s.Campaign.MonthlySpend.GreaterThan(s.Brand.MonthlyBudget)
}

// CheckInterval returns the campaign's budget check interval, falling back
// to def when the campaign has no override.
func (c *Campaign) CheckInterval(def time.Duration) time.Duration {
	if c.BudgetCheckFrequency != nil && *c.BudgetCheckFrequency > 0 {
		return time.Duration(*c.BudgetCheckFrequency) * time.Minute
	}
	return def
}

// BudgetCheckDue reports whether a periodic budget check is due at now.
func (c *Campaign) BudgetCheckDue(now time.Time, def time.Duration) bool {
	if c.LastBudgetCheck == nil {
		return true
	}
	return !now.Before(c.LastBudgetCheck.Add(c.CheckInterval(def)))
}

// StatusChange is the history row appended whenever IsActive flips.
type StatusChange struct {
	ID         int64
	CampaignID int64
	OldStatus  bool
	NewStatus  bool
	Reason     string
	Timestamp  time.Time
}
