package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
)

// counter describes one resettable spend counter and its period marker.
type counter struct {
	name   string
	reason domain.Reason
	spend  func(c *domain.Campaign) *decimal.Decimal
	marker func(c *domain.Campaign) *string
}

var (
	dailyCounter = counter{
		name:   "daily",
		reason: domain.ReasonDailyReset,
		spend:  func(c *domain.Campaign) *decimal.Decimal { return &c.DailySpend },
		marker: func(c *domain.Campaign) *string { return &c.LastDailyReset },
	}
	monthlyCounter = counter{
		name:   "monthly",
		reason: domain.ReasonMonthlyReset,
		spend:  func(c *domain.Campaign) *decimal.Decimal { return &c.MonthlySpend },
		marker: func(c *domain.Campaign) *string { return &c.LastMonthlyReset },
	}
)

// ResetDaily zeroes the daily spend of every campaign not yet reset for
// today ("2006-01-02") and re-evaluates its eligibility.
func (e *Engine) ResetDaily(ctx context.Context, campaignIDs []int64, today string) []domain.Outcome {
	return e.runBatch(ctx, "reset_daily", campaignIDs, func(ctx context.Context, id int64) ([]domain.Outcome, error) {
		return e.reset(ctx, id, dailyCounter, today)
	})
}

// ResetMonthly zeroes the monthly spend of every campaign not yet reset for
// month ("2006-01") and re-evaluates its eligibility.
func (e *Engine) ResetMonthly(ctx context.Context, campaignIDs []int64, month string) []domain.Outcome {
	return e.runBatch(ctx, "reset_monthly", campaignIDs, func(ctx context.Context, id int64) ([]domain.Outcome, error) {
		return e.reset(ctx, id, monthlyCounter, month)
	})
}

func (e *Engine) reset(ctx context.Context, campaignID int64, k counter, period string) ([]domain.Outcome, error) {
	c, err := e.mutate(ctx, campaignID, func(ctx context.Context, c *change) error {
		camp := c.campaign()
		marker := k.marker(camp)
		if !domain.ResetDue(*marker, period) {
			c.outcome(domain.ActionSkipped, domain.ReasonAlreadyReset)
			return nil
		}

		dailyBefore, monthlyBefore := camp.DailySpend, camp.MonthlySpend
		spend := k.spend(camp)
		before := *spend
		*spend = decimal.Zero
		*marker = period
		c.dirty = true

		if before.IsPositive() {
			err := c.tx.AppendSpendRecord(ctx, &domain.SpendRecord{
				CampaignID:         camp.ID,
				Amount:             before,
				Type:               domain.SpendBudgetReset,
				Source:             domain.SourceSystem,
				CreatedBy:          "system",
				ReferenceID:        fmt.Sprintf("%s_reset_%s", k.name, period),
				Description:        fmt.Sprintf("%s budget reset: %s to 0", k.name, before),
				DailySpendBefore:   dailyBefore,
				DailySpendAfter:    camp.DailySpend,
				MonthlySpendBefore: monthlyBefore,
				MonthlySpendAfter:  camp.MonthlySpend,
				Timestamp:          c.now,
			})
			if err != nil {
				return err
			}
		}
		c.emit(domain.ActionReset, k.reason, before.String(), decimal.Zero.String())
		c.outcome(domain.ActionReset, k.reason)
		return c.reevaluate(ctx, k.reason)
	})
	if err != nil {
		return nil, err
	}
	return c.outcomes, nil
}

// reevaluate applies the combined eligibility gates after a reset: budget
// pause dominates, then the dayparting window, and only campaigns paused by
// one of those two gates may be reactivated. Manual pauses stay. When the
// blocking gate changes without a flag flip, the pause reason is relabelled
// so the right enforcer can lift it later.
func (c *change) reevaluate(ctx context.Context, reason domain.Reason) error {
	camp := c.campaign()
	automatic := camp.IsActive ||
		camp.PauseReason == domain.ReasonBudgetExceeded ||
		camp.PauseReason == domain.ReasonOutsideWindow
	if !automatic {
		return nil
	}
	switch {
	case c.state.OverBudget():
		return c.setActive(ctx, false, domain.ReasonBudgetExceeded, domain.ReasonBudget)
	case !domain.IsWithinWindow(c.state.Schedule, c.now):
		return c.setActive(ctx, false, domain.ReasonOutsideWindow, domain.ReasonWindow)
	default:
		return c.setActive(ctx, true, domain.ReasonNone, reason)
	}
}
