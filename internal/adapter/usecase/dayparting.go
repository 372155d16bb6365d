package usecase

import (
	"context"
	"time"

	"ad-budget/internal/core/domain"
)

// EnforceDayparting evaluates scheduled campaigns against their window at
// now. Active campaigns outside the window are paused. Inside the window a
// campaign is reactivated only when it was paused by dayparting and both
// budgets are within limits; budget and manual pauses are never lifted here.
// Campaigns without a schedule are reported as skipped and left untouched.
func (e *Engine) EnforceDayparting(ctx context.Context, campaignIDs []int64, now time.Time) []domain.Outcome {
	return e.runBatch(ctx, "enforce_dayparting", campaignIDs, func(ctx context.Context, id int64) ([]domain.Outcome, error) {
		return e.enforceWindow(ctx, id, now)
	})
}

func (e *Engine) enforceWindow(ctx context.Context, campaignID int64, now time.Time) ([]domain.Outcome, error) {
	c, err := e.mutate(ctx, campaignID, func(ctx context.Context, c *change) error {
		if c.state.Schedule == nil {
			c.outcome(domain.ActionSkipped, "")
			return nil
		}
		camp := c.campaign()
		if !domain.IsWithinWindow(c.state.Schedule, now) {
			if camp.IsActive {
				return c.setActive(ctx, false, domain.ReasonOutsideWindow, domain.ReasonWindow)
			}
			return nil
		}
		if !camp.IsActive && camp.PauseReason == domain.ReasonOutsideWindow && !c.state.OverBudget() {
			return c.setActive(ctx, true, domain.ReasonNone, domain.ReasonWithinWindow)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(c.outcomes) == 0 {
		return []domain.Outcome{{CampaignID: campaignID, Action: domain.ActionChecked}}, nil
	}
	return c.outcomes, nil
}
