package usecase

import (
	"context"

	"ad-budget/internal/core/domain"
)

// EnforceBudgets pauses every active campaign whose daily or monthly spend
// is strictly greater than its brand budget. Campaigns already inactive are
// left alone and nothing is ever reactivated here. Each campaign gets its
// last budget check stamped.
func (e *Engine) EnforceBudgets(ctx context.Context, campaignIDs []int64) []domain.Outcome {
	return e.runBatch(ctx, "enforce_budgets", campaignIDs, e.enforceBudget)
}

func (e *Engine) enforceBudget(ctx context.Context, campaignID int64) ([]domain.Outcome, error) {
	c, err := e.mutate(ctx, campaignID, func(ctx context.Context, c *change) error {
		camp := c.campaign()
		checked := c.now
		camp.LastBudgetCheck = &checked
		c.dirty = true

		if camp.IsActive && c.state.OverBudget() {
			return c.setActive(ctx, false, domain.ReasonBudgetExceeded, domain.ReasonBudget)
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
