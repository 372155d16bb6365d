package usecase

import (
	"context"

	"ad-budget/internal/core/domain"
)

// SetActive applies an explicit administrative override. Activation clears
// any pause reason, including a budget pause; the next budget pass pauses
// the campaign again if it is still over budget. Deactivation marks the
// campaign as manually paused, which no enforcer or reset lifts.
func (e *Engine) SetActive(ctx context.Context, campaignID int64, active bool) (domain.Outcome, error) {
	c, err := e.mutate(ctx, campaignID, func(ctx context.Context, c *change) error {
		if active {
			return c.setActive(ctx, true, domain.ReasonNone, domain.ReasonAdmin)
		}
		return c.setActive(ctx, false, domain.ReasonManual, domain.ReasonAdmin)
	})
	if err != nil {
		return domain.Outcome{CampaignID: campaignID, Action: domain.ActionFailed, Err: err}, err
	}
	if len(c.outcomes) == 0 {
		return domain.Outcome{CampaignID: campaignID, Action: domain.ActionChecked, Reason: domain.ReasonAdmin}, nil
	}
	return c.outcomes[0], nil
}
