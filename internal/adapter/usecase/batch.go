package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"ad-budget/internal/core/domain"
)

// runBatch processes every campaign independently with bounded parallelism.
// A failing campaign is logged and reported as an ActionFailed outcome; it
// never stops its siblings. Outcomes keep the order of ids.
func (e *Engine) runBatch(ctx context.Context, task string, ids []int64, fn func(ctx context.Context, id int64) ([]domain.Outcome, error)) []domain.Outcome {
	results := make([][]domain.Outcome, len(ids))

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i, id := range ids {
		g.Go(func() error {
			out, err := fn(ctx, id)
			if err != nil {
				e.logger.Error("campaign processing failed",
					"task", task,
					"campaign_id", id,
					"transient", errors.Is(err, domain.ErrTransientConflict),
					"error", err,
				)
				out = []domain.Outcome{{CampaignID: id, Action: domain.ActionFailed, Err: err}}
			}
			results[i] = out
			return nil
		})
	}
	_ = g.Wait()

	var outcomes []domain.Outcome
	for _, out := range results {
		outcomes = append(outcomes, out...)
	}
	return outcomes
}
