package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"ad-budget/internal/core/domain"
)

// retry runs op until it succeeds, fails with a non-transient error or
// exhausts MaxRetries additional attempts.
func (e *Engine) retry(ctx context.Context, campaignID int64, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.opts.RetryInitialInterval
	b.MaxInterval = 20 * e.opts.RetryInitialInterval

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := op()
		if err == nil {
			return struct{}{}, nil
		}
		if !errors.Is(err, domain.ErrTransientConflict) {
			return struct{}{}, backoff.Permanent(err)
		}
		e.logger.Warn("transient conflict",
			"campaign_id", campaignID,
			"attempt", attempt,
			"error", err,
		)
		return struct{}{}, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(e.opts.MaxRetries+1)),
		backoff.WithMaxElapsedTime(time.Minute),
	)
	return err
}
