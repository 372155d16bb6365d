package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ad-budget/internal/core/domain"
)

// RecordSpend adds amount to the daily and monthly spend of the campaign and
// appends an immutable SpendRecord holding both counters before and after
// the event. Concurrent calls on one campaign serialize on the row lock, so
// their records form a consistent before/after chain in commit order.
// RecordSpend never pauses; enforcement is left to EnforceBudgets.
func (e *Engine) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, meta map[string]string) (*domain.SpendRecord, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrInvalidAmount)
	}

	var rec *domain.SpendRecord
	_, err := e.mutate(ctx, campaignID, func(ctx context.Context, c *change) error {
		camp := c.campaign()
		// keep record timestamps monotonic per campaign even if the clock
		// steps backwards
		if c.now.Before(camp.UpdatedAt) {
			c.now = camp.UpdatedAt
		}

		r := domain.NewSpendRecord(camp.ID, amount, meta)
		r.Timestamp = c.now
		r.DailySpendBefore = camp.DailySpend
		r.MonthlySpendBefore = camp.MonthlySpend
		camp.DailySpend = camp.DailySpend.Add(amount)
		camp.MonthlySpend = camp.MonthlySpend.Add(amount)
		r.DailySpendAfter = camp.DailySpend
		r.MonthlySpendAfter = camp.MonthlySpend
		c.dirty = true

		if err := c.tx.AppendSpendRecord(ctx, r); err != nil {
			return err
		}
		c.emit(domain.ActionSpend, domain.ReasonSpendEvent, r.DailySpendBefore.String(), r.DailySpendAfter.String())
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
