package port

import (
	"context"

	"ad-budget/internal/core/domain"
)

// CampaignTx is the write side of a transaction scoped to one campaign row.
// Writes become visible only when the surrounding WithCampaignLock call
// returns without error.
type CampaignTx interface {
	// SaveCampaign persists the mutable fields of the locked campaign.
	SaveCampaign(ctx context.Context, c *domain.Campaign) error
	// AppendSpendRecord inserts an immutable spend record and sets its ID.
	AppendSpendRecord(ctx context.Context, r *domain.SpendRecord) error
	// AppendStatusChange inserts a status history row and sets its ID.
	AppendStatusChange(ctx context.Context, h *domain.StatusChange) error
}

// CampaignFilter narrows ListCampaigns.
type CampaignFilter struct {
	ActiveOnly   bool
	WithSchedule bool
}

// CampaignStore is the durable store consumed by the engine. It is an
// outbound port. Implementations must serialize WithCampaignLock calls on
// the same campaign while letting different campaigns proceed in parallel.
type CampaignStore interface {
	// WithCampaignLock loads the campaign with its brand and schedule under
	// an exclusive row lock and runs fn. An error from fn rolls back every
	// write made through tx. Unknown campaigns yield domain.ErrNotFound and
	// lock contention yields domain.ErrTransientConflict.
	WithCampaignLock(ctx context.Context, campaignID int64, fn func(ctx context.Context, state *domain.CampaignState, tx CampaignTx) error) error

	// ListCampaigns returns a read-only snapshot of campaigns ordered by ID.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// SpendRecords returns the ledger of a campaign in insertion order.
	SpendRecords(ctx context.Context, campaignID int64) ([]domain.SpendRecord, error)
	// StatusHistory returns the status changes of a campaign in insertion order.
	StatusHistory(ctx context.Context, campaignID int64) ([]domain.StatusChange, error)

	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	GetSchedule(ctx context.Context, id int64) (*domain.DaypartingSchedule, error)
	// DeleteSchedule removes a schedule and detaches every campaign that
	// referenced it; those campaigns become unrestricted.
	DeleteSchedule(ctx context.Context, id int64) error
}
