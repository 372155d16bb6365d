package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// Options tunes the Engine. Zero values fall back to defaults.
type Options struct {
	// Workers bounds how many campaigns of one batch are processed in
	// parallel. Defaults to 8.
	Workers int
	// MaxRetries is how many times a transaction that hit a transient store
	// conflict is retried before the campaign is reported as failed.
	// Defaults to 3; a negative value disables retries.
	MaxRetries int
	// RetryInitialInterval is the first back-off delay. Defaults to 50ms.
	RetryInitialInterval time.Duration
	Logger               *slog.Logger
}

// Engine implements port.Engine on top of a port.CampaignStore. Every
// mutation runs in a transaction scoped to a single campaign row; audit
// events are emitted only after that transaction commits.
type Engine struct {
	store  port.CampaignStore
	clock  port.Clock
	sink   port.AuditSink
	logger *slog.Logger
	opts   Options
}

var _ port.Engine = (*Engine)(nil)

// NewEngine creates an engine. A nil sink discards audit events.
func NewEngine(store port.CampaignStore, clock port.Clock, sink port.AuditSink, opts Options) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = 8
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	} else if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryInitialInterval <= 0 {
		opts.RetryInitialInterval = 50 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if sink == nil {
		sink = discardSink{}
	}
	return &Engine{
		store:  store,
		clock:  clock,
		sink:   sink,
		logger: opts.Logger.With("component", "engine"),
		opts:   opts,
	}
}

type discardSink struct{}

func (discardSink) Emit(context.Context, domain.AuditEvent) {}

// change accumulates the effects of one campaign transaction.
type change struct {
	tx       port.CampaignTx
	state    *domain.CampaignState
	now      time.Time
	dirty    bool
	events   []domain.AuditEvent
	outcomes []domain.Outcome
}

func (c *change) campaign() *domain.Campaign { return &c.state.Campaign }

func (c *change) emit(action domain.Action, reason domain.Reason, before, after string) {
	c.events = append(c.events, domain.NewAuditEvent(c.state.Campaign.ID, action, reason, before, after, c.now))
}

func (c *change) outcome(action domain.Action, reason domain.Reason) {
	c.outcomes = append(c.outcomes, domain.Outcome{CampaignID: c.state.Campaign.ID, Action: action, Reason: reason})
}

// setActive moves the campaign to active with the given pause reason. A
// flip of the flag appends a status history row, an audit event and an
// outcome; a reason-only change is just persisted.
func (c *change) setActive(ctx context.Context, active bool, pause domain.PauseReason, reason domain.Reason) error {
	camp := c.campaign()
	old := camp.IsActive
	if old == active && camp.PauseReason == pause {
		return nil
	}
	camp.IsActive = active
	camp.PauseReason = pause
	c.dirty = true
	if old == active {
		return nil
	}
	err := c.tx.AppendStatusChange(ctx, &domain.StatusChange{
		CampaignID: camp.ID,
		OldStatus:  old,
		NewStatus:  active,
		Reason:     string(reason),
		Timestamp:  c.now,
	})
	if err != nil {
		return err
	}
	action := domain.ActionPaused
	if active {
		action = domain.ActionActivated
	}
	c.emit(action, reason, strconv.FormatBool(old), strconv.FormatBool(active))
	c.outcome(action, reason)
	return nil
}

// mutate runs fn against the locked campaign, retrying transient conflicts,
// and emits the audit events of the committed attempt.
func (e *Engine) mutate(ctx context.Context, campaignID int64, fn func(ctx context.Context, c *change) error) (*change, error) {
	var committed *change
	err := e.retry(ctx, campaignID, func() error {
		return e.store.WithCampaignLock(ctx, campaignID, func(ctx context.Context, state *domain.CampaignState, tx port.CampaignTx) error {
			c := &change{tx: tx, state: state, now: e.clock.Now().UTC()}
			if err := fn(ctx, c); err != nil {
				return err
			}
			if c.dirty {
				c.state.Campaign.UpdatedAt = c.now
				if err := tx.SaveCampaign(ctx, &c.state.Campaign); err != nil {
					return err
				}
			}
			committed = c
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	for _, ev := range committed.events {
		e.sink.Emit(ctx, ev)
	}
	return committed, nil
}
