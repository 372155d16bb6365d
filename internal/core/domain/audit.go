package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action is the kind of state transition reported by the engine.
type Action string

const (
	ActionPaused    Action = "paused"
	ActionActivated Action = "activated"
	ActionReset     Action = "reset"
	ActionSpend     Action = "spend_recorded"
	ActionChecked   Action = "checked"
	ActionSkipped   Action = "skipped"
	ActionFailed    Action = "failed"
)

// Reason qualifies an Action.
type Reason string

const (
	ReasonBudget       Reason = "BudgetExceeded"
	ReasonWindow       Reason = "OutsideWindow"
	ReasonWithinWindow Reason = "WithinWindow"
	ReasonDailyReset   Reason = "DailyReset"
	ReasonMonthlyReset Reason = "MonthlyReset"
	ReasonAdmin        Reason = "Manual"
	ReasonSpendEvent   Reason = "SpendEvent"
	ReasonAlreadyReset Reason = "AlreadyReset"
)

// AuditEvent is the structured fact emitted for every state transition.
// The engine does not format or ship it; sinks do.
type AuditEvent struct {
	ID         uuid.UUID
	CampaignID int64
	Action     Action
	Reason     Reason
	Before     string
	After      string
	Timestamp  time.Time
}

// NewAuditEvent stamps a new event with a random ID.
func NewAuditEvent(campaignID int64, action Action, reason Reason, before, after string, ts time.Time) AuditEvent {
	return AuditEvent{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Action:     action,
		Reason:     reason,
		Before:     before,
		After:      after,
		Timestamp:  ts.UTC(),
	}
}

// Outcome is the per-campaign result of a batch operation. Err is set for
// campaigns whose processing failed; the rest of the batch is unaffected.
type Outcome struct {
	CampaignID int64
	Action     Action
	Reason     Reason
	Err        error
}

// BatchSummary aggregates a batch run for logging and metrics.
type BatchSummary struct {
	Task        string
	Processed   int
	Paused      int
	Reactivated int
	Reset       int
	Skipped     int
	Errors      int
	Duration    time.Duration
}

// Summarize folds outcomes into a BatchSummary. A campaign may contribute
// several outcomes (a reset followed by an activation) but is processed once.
func Summarize(task string, outcomes []Outcome, took time.Duration) BatchSummary {
	s := BatchSummary{Task: task, Duration: took}
	seen := make(map[int64]struct{}, len(outcomes))
	for _, o := range outcomes {
		if _, ok := seen[o.CampaignID]; !ok {
			seen[o.CampaignID] = struct{}{}
			s.Processed++
		}
		switch o.Action {
		case ActionPaused:
			s.Paused++
		case ActionActivated:
			s.Reactivated++
		case ActionReset:
			s.Reset++
		case ActionSkipped:
			s.Skipped++
		case ActionFailed:
			s.Errors++
		}
	}
	return s
}
