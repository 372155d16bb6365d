package audit

import (
	"context"
	"log/slog"

	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
)

// LogSink writes every audit event as a structured log line.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "audit")}
}

// Emit implements port.AuditSink.
func (s *LogSink) Emit(ctx context.Context, ev domain.AuditEvent) {
	s.logger.InfoContext(ctx, "campaign event",
		slog.String("event_id", ev.ID.String()),
		slog.Int64("campaign_id", ev.CampaignID),
		slog.String("action", string(ev.Action)),
		slog.String("reason", string(ev.Reason)),
		slog.String("before", ev.Before),
		slog.String("after", ev.After),
		slog.Time("timestamp", ev.Timestamp),
	)
}

// Fanout forwards events to several sinks in order.
type Fanout []port.AuditSink

// Emit implements port.AuditSink.
func (f Fanout) Emit(ctx context.Context, ev domain.AuditEvent) {
	for _, s := range f {
		s.Emit(ctx, ev)
	}
}
