package port

import (
	"context"

	"ad-budget/internal/core/domain"
)

// AuditSink receives a structured event for every committed state
// transition. Emit must not block for long and must be safe for concurrent
// use.
type AuditSink interface {
	Emit(ctx context.Context, ev domain.AuditEvent)
}

// BatchObserver receives the summary of every periodic batch.
type BatchObserver interface {
	ObserveBatch(summary domain.BatchSummary)
}
