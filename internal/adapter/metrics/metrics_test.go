package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"ad-budget/internal/core/domain"
)

func TestEmitCountsTransitions(t *testing.T) {
	m := New(prometheus.NewRegistry())
	ctx := context.Background()

	m.Emit(ctx, domain.NewAuditEvent(1, domain.ActionPaused, domain.ReasonBudget, "true", "false", time.Now()))
	m.Emit(ctx, domain.NewAuditEvent(2, domain.ActionPaused, domain.ReasonBudget, "true", "false", time.Now()))
	m.Emit(ctx, domain.NewAuditEvent(2, domain.ActionActivated, domain.ReasonDailyReset, "false", "true", time.Now()))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("paused", "BudgetExceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("activated", "DailyReset")))
}

func TestObserveBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBatch(domain.BatchSummary{Task: "reset_daily", Processed: 3, Reset: 2, Reactivated: 1, Skipped: 1, Duration: 10 * time.Millisecond})
	m.ObserveBatch(domain.BatchSummary{Task: "reset_daily", Processed: 1, Errors: 1})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.batches.WithLabelValues("reset_daily")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.batchOutcomes.WithLabelValues("reset_daily", "processed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.batchOutcomes.WithLabelValues("reset_daily", "reset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batchOutcomes.WithLabelValues("reset_daily", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.batchDuration))
}

func TestNewRegistersOnPrivateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) }, "duplicate registration")
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
