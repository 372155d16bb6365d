package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ad-budget/internal/core/domain"
)

// Metrics exports audit events and batch summaries to Prometheus. It
// implements both port.AuditSink and port.BatchObserver.
type Metrics struct {
	transitions   *prometheus.CounterVec
	batches       *prometheus.CounterVec
	batchOutcomes *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		transitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_campaign_transitions_total",
				Help: "Committed campaign state transitions by action and reason",
			},
			[]string{"action", "reason"},
		),

		batches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_batches_total",
				Help: "Periodic batches run",
			},
			[]string{"task"},
		),

		batchOutcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_batch_campaigns_total",
				Help: "Campaign outcomes of periodic batches",
			},
			[]string{"task", "result"},
		),

		batchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adbudget_batch_duration_seconds",
				Help:    "Duration of periodic batches in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to 16s
			},
			[]string{"task"},
		),
	}
}

// Emit implements port.AuditSink.
func (m *Metrics) Emit(_ context.Context, ev domain.AuditEvent) {
	m.transitions.WithLabelValues(string(ev.Action), string(ev.Reason)).Inc()
}

// ObserveBatch implements port.BatchObserver.
func (m *Metrics) ObserveBatch(s domain.BatchSummary) {
	m.batches.WithLabelValues(s.Task).Inc()
	m.batchOutcomes.WithLabelValues(s.Task, "processed").Add(float64(s.Processed))
	m.batchOutcomes.WithLabelValues(s.Task, "paused").Add(float64(s.Paused))
	m.batchOutcomes.WithLabelValues(s.Task, "reactivated").Add(float64(s.Reactivated))
	m.batchOutcomes.WithLabelValues(s.Task, "reset").Add(float64(s.Reset))
	m.batchOutcomes.WithLabelValues(s.Task, "skipped").Add(float64(s.Skipped))
	m.batchOutcomes.WithLabelValues(s.Task, "error").Add(float64(s.Errors))
	m.batchDuration.WithLabelValues(s.Task).Observe(s.Duration.Seconds())
}
