// Package metrics exposes Prometheus collectors for batch analysis.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperjump/ruiji/internal/models"
)

const namespace = "ruiji"

// Batch outcomes recorded by ObserveBatch.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
)

// Metrics holds the analysis collectors. A nil *Metrics records nothing.
type Metrics struct {
	batches       *prometheus.CounterVec
	pairs         *prometheus.CounterVec
	batchDuration prometheus.Histogram
	documents     prometheus.Histogram
}

// New registers the collectors with reg (the default registerer when nil).
// Registration errors panic, as with promauto.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "runs_total",
				Help:      "Batch analyses by outcome.",
			},
			[]string{"outcome"},
		),
		pairs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "pairs_total",
				Help:      "Compared document pairs by scoring status.",
			},
			[]string{"status"},
		),
		batchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "duration_seconds",
				Help:      "Wall time of a batch analysis.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		documents: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "documents",
				Help:      "Documents per batch analysis.",
				Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
			},
		),
	}
	reg.MustRegister(m.batches, m.pairs, m.batchDuration, m.documents)
	return m
}

// ObservePair counts one compared pair.
func (m *Metrics) ObservePair(status models.Status) {
	if m == nil {
		return
	}
	m.pairs.WithLabelValues(string(status)).Inc()
}

// ObserveBatch records a finished batch.
func (m *Metrics) ObserveBatch(outcome string, documents int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.documents.Observe(float64(documents))
		m.batchDuration.Observe(elapsed.Seconds())
	}
}
