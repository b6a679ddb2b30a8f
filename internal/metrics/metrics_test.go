package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hyperjump/ruiji/internal/models"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObservePair(models.StatusScored)
	m.ObservePair(models.StatusScored)
	m.ObservePair(models.StatusTooShort)
	m.ObserveBatch(OutcomeOK, 3, 10*time.Millisecond)
	m.ObserveBatch(OutcomeInvalid, 1, 0)

	if got := testutil.ToFloat64(m.pairs.WithLabelValues("scored")); got != 2 {
		t.Errorf("scored pairs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.pairs.WithLabelValues("too_short")); got != 1 {
		t.Errorf("too_short pairs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.batches.WithLabelValues(OutcomeInvalid)); got != 1 {
		t.Errorf("invalid batches = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.batchDuration); n != 1 {
		t.Errorf("duration collector count = %d", n)
	}
}

func TestMetrics_nilSafe(t *testing.T) {
	var m *Metrics
	m.ObservePair(models.StatusScored)
	m.ObserveBatch(OutcomeOK, 2, time.Second)
}
