package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestQuoteMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)

	m.ObserveDuration("banner", 50*time.Millisecond)
	m.IncSuccess("banner")
	m.IncSuccess("Banner")
	m.IncFailure("UNPROCESSABLE")

	if got := testutil.ToFloat64(m.success.WithLabelValues("banner")); got != 2 {
		t.Fatalf("expected 2 successes for banner, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure.WithLabelValues("unprocessable")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestQuoteMetricsNilSafe(t *testing.T) {
	var m *QuoteMetrics
	m.ObserveDuration("banner", time.Second)
	m.IncSuccess("banner")
	m.IncFailure("boom")

	empty := NewQuoteMetrics(nil)
	empty.IncSuccess("banner")
}
