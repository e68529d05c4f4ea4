package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.EventForwarded("enter")
	m.EventForwarded("enter")
	m.EventForwarded("exit")
	m.EventDropped("stopped")
	m.PromptResult("granted")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.eventsForwarded.WithLabelValues("enter")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsForwarded.WithLabelValues("exit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsDropped.WithLabelValues("stopped")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.promptResults.WithLabelValues("granted")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.EventForwarded("enter")
	m.EventDropped("throttled")
	m.PromptResult("denied")
}
