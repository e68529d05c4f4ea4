// Package metrics exposes the adapter's prometheus instrumentation. All
// helpers are nil-safe so the adapter can run uninstrumented.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the adapter's counters.
type Metrics struct {
	eventsForwarded *prometheus.CounterVec
	eventsDropped   *prometheus.CounterVec
	promptResults   *prometheus.CounterVec
}

// New creates the counters and registers them with the given registerer.
// A nil registerer falls back to the default one.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		eventsForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geobridge",
			Name:      "boundary_events_forwarded_total",
			Help:      "Boundary events submitted to the engagement pipeline.",
		}, []string{"direction"}),
		eventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geobridge",
			Name:      "boundary_events_dropped_total",
			Help:      "Boundary events dropped before submission.",
		}, []string{"reason"}),
		promptResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geobridge",
			Name:      "permission_prompt_results_total",
			Help:      "Permission prompt outcomes.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.eventsForwarded, m.eventsDropped, m.promptResults)
	return m
}

// EventForwarded counts a submitted boundary event.
func (m *Metrics) EventForwarded(direction string) {
	if m == nil {
		return
	}
	m.eventsForwarded.WithLabelValues(direction).Inc()
}

// EventDropped counts a dropped boundary event with the drop reason,
// "stopped" or "throttled".
func (m *Metrics) EventDropped(reason string) {
	if m == nil {
		return
	}
	m.eventsDropped.WithLabelValues(reason).Inc()
}

// PromptResult counts a permission prompt outcome, "granted" or "denied".
func (m *Metrics) PromptResult(result string) {
	if m == nil {
		return
	}
	m.promptResults.WithLabelValues(result).Inc()
}
