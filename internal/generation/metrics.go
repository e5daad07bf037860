package generation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks generation outcomes across a run.
type Metrics struct {
	// Attempts counts every generation attempt, including retries.
	Attempts prometheus.Counter

	// Failures counts attempts that errored or yielded no usable text.
	Failures prometheus.Counter

	// Fallbacks counts arguments that fell back to the hash-derived
	// sentence after exhausting the retry budget.
	Fallbacks prometheus.Counter
}

// NewMetrics creates generation metrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Attempts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "debated",
			Subsystem: "generation",
			Name:      "attempts_total",
			Help:      "Total generation attempts, including retries.",
		}),
		Failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "debated",
			Subsystem: "generation",
			Name:      "failures_total",
			Help:      "Generation attempts that failed or returned empty text.",
		}),
		Fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "debated",
			Subsystem: "generation",
			Name:      "fallbacks_total",
			Help:      "Arguments replaced by the deterministic fallback sentence.",
		}),
	}
}
