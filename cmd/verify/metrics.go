package main

import "github.com/prometheus/client_golang/prometheus"

// metrics exports verification progress as Prometheus counters.
// Useful when a long sampled run is scraped while it works.
type metrics struct {
	checked    *prometheus.CounterVec
	violations *prometheus.CounterVec
}

// newMetrics constructs and registers the counters.
//   - reg: registry to register with (nil => prometheus.DefaultRegisterer)
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &metrics{
		checked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bitops",
				Subsystem: "verify",
				Name:      "values_checked_total",
				Help:      "Values pushed through the full property set",
			},
			[]string{"width"},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bitops",
				Subsystem: "verify",
				Name:      "violations_total",
				Help:      "Property violations by width and property",
			},
			[]string{"width", "property"},
		),
	}
	reg.MustRegister(m.checked, m.violations)
	return m
}
