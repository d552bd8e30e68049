package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry  *prometheus.Registry
	designs   *prometheus.CounterVec
	fallbacks prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		designs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outrunner",
			Name:      "designs_total",
			Help:      "Motor design requests by result.",
		}, []string{"result"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outrunner",
			Name:      "design_fallbacks_total",
			Help:      "Designs that used the fallback slot/pole configuration.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "outrunner",
			Name:      "design_duration_seconds",
			Help:      "Time spent serving a design request.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.designs,
		m.fallbacks,
		m.duration,
		collectors.NewGoCollector(),
	)
	return m
}
