package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported by the service. Collectors are
// registered on the registry passed to NewMetrics so tests can use their own.
type Metrics struct {
	LookupsTotal        *prometheus.CounterVec
	LookupDuration      prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_lookups_total",
				Help: "Total number of profile lookups by outcome",
			},
			[]string{"outcome"},
		),
		LookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "profile_lookup_duration_seconds",
				Help:    "Duration of outbound profile lookups in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(m.LookupsTotal, m.LookupDuration, m.HTTPRequestsTotal, m.HTTPRequestDuration)
	return m
}

// ObserveLookup records the outcome of one outbound lookup.
func (m *Metrics) ObserveLookup(outcome string, elapsed time.Duration) {
	m.LookupsTotal.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.LookupDuration.Observe(elapsed.Seconds())
	}
}
