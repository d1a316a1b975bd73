// Package metrics holds the Prometheus collectors of the search proxy.
package metrics

import (
	"checkups/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

// Search groups the collectors updated once per proxied search.
type Search struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	packages prometheus.Histogram
}

// NewSearch creates the search collectors and registers them on reg.
func NewSearch(reg prometheus.Registerer) (*Search, error) {
	s := &Search{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkups",
			Name:      "search_requests_total",
			Help:      "Proxied searches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "checkups",
			Name:      "search_duration_seconds",
			Help:      "Time spent answering a search, upstream call included.",
			Buckets:   DefaultBuckets,
		}, []string{"outcome"}),
		packages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "checkups",
			Name:      "search_packages",
			Help:      "Number of packages returned by successful searches.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}

	for _, c := range []prometheus.Collector{s.requests, s.duration, s.packages} {
		if err := reg.Register(c); err != nil {
			return nil, err //nolint: wrapcheck
		}
	}

	return s, nil
}

// Observe records one search.
func (s *Search) Observe(outcome domain.Outcome, packages int, took time.Duration) {
	if s == nil {
		return
	}

	label := string(outcome)
	s.requests.WithLabelValues(label).Inc()
	s.duration.WithLabelValues(label).Observe(took.Seconds())
	if outcome != domain.OutcomeError {
		s.packages.Observe(float64(packages))
	}
}
