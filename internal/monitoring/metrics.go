package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PagesFetched   *prometheus.CounterVec
	DetailsFetched *prometheus.CounterVec
	FetchErrors    *prometheus.CounterVec
	RunsTotal      *prometheus.CounterVec
	RunDuration    prometheus.Histogram
}

// NewMetrics registers the application metrics with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PagesFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_listing_pages_fetched_total",
			Help: "Listing pages fetched successfully, per source.",
		}, []string{"source"}),
		DetailsFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_detail_pages_fetched_total",
			Help: "Detail pages fetched successfully, per source.",
		}, []string{"source"}),
		FetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_fetch_errors_total",
			Help: "Fetch or parse failures that were skipped, per source.",
		}, []string{"source", "reason"}),
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_runs_total",
			Help: "Completed orchestrator runs by outcome.",
		}, []string{"status"}), // "success", "failure"
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "scraper_run_duration_seconds",
			Help:    "Duration of orchestrator runs, successful or not.",
			Buckets: []float64{5, 15, 30, 60, 120, 300, 600},
		}),
	}
}
