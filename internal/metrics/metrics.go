package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Document loads by kind (manifest, tenant) and outcome.
	DocumentLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investordash_document_loads_total",
			Help: "Total number of manifest and tenant document loads",
		},
		[]string{"document", "outcome"}, // outcome: ok, not_found, error
	)

	DocumentLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "investordash_document_load_duration_seconds",
			Help:    "Document load duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"document"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "investordash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)

	PortfolioProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "investordash_portfolio_progress_percent",
			Help: "Last computed portfolio progress per tenant",
		},
		[]string{"tenant", "policy"},
	)

	ProbeUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "investordash_source_up",
			Help: "1 if the last manifest probe succeeded",
		},
	)
)

func RecordDocumentLoad(document, outcome string, duration time.Duration) {
	DocumentLoads.WithLabelValues(document, outcome).Inc()
	DocumentLoadDuration.WithLabelValues(document).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func RecordPortfolioProgress(tenant, policy string, progress int) {
	PortfolioProgress.WithLabelValues(tenant, policy).Set(float64(progress))
}

func RecordProbe(ok bool) {
	if ok {
		ProbeUp.Set(1)
		return
	}
	ProbeUp.Set(0)
}
