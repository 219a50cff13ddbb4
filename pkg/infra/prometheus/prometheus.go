package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		25, 50, 100, 250, 500, 1000, 2500, 5000, 10000,
	}

	FieldSavesTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "formguard_field_saves_total",
			Help: "Total number of field configurations saved",
		},
		[]string{"field_type"},
	)

	VerificationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "formguard_verifications_total",
			Help: "Total number of token verifications by result",
		},
		[]string{"result"}, // passed, rejected or error
	)

	VerificationScore = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "formguard_verification_score",
			Help:    "Scores returned by the verification provider",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	SiteVerifyLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "formguard_siteverify_latency_ms",
			Help:    "Verification provider round trip in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "formguard_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"server", "method", "route", "status"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "formguard_http_request_latency_ms",
			Help:    "HTTP request handling time in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"server", "route"},
	)

	SubmissionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "formguard_submissions_total",
			Help: "Total number of recorded form submissions",
		},
		[]string{"status"},
	)
)

const (
	ResultPassed   = "passed"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	Enabled     bool
	runtimeOnce sync.Once
)

// Initialize toggles collection. Runtime collectors are registered once.
func Initialize(enabled bool) {
	Enabled = enabled
	if !enabled {
		return
	}
	runtimeOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

// Gatherer exposes the private registry to the /metrics handler.
func Gatherer() prometheus.Gatherer {
	return registry
}
