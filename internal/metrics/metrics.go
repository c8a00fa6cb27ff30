package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	pollTicks     prometheus.Counter
	pollErrors    prometheus.Counter
	pendingNotes  prometheus.Gauge
	notifications prometheus.Counter

	lifecycleOutcomes *prometheus.CounterVec
	providerDuration  *prometheus.HistogramVec
)

func Init(serviceName string) {
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	pollTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "poll_ticks_total",
		Help:      "Reconciliation poll ticks executed",
	})

	pollErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "poll_tick_errors_total",
		Help:      "Poll ticks abandoned due to fetch failure",
	})

	pendingNotes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: serviceName,
		Name:      "pending_notes",
		Help:      "Notes currently awaiting ledger confirmation",
	})

	notifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "confirmation_notifications_total",
		Help:      "Confirmation notifications emitted",
	})

	lifecycleOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "lifecycle_outcomes_total",
			Help:      "Transaction lifecycle executions by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	providerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "chain_provider_duration_seconds",
			Help:      "Chain-data provider call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTP(path, method, status string, start time.Time) {
	if httpRequests != nil {
		httpRequests.WithLabelValues(path, method, status).Inc()
	}
	if httpDuration != nil {
		httpDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}

func IncPollTick() {
	if pollTicks != nil {
		pollTicks.Inc()
	}
}

func IncPollError() {
	if pollErrors != nil {
		pollErrors.Inc()
	}
}

func SetPendingNotes(count int) {
	if pendingNotes != nil {
		pendingNotes.Set(float64(count))
	}
}

func IncNotification() {
	if notifications != nil {
		notifications.Inc()
	}
}

func ObserveLifecycle(operation, outcome string) {
	if lifecycleOutcomes != nil {
		lifecycleOutcomes.WithLabelValues(operation, outcome).Inc()
	}
}

func ObserveProvider(endpoint string, start time.Time) {
	if providerDuration != nil {
		providerDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}
