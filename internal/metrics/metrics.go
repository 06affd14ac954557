package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "account_manager",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by operation and outcome.",
	}, []string{"operation", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "account_manager",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "account_manager",
		Name:      "operator_actions_total",
		Help:      "Write actions processed by the operator, by action and outcome.",
	}, []string{"action", "outcome"})
)

func ObserveRequest(operation, outcome string, duration time.Duration) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func ObserveAction(action string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	actionsTotal.WithLabelValues(action, outcome).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
