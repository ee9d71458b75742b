package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of outbound calls that needed more than one attempt",
		},
		[]string{"service", "method", "code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of outbound calls including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)
)

// Observe пишет длительность вызова и, если были повторы, счетчик ретраев.
func Observe(service, method, code string, start time.Time, attempts uint64) {
	GatewayRequestDuration.WithLabelValues(service, method, code).Observe(time.Since(start).Seconds())
	if attempts > 1 {
		GatewayRetriesTotal.WithLabelValues(service, method, code).Inc()
	}
}
