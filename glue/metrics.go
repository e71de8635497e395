package glue

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// instrumentTransport wraps base with request counting and duration
// observation, partitioned by method and status code.
func instrumentTransport(reg prometheus.Registerer, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glue_client_requests_total",
			Help: "Number of API requests issued by the client.",
		},
		[]string{"code", "method"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glue_client_request_duration_seconds",
			Help:    "Latency of API requests issued by the client.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)

	reg.MustRegister(requests, duration)

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, base),
	)
}
