package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelfeed", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travelfeed", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	FeedRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelfeed", Name: "feed_requests_total", Help: "Outbound feed requests."},
		[]string{"endpoint", "status"},
	)
	FeedLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travelfeed", Name: "feed_request_duration_seconds",
			Help:    "Outbound feed request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, FeedRequests, FeedLatency)

	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveFeed records an outbound feed fetch. status is the HTTP status
// code, or 0 when the request never got a response.
func ObserveFeed(endpoint string, status int, dur time.Duration) {
	FeedRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	FeedLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}
