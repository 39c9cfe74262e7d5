package metrics

import (
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gistindex"

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of gist listings fetched from the upstream API, by result",
		},
		[]string{"result"},
	)

	upstreamDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of the gist listing requests to the upstream API",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registerOnce   sync.Once
	middlewareOnce sync.Once
	middleware     echo.MiddlewareFunc
)

// initMetrics registers the collectors with the default registry, once per process
func initMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(upstreamRequests, upstreamDuration)
	})
}

// ObserveFetch records the outcome of one upstream fetch.
func ObserveFetch(err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	upstreamRequests.WithLabelValues(result).Inc()
	upstreamDuration.Observe(duration.Seconds())
}

// Middleware returns the request metrics middleware of the web server.
func Middleware() echo.MiddlewareFunc {
	initMetrics()
	middlewareOnce.Do(func() {
		middleware = echoprometheus.NewMiddleware(namespace)
	})
	return middleware
}
