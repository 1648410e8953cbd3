package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by route, method, and status.",
	}, []string{"path", "method", "status"})
)

func Init() {
	prometheus.MustRegister(RequestDuration, RequestsTotal)
}

// Middleware observes request latency and outcome per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			method := c.Request().Method
			status := strconvStatus(c.Response().Status)

			RequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
			RequestsTotal.WithLabelValues(path, method, status).Inc()

			return err
		}
	}
}

func strconvStatus(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
