// Package middleware provides Echo middleware for souqly.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/souqly/souqly/internal/metrics"
)

// probeGauges routes liveness and readiness probe results into 0/1 gauges.
// Probe traffic and scrapes stay out of the request histogram and counter;
// at a short scrape interval they would dominate the series otherwise.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// unmeteredPaths are served without recording request metrics.
var unmeteredPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// Metrics returns Echo middleware recording per-request duration and count,
// labeled by method, route pattern, and status. Probe endpoints update
// their gauges instead of feeding the request series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the registered route pattern so /products/:id stays
			// one series; unmatched requests fall back to the raw path.
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}

			if _, skip := unmeteredPaths[route]; skip {
				err := next(c)
				recordProbe(route, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.
				WithLabelValues(c.Request().Method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(c.Request().Method, route, status).
				Inc()

			return err
		}
	}
}

func recordProbe(route string, status int) {
	gauge, ok := probeGauges[route]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
		return
	}
	gauge.Set(0)
}
