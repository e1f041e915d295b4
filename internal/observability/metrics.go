package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type moduleMetrics struct {
	toolCallTotal    *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec
	toolErrorsTotal  *prometheus.CounterVec

	authFailuresTotal prometheus.Counter
	inFlightCalls     prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metricsInst *moduleMetrics
)

func getMetrics() *moduleMetrics {
	metricsOnce.Do(func() {
		m := &moduleMetrics{
			toolCallTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "tool_call_total",
					Help: "Total tool calls by tool and status.",
				},
				[]string{"tool", "status"},
			),
			toolCallDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "tool_call_duration_seconds",
					Help:    "Tool call duration in seconds by tool.",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"tool"},
			),
			toolErrorsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "tool_errors_total",
					Help: "Total failed tool calls by tool and error code.",
				},
				[]string{"tool", "code"},
			),
			authFailuresTotal: prometheus.NewCounter(
				prometheus.CounterOpts{
					Name: "auth_failures_total",
					Help: "Total rejected bearer credentials.",
				},
			),
			inFlightCalls: prometheus.NewGauge(
				prometheus.GaugeOpts{
					Name: "in_flight_calls",
					Help: "Current number of in-flight tool calls.",
				},
			),
		}

		prometheus.MustRegister(
			m.toolCallTotal,
			m.toolCallDuration,
			m.toolErrorsTotal,
			m.authFailuresTotal,
			m.inFlightCalls,
		)

		metricsInst = m
	})

	return metricsInst
}

// EnsureRegistered initializes and registers metrics the first time it is called.
func EnsureRegistered() {
	_ = getMetrics()
}

func MetricsHandler() http.Handler {
	EnsureRegistered()
	return promhttp.Handler()
}

// RecordToolCall records the outcome of one dispatched call. code is empty
// on success; label values never contain call arguments or credentials.
func RecordToolCall(tool string, duration time.Duration, code string) {
	m := getMetrics()
	status := "success"
	if code != "" {
		status = "error"
		m.toolErrorsTotal.WithLabelValues(tool, code).Inc()
	}
	m.toolCallTotal.WithLabelValues(tool, status).Inc()
	m.toolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordAuthFailure counts a rejected credential presentation.
func RecordAuthFailure() {
	getMetrics().authFailuresTotal.Inc()
}

// SetInFlight reports the current number of in-flight calls.
func SetInFlight(count int) {
	getMetrics().inFlightCalls.Set(float64(count))
}
