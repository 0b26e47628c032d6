package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aocctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aocctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	solveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aocctl",
			Subsystem: "solve",
			Name:      "total",
			Help:      "Puzzle solve attempts by outcome.",
		},
		[]string{"puzzle", "part", "status"},
	)
	solveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aocctl",
			Subsystem: "solve",
			Name:      "duration_seconds",
			Help:      "Puzzle solve duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"puzzle", "part"},
	)
	inputFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aocctl",
			Subsystem: "inputs",
			Name:      "fetch_total",
			Help:      "Puzzle input loads by source and outcome.",
		},
		[]string{"source", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, solveTotal, solveDuration, inputFetches)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordSolve counts one solver run. status is "ok" or "error".
func RecordSolve(puzzle, part, status string, duration time.Duration) {
	RegisterMetrics()
	solveTotal.WithLabelValues(puzzle, part, status).Inc()
	solveDuration.WithLabelValues(puzzle, part).Observe(duration.Seconds())
}

// RecordInputFetch counts one input load; source is "cache" or "remote".
func RecordInputFetch(source string, success bool) {
	RegisterMetrics()
	inputFetches.WithLabelValues(source, strconv.FormatBool(success)).Inc()
}
