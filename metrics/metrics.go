// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a submitted receipt
const (
	ResultAccepted  = "accepted"
	ResultMalformed = "malformed"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

var (
	// Registry holds the service's collectors
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "receipts",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "receipts",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "route"},
	)

	receiptsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "receipts",
			Name:      "processed_total",
			Help:      "Submitted receipts by outcome.",
		},
		[]string{"result"},
	)

	pointsAwarded = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "receipts",
			Name:      "points_awarded",
			Help:      "Points awarded per accepted receipt.",
			Buckets:   []float64{0, 10, 25, 50, 75, 100, 150, 250, 500},
		},
	)

	lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "receipts",
			Name:      "lookups_total",
			Help:      "Points lookups by outcome.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		receiptsProcessed,
		pointsAwarded,
		lookups,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument records request count and duration under a fixed route label,
// so path parameters such as receipt ids never become label values.
func Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next(rec, r)

		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordProcessed counts a submitted receipt. points is only observed
// for accepted receipts.
func RecordProcessed(result string, points int) {
	receiptsProcessed.WithLabelValues(result).Inc()
	if result == ResultAccepted {
		pointsAwarded.Observe(float64(points))
	}
}

// RecordLookup counts a points lookup
func RecordLookup(found bool) {
	result := "not_found"
	if found {
		result = "found"
	}
	lookups.WithLabelValues(result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
