// Package metrics provides Prometheus instrumentation for the terminal.
//
// Unlike a server, the interesting traffic here is *outgoing*: every call to
// the POS service is timed and counted, alongside cache effectiveness and
// search debouncing. In session mode the registry is exposed on a local
// /metrics endpoint (see internal/server).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequestDuration tracks how long each POS service call takes,
	// broken down by method, operation, and status code.
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "barman",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of outgoing POS service calls in seconds.",
			Buckets:   prometheus.DefBuckets, // .005 .01 .025 .05 .1 .25 .5 1 2.5 5 10
		},
		[]string{"method", "operation", "status"},
	)

	// APIRequestTotal counts all outgoing POS service calls.
	APIRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barman",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of outgoing POS service calls.",
		},
		[]string{"method", "operation", "status"},
	)

	// APIErrors counts failed calls by error kind (network, not_found,
	// conflict, validation, remote).
	APIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barman",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Total outgoing call failures by error kind.",
		},
		[]string{"operation", "kind"},
	)

	// SearchKeystrokes counts search inputs received from the operator.
	SearchKeystrokes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "barman",
		Subsystem: "search",
		Name:      "keystrokes_total",
		Help:      "Total search inputs observed before debouncing.",
	})

	// SearchLookups counts lookups that actually reached the service after
	// the debounce quiet period.
	SearchLookups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "barman",
		Subsystem: "search",
		Name:      "lookups_total",
		Help:      "Total debounced menu lookups sent to the service.",
	})

	// BillsSettled counts settlement flows, split by whether the receipt
	// printed cleanly.
	BillsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barman",
			Subsystem: "billing",
			Name:      "bills_settled_total",
			Help:      "Total bills settled.",
		},
		[]string{"printed"}, // "yes" | "no"
	)

	// CacheHits / CacheMisses track cache effectiveness.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barman",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits.",
		},
		[]string{"driver"}, // "redis" | "memory"
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barman",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses.",
		},
		[]string{"driver"},
	)
)

// DefaultRegistry is the Prometheus registry used by the terminal.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		APIRequestDuration,
		APIRequestTotal,
		APIErrors,
		SearchKeystrokes,
		SearchLookups,
		BillsSettled,
		CacheHits,
		CacheMisses,
	)
}

// Register lets you add your own prometheus.Collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister panics if registration fails.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ObserveAPICall records one outgoing call's duration and outcome.
func ObserveAPICall(method, operation string, status int, start time.Time) {
	code := strconv.Itoa(status)
	APIRequestDuration.WithLabelValues(method, operation, code).Observe(time.Since(start).Seconds())
	APIRequestTotal.WithLabelValues(method, operation, code).Inc()
}

// Handler returns an http.HandlerFunc that exposes the Prometheus metrics
// page. Mounted on GET /metrics by internal/server.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true, // text/plain AND OpenMetrics formats
	})
	return h.ServeHTTP
}
