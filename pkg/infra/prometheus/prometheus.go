package prometheus

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		1, 5, 10, 25,
		50, 100, 250,
		500, 1000, 2500, 5000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kidbot_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"service", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kidbot_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"service", "route"},
	)

	ModerationBlocks = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kidbot_moderation_blocks_total",
			Help: "Moderation blocks by checkpoint and category",
		},
		[]string{"service", "content", "checkpoint", "category"},
	)

	ResponsesBySource = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kidbot_responses_total",
			Help: "Allowed responses by content type and provenance",
		},
		[]string{"service", "content", "source"},
	)

	UpstreamFailures = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "kidbot_upstream_failures_total",
			Help: "Failed calls from the tool bridge to the agent service",
		},
		[]string{"route"},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{EnableLatency: true}
}

var (
	Config   = DefaultMetricsConfig()
	initOnce sync.Once
)

// Initialize installs the registry as the default gatherer. Safe to call from
// several servers in one process.
func Initialize(cfg MetricsConfig) {
	initOnce.Do(func() {
		Config = cfg
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func RecordRequest(service, route string, status int, durationMs float64) {
	RequestTotal.WithLabelValues(service, route, strconv.Itoa(status)).Inc()
	if Config.EnableLatency {
		RequestLatency.WithLabelValues(service, route).Observe(durationMs)
	}
}

func RecordBlock(service, contentType, checkpoint, category string) {
	if category == "" {
		category = "unknown"
	}
	ModerationBlocks.WithLabelValues(service, contentType, checkpoint, category).Inc()
}

func RecordResponse(service, contentType, source string) {
	ResponsesBySource.WithLabelValues(service, contentType, source).Inc()
}

func RecordUpstreamFailure(route string) {
	UpstreamFailures.WithLabelValues(route).Inc()
}
