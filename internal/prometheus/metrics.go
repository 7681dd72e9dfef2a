package prometheus

import "github.com/prometheus/client_golang/prometheus"

const (
	requestDurationBucketStart  = 0.05
	requestDurationBucketFactor = 2.0
	requestDurationBucketCount  = 12
)

var RemoteRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "remote_request_duration_seconds",
		Help: "Time taken for a remote store request",
		Buckets: prometheus.ExponentialBuckets(
			requestDurationBucketStart,
			requestDurationBucketFactor,
			requestDurationBucketCount,
		),
	},
	[]string{"method"},
)

var FallbackActivations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fallback_activations_total",
		Help: "Number of times a service served from the sample store after a remote failure",
	},
	[]string{"service"},
)

var OptimisticRollbacks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "optimistic_rollbacks_total",
		Help: "Number of optimistic updates rolled back after a failed remote mutation",
	},
	[]string{"operation"},
)

var RefreshTicks = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "refresh_ticks_total",
		Help: "Number of auto-refresh cycles executed",
	},
)

// NewRequestTimer starts a timer observing RemoteRequestDuration for method.
func NewRequestTimer(method string) *prometheus.Timer {
	return prometheus.NewTimer(RemoteRequestDuration.WithLabelValues(method))
}

func init() {
	prometheus.MustRegister(RemoteRequestDuration)
	prometheus.MustRegister(FallbackActivations)
	prometheus.MustRegister(OptimisticRollbacks)
	prometheus.MustRegister(RefreshTicks)
}
