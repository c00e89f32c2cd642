package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusTimerHook is an implementation of TimerHook that records readings into a private
// Prometheus registry.
type PrometheusTimerHook struct {
	registry *prometheus.Registry
	elapsed  *prometheus.HistogramVec
	tares    *prometheus.CounterVec
}

// NewPrometheusTimerHook creates a hook whose collectors are registered under the specified
// namespace.
func NewPrometheusTimerHook(namespace string) *PrometheusTimerHook {
	elapsed := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "elapsed_seconds",
		Help:      "Durations measured by named timers.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
	}, []string{"timer"})

	tares := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tares_total",
		Help:      "Number of times each named timer was reset.",
	}, []string{"timer"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(elapsed, tares)

	return &PrometheusTimerHook{
		registry: registry,
		elapsed:  elapsed,
		tares:    tares,
	}
}

// EmitElapsed observes the duration, in seconds, in the elapsed histogram.
func (h *PrometheusTimerHook) EmitElapsed(name string, elapsed time.Duration) {
	h.elapsed.WithLabelValues(name).Observe(elapsed.Seconds())
}

// EmitTare increments the tare counter.
func (h *PrometheusTimerHook) EmitTare(name string) {
	h.tares.WithLabelValues(name).Inc()
}

// Gatherer exposes the hook's registry.
func (h *PrometheusTimerHook) Gatherer() prometheus.Gatherer {
	return h.registry
}

// WriteTextfile serializes the current state of the registry, in the text exposition format, to
// the specified path. The file is replaced atomically.
func (h *PrometheusTimerHook) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, h.registry); err != nil {
		return fmt.Errorf("prometheus: error writing textfile: path=%s err=%v", path, err)
	}

	return nil
}
