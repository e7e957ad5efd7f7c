package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ Proxy = &PrometheusProxy{}

// PrometheusProxy exports tree metrics as Prometheus collectors. The first key
// passed to each method is the namespace; the remaining keys name the
// operation.
type PrometheusProxy struct {
	operations *prometheus.CounterVec
	gauges     *prometheus.GaugeVec
	durations  *prometheus.HistogramVec
}

func NewPrometheusProxy(reg prometheus.Registerer, namespace string) *PrometheusProxy {
	factory := promauto.With(reg)
	return &PrometheusProxy{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "tree operations and rotations",
		}, []string{"op"}),
		gauges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state",
			Help:      "tree size and height",
		}, []string{"name"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "time spent in tree operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
	}
}

func (p *PrometheusProxy) IncrCounter(val float32, keys ...string) {
	p.operations.WithLabelValues(opName(keys)).Add(float64(val))
}

func (p *PrometheusProxy) SetGauge(val float32, keys ...string) {
	p.gauges.WithLabelValues(opName(keys)).Set(float64(val))
}

func (p *PrometheusProxy) MeasureSince(start time.Time, keys ...string) {
	p.durations.WithLabelValues(opName(keys)).Observe(time.Since(start).Seconds())
}

func opName(keys []string) string {
	if len(keys) > 1 {
		keys = keys[1:]
	}
	return strings.Join(keys, "_")
}
