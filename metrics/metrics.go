// Package metrics is an optional Prometheus-backed recorder for the
// reaction kernel's batch runner. It is passed into the runner the same
// way the random provider is passed into the kernel: explicitly, never
// through package-level global state, so a process can run several
// independent batches with independent metric registries.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder observes kernel call outcomes. batch.Runner calls it once per
// BuildChannels invocation; a nil Recorder is valid and simply means
// "don't record".
type Recorder interface {
	ObserveCall(branchCount int, elapsedSeconds float64)
	ObserveError(kind string)
}

// PrometheusRecorder is the reference Recorder implementation,
// registering its collectors into a caller-supplied registry so
// multiple batches never collide on the default global registry.
type PrometheusRecorder struct {
	calls    prometheus.Counter
	branches prometheus.Histogram
	duration prometheus.Histogram
	errors   *prometheus.CounterVec
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder builds and registers a PrometheusRecorder's
// collectors into reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadrx",
			Subsystem: "reaction",
			Name:      "calls_total",
			Help:      "Total BuildChannels invocations.",
		}),
		branches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hadrx",
			Subsystem: "reaction",
			Name:      "branches",
			Help:      "Number of branches returned per BuildChannels call.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hadrx",
			Subsystem: "reaction",
			Name:      "call_duration_seconds",
			Help:      "Wall-clock duration of a single BuildChannels call.",
			Buckets:   prometheus.DefBuckets,
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hadrx",
			Subsystem: "reaction",
			Name:      "errors_total",
			Help:      "Fatal kernel errors by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.calls, r.branches, r.duration, r.errors)
	return r
}

func (r *PrometheusRecorder) ObserveCall(branchCount int, elapsedSeconds float64) {
	r.calls.Inc()
	r.branches.Observe(float64(branchCount))
	r.duration.Observe(elapsedSeconds)
}

func (r *PrometheusRecorder) ObserveError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

// ErrorCounter exposes the per-kind error counter for inspection in
// tests and for callers that want to wire it into their own exposition.
func (r *PrometheusRecorder) ErrorCounter() *prometheus.CounterVec {
	return r.errors
}
