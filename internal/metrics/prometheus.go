package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// one that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	phaseTransitions  *prometheus.CounterVec
	phaseDuration     *prometheus.HistogramVec
	subscriberDrops   prometheus.Counter
	runsCompleted     *prometheus.CounterVec
	runsCancelled     *prometheus.CounterVec
	runComparisons    *prometheus.HistogramVec
	runAccesses       *prometheus.HistogramVec
	runDuration       *prometheus.HistogramVec
	runSize           prometheus.Gauge
	verifyDuration    prometheus.Histogram
	integrityFailures *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "sortvis" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "sortvis"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.phaseTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "phase_transitions_total",
			Help:      "Total session phase transitions by source and target phase.",
		}, []string{"from", "to"})

		p.phaseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "phase_duration_seconds",
			Help:      "Time spent in a phase before leaving it.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4.4min
		}, []string{"phase"})

		p.subscriberDrops = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "subscriber_drops_total",
			Help:      "Phase notifications dropped because a subscriber channel was full.",
		})

		p.runsCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "completed_total",
			Help:      "Sort runs that set the completion flag, by algorithm.",
		}, []string{"algorithm"})

		p.runsCancelled = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "cancelled_total",
			Help:      "Sort runs stopped by cancellation, by algorithm.",
		}, []string{"algorithm"})

		p.runComparisons = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "comparisons",
			Help:      "Final comparisons counter of completed runs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"})

		p.runAccesses = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "array_accesses",
			Help:      "Final array access counter of completed runs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"})

		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of completed runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"algorithm"})

		p.runSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "size",
			Help:      "Number of elements in the most recent completed run.",
		})

		p.verifyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "verifier",
			Name:      "duration_seconds",
			Help:      "Wall time of verifier passes in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		})

		p.integrityFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "verifier",
			Name:      "integrity_violations_total",
			Help:      "Verifier failures by the algorithm that produced the data.",
		}, []string{"algorithm"})

		p.reg.MustRegister(p.phaseTransitions)
		p.reg.MustRegister(p.phaseDuration)
		p.reg.MustRegister(p.subscriberDrops)
		p.reg.MustRegister(p.runsCompleted)
		p.reg.MustRegister(p.runsCancelled)
		p.reg.MustRegister(p.runComparisons)
		p.reg.MustRegister(p.runAccesses)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.runSize)
		p.reg.MustRegister(p.verifyDuration)
		p.reg.MustRegister(p.integrityFailures)
	})
}

// SessionMetrics implementation

// RecordPhaseTransition counts the transition and observes the time spent in from.
func (p *PrometheusCollector) RecordPhaseTransition(from, to types.Phase, duration float64) {
	p.ensureRegistered()
	p.phaseTransitions.WithLabelValues(from.Label(), to.Label()).Inc()
	p.phaseDuration.WithLabelValues(from.Label()).Observe(duration)
}

// RecordSubscriberDropped increments the dropped notification counter.
func (p *PrometheusCollector) RecordSubscriberDropped() {
	p.ensureRegistered()
	p.subscriberDrops.Inc()
}

// RunMetrics implementation

// RecordRunCompleted records the final counters of a completed run.
func (p *PrometheusCollector) RecordRunCompleted(algorithm types.Algorithm, size, comparisons, accesses int, duration float64) {
	p.ensureRegistered()
	label := algorithm.String()
	p.runsCompleted.WithLabelValues(label).Inc()
	p.runComparisons.WithLabelValues(label).Observe(float64(comparisons))
	p.runAccesses.WithLabelValues(label).Observe(float64(accesses))
	p.runDuration.WithLabelValues(label).Observe(duration)
	p.runSize.Set(float64(size))
}

// RecordRunCancelled increments the cancelled run counter.
func (p *PrometheusCollector) RecordRunCancelled(algorithm types.Algorithm) {
	p.ensureRegistered()
	p.runsCancelled.WithLabelValues(algorithm.String()).Inc()
}

// VerifierMetrics implementation

// RecordVerifyDuration observes a verifier pass duration.
func (p *PrometheusCollector) RecordVerifyDuration(duration float64) {
	p.ensureRegistered()
	p.verifyDuration.Observe(duration)
}

// RecordIntegrityViolation increments the integrity violation counter.
func (p *PrometheusCollector) RecordIntegrityViolation(algorithm types.Algorithm) {
	p.ensureRegistered()
	p.integrityFailures.WithLabelValues(algorithm.String()).Inc()
}
