// Package metrics provides MetricsCollector implementations and an HTTP exporter.
package metrics

import "github.com/Dyyynamic/sort-visualizer/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SessionMetrics implementation

// RecordPhaseTransition discards the phase transition metric.
func (n *NopMetrics) RecordPhaseTransition(_ /* from */, _ /* to */ types.Phase, _ /* duration */ float64) {
	// No-op
}

// RecordSubscriberDropped discards the dropped notification metric.
func (n *NopMetrics) RecordSubscriberDropped() {
	// No-op
}

// RunMetrics implementation

// RecordRunCompleted discards the run completion metric.
func (n *NopMetrics) RecordRunCompleted(_ /* algorithm */ types.Algorithm, _ /* size */, _ /* comparisons */, _ /* accesses */ int, _ /* duration */ float64) {
	// No-op
}

// RecordRunCancelled discards the run cancellation metric.
func (n *NopMetrics) RecordRunCancelled(_ /* algorithm */ types.Algorithm) {
	// No-op
}

// VerifierMetrics implementation

// RecordVerifyDuration discards the verification duration metric.
func (n *NopMetrics) RecordVerifyDuration(_ /* duration */ float64) {
	// No-op
}

// RecordIntegrityViolation discards the integrity violation metric.
func (n *NopMetrics) RecordIntegrityViolation(_ /* algorithm */ types.Algorithm) {
	// No-op
}
