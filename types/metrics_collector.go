package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from session goroutines and must be thread-safe.
// None of them is called from inside a unit of work, so a slow collector
// can never stretch the time the RunState lock is held.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	SessionMetrics
	RunMetrics
	VerifierMetrics
}

// SessionMetrics defines metrics for session-level lifecycle events.
type SessionMetrics interface {
	// RecordPhaseTransition records a session phase transition.
	//
	// Parameters:
	//   - from: Phase being left
	//   - to: Phase being entered
	//   - duration: Seconds spent in the phase being left
	RecordPhaseTransition(from, to Phase, duration float64)

	// RecordSubscriberDropped records a phase notification dropped because a subscriber was slow.
	RecordSubscriberDropped()
}

// RunMetrics defines metrics for algorithm worker runs.
type RunMetrics interface {
	// RecordRunCompleted records a worker that set the completion flag.
	//
	// Parameters:
	//   - algorithm: Algorithm that ran
	//   - size: Number of elements sorted
	//   - comparisons: Final comparisons counter
	//   - accesses: Final access counter of the instrumented sequence
	//   - duration: Wall time of the run in seconds
	RecordRunCompleted(algorithm Algorithm, size int, comparisons int, accesses int, duration float64)

	// RecordRunCancelled records a worker that returned because cancellation was requested.
	RecordRunCancelled(algorithm Algorithm)
}

// VerifierMetrics defines metrics for the post-completion integrity scan.
type VerifierMetrics interface {
	// RecordVerifyDuration records the wall time of a verifier pass in seconds.
	RecordVerifyDuration(duration float64)

	// RecordIntegrityViolation records a verifier failure for the algorithm that produced the data.
	RecordIntegrityViolation(algorithm Algorithm)
}
