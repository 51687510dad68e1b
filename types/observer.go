package types

import "time"

// Snapshot is a lock-consistent view of a run.
//
// Every field was read under a single acquisition of the RunState lock, so the
// snapshot always sits on a unit boundary: never half a swap, never a
// comparison counted without its effect.
type Snapshot struct {
	// Values is a copy of the sequence. Copying does not count as an access.
	Values []int

	// Accessed lists the indices whose access marker was set, in ascending order.
	// For Snapshot() the markers were cleared as part of the read (edge-triggered);
	// for Peek() they were left in place.
	Accessed []int

	// Comparisons is the comparisons counter.
	Comparisons int

	// Accesses is the instrumented sequence's access counter.
	Accesses int

	// Cursor is the index the worker is currently examining (-1 when idle).
	Cursor int

	// Boundary is the algorithm-specific boundary index (sorted partition edge,
	// merge range start, partition store index).
	Boundary int

	// Pivot is the pivot or current-minimum index (-1 when not applicable).
	Pivot int

	// VerifiedUpTo is the highest index the verifier has confirmed (-1 before verification).
	VerifiedUpTo int

	// Sorted is the completion flag.
	Sorted bool

	// Verified is set when the verifier finished without a violation.
	Verified bool
}

// Observer is the read contract the render and audio layers use to poll a run.
//
// Every method takes the RunState lock for the duration of the read, so callers
// may invoke them from any goroutine while a worker is active.
type Observer interface {
	// Snapshot copies the run state and clears every access marker it reports.
	Snapshot() Snapshot

	// Peek copies the run state without clearing access markers.
	Peek() Snapshot

	// Comparisons returns the comparisons counter.
	Comparisons() int

	// Sorted returns the completion flag.
	Sorted() bool

	// Verified returns the verified flag.
	Verified() bool
}

// Result summarizes a finished worker.
type Result struct {
	// Algorithm is the algorithm that produced the data.
	Algorithm Algorithm

	// Phase is the phase the session reached when the worker returned.
	Phase Phase

	// Comparisons is the comparisons counter when the worker returned.
	Comparisons int

	// Accesses is the access counter when the worker returned.
	Accesses int

	// Elapsed is the wall time of the sort worker. It stops growing at completion.
	Elapsed time.Duration

	// Cancelled is true when the worker returned without setting its completion flag.
	Cancelled bool

	// Err is the worker error, if any (only the verifier reports one).
	Err error
}
