package types

import "context"

// SequenceSource produces the initial contents of a run.
//
// Implementations can generate data in various ways:
//   - Shuffled: a seeded permutation of 1..n
//   - Reversed / Sorted: deterministic worst and best cases
//   - Static: a fixed list, mostly for tests
//
// The Session calls Values exactly once, before any worker starts. The returned
// slice is copied into the instrumented sequence with counting disabled.
type SequenceSource interface {
	// Values returns n elements for a new run.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - n: Number of elements requested (always >= 2)
	//
	// Returns:
	//   - []int: Exactly n elements
	//   - error: Generation error (nil on success)
	Values(ctx context.Context, n int) ([]int, error)
}
