// Package sequence provides a fixed-length container that records element accesses.
//
// A Sequence keeps three pieces of instrumentation next to its elements:
//   - an access counter that only ever grows
//   - one "accessed since last clear" marker per index
//   - a counting-enabled flag gating both of the above
//
// While counting is disabled, reads and writes are invisible to the
// instrumentation. Population (Append) and permutation (Shuffle) rely on this.
//
// # Thread Safety
//
// A Sequence is NOT safe for concurrent use. The owning RunState serializes every
// call behind its lock; the sequence itself adds no synchronization.
package sequence

import (
	"cmp"
	"fmt"
	"math/rand/v2"
)

// Sequence is an instrumented, ordered container of comparable elements.
type Sequence[T cmp.Ordered] struct {
	values   []T
	accessed []bool
	count    int
	counting bool
}

// New creates an empty sequence with room for capacity elements.
//
// Parameters:
//   - capacity: Expected number of elements (a hint, not a limit)
//
// Returns:
//   - *Sequence[T]: Empty sequence with counting disabled
func New[T cmp.Ordered](capacity int) *Sequence[T] {
	return &Sequence[T]{
		values:   make([]T, 0, capacity),
		accessed: make([]bool, 0, capacity),
	}
}

// FromValues creates a sequence populated with a copy of values, uncounted.
func FromValues[T cmp.Ordered](values []T) *Sequence[T] {
	s := New[T](len(values))
	for _, v := range values {
		s.Append(v)
	}

	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.values)
}

// Get reads element i.
//
// Panics if i is out of range.
func (s *Sequence[T]) Get(i int) T {
	s.touch(i)

	return s.values[i]
}

// Set writes element i.
//
// Panics if i is out of range.
func (s *Sequence[T]) Set(i int, v T) {
	s.touch(i)
	s.values[i] = v
}

// Swap exchanges elements i and j.
//
// When counting is enabled the swap touches each index once, so it adds two
// accesses (one when i == j) and marks both indices.
func (s *Sequence[T]) Swap(i, j int) {
	s.touch(i)
	if j != i {
		s.touch(j)
	}
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Append adds v at the end.
//
// Appending never changes the counter or markers, whatever the counting flag says.
func (s *Sequence[T]) Append(v T) {
	s.values = append(s.values, v)
	s.accessed = append(s.accessed, false)
}

// Shuffle permutes the elements with a Fisher-Yates pass driven by rng.
//
// The permutation is always uncounted: counting is suspended for the duration
// and the previous flag is restored on return.
func (s *Sequence[T]) Shuffle(rng *rand.Rand) {
	prev := s.counting
	s.counting = false
	defer func() { s.counting = prev }()

	rng.Shuffle(len(s.values), s.Swap)
}

// Values returns a copy of the elements without touching the instrumentation.
func (s *Sequence[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)

	return out
}

// AccessCount returns the number of counted reads and writes since creation.
func (s *Sequence[T]) AccessCount() int {
	return s.count
}

// IsAccessed reports whether index i was touched since its marker was last cleared.
func (s *Sequence[T]) IsAccessed(i int) bool {
	return s.accessed[i]
}

// ClearAccessed resets the marker of index i.
func (s *Sequence[T]) ClearAccessed(i int) {
	s.accessed[i] = false
}

// Accessed returns the indices whose marker is set, in ascending order.
//
// Parameters:
//   - clear: When true every reported marker is reset (edge-triggered read)
//
// Returns:
//   - []int: Marked indices (nil when none)
func (s *Sequence[T]) Accessed(clear bool) []int {
	var out []int
	for i, marked := range s.accessed {
		if !marked {
			continue
		}
		out = append(out, i)
		if clear {
			s.accessed[i] = false
		}
	}

	return out
}

// Counted reports whether counting is currently enabled.
func (s *Sequence[T]) Counted() bool {
	return s.counting
}

// EnableCounting turns counting on.
//
// The toggle is paired and non-reentrant: enabling twice panics.
func (s *Sequence[T]) EnableCounting() {
	if s.counting {
		panic("sequence: EnableCounting called while counting is enabled")
	}
	s.counting = true
}

// DisableCounting turns counting off.
//
// Disabling while already disabled panics.
func (s *Sequence[T]) DisableCounting() {
	if !s.counting {
		panic("sequence: DisableCounting called while counting is disabled")
	}
	s.counting = false
}

// Counting enables counting and returns a func restoring the previous state.
//
// It is the scoped form of the toggle and is meant to be deferred, so an early
// return or a panic can never leave counting stuck on or off:
//
//	defer seq.Counting()()
func (s *Sequence[T]) Counting() (restore func()) {
	prev := s.counting
	s.counting = true

	return func() { s.counting = prev }
}

// String implements fmt.Stringer for debugging; it does not count.
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence%v(accesses=%d)", s.values, s.count)
}

func (s *Sequence[T]) touch(i int) {
	if i < 0 || i >= len(s.values) {
		panic(fmt.Sprintf("sequence: index %d out of range [0,%d)", i, len(s.values)))
	}
	if !s.counting {
		return
	}
	s.count++
	s.accessed[i] = true
}
