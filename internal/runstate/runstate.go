package runstate

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Dyyynamic/sort-visualizer/internal/sequence"
	"github.com/Dyyynamic/sort-visualizer/types"
)

// UnitKind says whether a unit of work counts as a comparison.
type UnitKind int

const (
	// UnitCompare performs a comparison and increments the comparisons counter.
	UnitCompare UnitKind = iota

	// UnitMove moves or checks data without incrementing the comparisons counter
	// (selection boundary swap, merge copies, pivot placement, verifier steps).
	UnitMove
)

// Progress is the view of the run handed to the body of a unit of work.
//
// It is only valid inside the Unit callback, while the lock is held.
type Progress struct {
	// Seq is the instrumented sequence; counting is enabled.
	Seq *sequence.Sequence[int]

	// Cursor, Boundary and Pivot are algorithm-specific progress indices
	// published to observers.
	Cursor   int
	Boundary int
	Pivot    int

	// VerifiedUpTo is advanced by the verifier.
	VerifiedUpTo int
}

// RunState is the explicitly owned shared state of one session.
type RunState struct {
	mu sync.Mutex

	// guarded by mu
	progress    Progress
	comparisons int
	sorted      bool
	verified    bool

	delay time.Duration

	cancelled atomic.Bool
	cancelCh  chan struct{}
	once      sync.Once
}

// Option configures a RunState.
type Option func(*RunState)

// WithDelay sets the pacing delay slept after every unit of work.
//
// Parameters:
//   - delay: Non-negative pacing delay (0 disables sleeping)
func WithDelay(delay time.Duration) Option {
	return func(rs *RunState) {
		rs.delay = delay
	}
}

// New creates a RunState holding a copy of values.
//
// The sequence is populated with counting disabled, so a fresh RunState reports
// zero accesses and no markers.
//
// Parameters:
//   - values: Initial elements
//   - opts: Optional settings (pacing delay)
//
// Returns:
//   - *RunState: Ready-to-run state, not sorted, not cancelled
func New(values []int, opts ...Option) *RunState {
	rs := &RunState{
		progress: Progress{
			Seq:          sequence.FromValues(values),
			Cursor:       -1,
			Boundary:     -1,
			Pivot:        -1,
			VerifiedUpTo: -1,
		},
		cancelCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rs)
	}

	return rs
}

// Len returns the number of elements. The length never changes after New.
func (rs *RunState) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.progress.Seq.Len()
}

// Delay returns the pacing delay.
func (rs *RunState) Delay() time.Duration {
	return rs.delay
}

// Shuffle permutes the sequence without counting.
//
// Must only be called before a worker starts.
func (rs *RunState) Shuffle(rng *rand.Rand) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.progress.Seq.Shuffle(rng)
}

// Unit runs fn as one unit of work under the canonical locking discipline.
//
// Parameters:
//   - kind: UnitCompare increments the comparisons counter after fn
//   - fn: Body of the unit; it must perform exactly one comparison, swap or move
//
// Returns:
//   - bool: false if cancellation was requested; the caller must return
//     immediately without touching the completion flag
func (rs *RunState) Unit(kind UnitKind, fn func(p *Progress)) bool {
	rs.step(kind, fn)

	if rs.cancelled.Load() {
		return false
	}

	return rs.pace()
}

// Check runs one unit like Unit, except that fn may reject the state it reads.
//
// A non-nil error from fn is returned at once, without pacing, so the host
// learns about the failure without waiting out the delay.
//
// Parameters:
//   - kind: UnitCompare increments the comparisons counter after fn
//   - fn: Body of the unit; a non-nil error stops the caller
//
// Returns:
//   - bool: false if fn failed or cancellation was requested
//   - error: The error returned by fn
func (rs *RunState) Check(kind UnitKind, fn func(p *Progress) error) (bool, error) {
	var err error
	rs.step(kind, func(p *Progress) {
		err = fn(p)
	})
	if err != nil {
		return false, err
	}

	if rs.cancelled.Load() {
		return false, nil
	}

	return rs.pace(), nil
}

func (rs *RunState) step(kind UnitKind, fn func(p *Progress)) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	defer rs.progress.Seq.Counting()()

	fn(&rs.progress)
	if kind == UnitCompare {
		rs.comparisons++
	}
}

// pace sleeps the pacing delay, returning false if cancellation arrives first.
func (rs *RunState) pace() bool {
	if rs.delay <= 0 {
		return !rs.cancelled.Load()
	}

	timer := time.NewTimer(rs.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-rs.cancelCh:
		return false
	}
}

// Cancel requests cooperative cancellation. Safe to call multiple times and
// from any goroutine; it never blocks on the lock.
func (rs *RunState) Cancel() {
	rs.once.Do(func() {
		rs.cancelled.Store(true)
		close(rs.cancelCh)
	})
}

// Cancelled reports whether cancellation was requested.
func (rs *RunState) Cancelled() bool {
	return rs.cancelled.Load()
}

// Done returns a channel closed when cancellation is requested.
func (rs *RunState) Done() <-chan struct{} {
	return rs.cancelCh
}

// MarkSorted sets the completion flag and clears the cursor.
func (rs *RunState) MarkSorted() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.sorted = true
	rs.progress.Cursor = -1
	rs.progress.Pivot = -1
}

// MarkVerified sets the verified flag.
func (rs *RunState) MarkVerified() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.verified = true
	rs.progress.Cursor = -1
}

// Comparisons returns the comparisons counter.
func (rs *RunState) Comparisons() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.comparisons
}

// Accesses returns the access counter of the sequence.
func (rs *RunState) Accesses() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.progress.Seq.AccessCount()
}

// Sorted returns the completion flag.
func (rs *RunState) Sorted() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.sorted
}

// Verified returns the verified flag.
func (rs *RunState) Verified() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.verified
}

// IsAccessed reports the access marker of index i.
func (rs *RunState) IsAccessed(i int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return rs.progress.Seq.IsAccessed(i)
}

// ClearAccessed resets the access marker of index i.
func (rs *RunState) ClearAccessed(i int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.progress.Seq.ClearAccessed(i)
}

// Snapshot copies the run state and drains the access markers it reports.
//
// Each reported index fires once: it will not be reported again until a
// worker touches it again.
func (rs *RunState) Snapshot() types.Snapshot {
	return rs.read(true)
}

// Peek copies the run state, leaving access markers set.
func (rs *RunState) Peek() types.Snapshot {
	return rs.read(false)
}

func (rs *RunState) read(drain bool) types.Snapshot {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	seq := rs.progress.Seq

	return types.Snapshot{
		Values:       seq.Values(),
		Accessed:     seq.Accessed(drain),
		Comparisons:  rs.comparisons,
		Accesses:     seq.AccessCount(),
		Cursor:       rs.progress.Cursor,
		Boundary:     rs.progress.Boundary,
		Pivot:        rs.progress.Pivot,
		VerifiedUpTo: rs.progress.VerifiedUpTo,
		Sorted:       rs.sorted,
		Verified:     rs.verified,
	}
}

// Compile-time assertion that RunState implements Observer.
var _ types.Observer = (*RunState)(nil)
