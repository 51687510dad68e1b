// Package lifecycle tracks the phase of a sort session.
package lifecycle

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// subscriberBuffer holds a full Idle → Verified walk plus one terminal phase.
const subscriberBuffer = 6

var validTransitions = map[types.Phase][]types.Phase{
	types.PhaseIdle:      {types.PhaseSorting, types.PhaseCancelled},
	types.PhaseSorting:   {types.PhaseSorted, types.PhaseCancelled},
	types.PhaseSorted:    {types.PhaseVerifying, types.PhaseCancelled},
	types.PhaseVerifying: {types.PhaseVerified, types.PhaseFailed, types.PhaseCancelled},
	// Verified, Cancelled and Failed are terminal.
}

// StateMachine holds the current phase and fans transitions out to subscribers.
//
// Valid transitions are enforced; an invalid request is logged and ignored.
type StateMachine struct {
	current atomic.Int32 // types.Phase

	mu      sync.Mutex
	entered time.Time

	logger  types.Logger
	metrics types.SessionMetrics

	subscribers      *xsync.Map[uint64, *phaseSubscriber]
	nextSubscriberID atomic.Uint64
}

// NewStateMachine creates a state machine in PhaseIdle.
//
// Parameters:
//   - logger: Logger for transitions
//   - metrics: Collector for transition timings and dropped notifications
//
// Returns:
//   - *StateMachine: Machine starting in PhaseIdle
func NewStateMachine(logger types.Logger, metrics types.SessionMetrics) *StateMachine {
	sm := &StateMachine{
		entered:     time.Now(),
		logger:      logger,
		metrics:     metrics,
		subscribers: xsync.NewMap[uint64, *phaseSubscriber](),
	}
	sm.current.Store(int32(types.PhaseIdle))

	return sm
}

// Phase returns the current phase.
func (sm *StateMachine) Phase() types.Phase {
	return types.Phase(sm.current.Load())
}

// CanTransition reports whether from → to is allowed.
func CanTransition(from, to types.Phase) bool {
	return slices.Contains(validTransitions[from], to)
}

// Transition moves to phase to if the move is valid from the current phase.
//
// Parameters:
//   - to: Target phase
//
// Returns:
//   - from: Phase that was left (the current phase when rejected)
//   - ok: true if the transition happened
func (sm *StateMachine) Transition(to types.Phase) (from types.Phase, ok bool) {
	sm.mu.Lock()
	from = sm.Phase()
	if !CanTransition(from, to) {
		sm.mu.Unlock()
		sm.logger.Warn("invalid phase transition attempted", "from", from.String(), "to", to.String())

		return from, false
	}

	now := time.Now()
	spent := now.Sub(sm.entered)
	sm.entered = now
	sm.current.Store(int32(to)) //nolint:gosec // G115: phase is a bounded enum
	sm.mu.Unlock()

	sm.logger.Info("phase transition", "from", from.String(), "to", to.String())
	sm.metrics.RecordPhaseTransition(from, to, spent.Seconds())

	sm.subscribers.Range(func(_ uint64, sub *phaseSubscriber) bool {
		if !sub.trySend(to) {
			sm.metrics.RecordSubscriberDropped()
		}

		return true
	})

	return from, true
}

// Subscribe returns a channel that receives phase notifications.
//
// The channel is buffered and receives the current phase immediately. A
// subscriber that falls behind misses notifications rather than blocking
// the session.
//
// Returns:
//   - <-chan types.Phase: Channel that receives phases
//   - func(): Unsubscribe function; closes the channel
//
// Example:
//
//	ch, unsubscribe := sm.Subscribe()
//	defer unsubscribe()
//	for phase := range ch {
//	    fmt.Println("phase:", phase)
//	}
func (sm *StateMachine) Subscribe() (<-chan types.Phase, func()) {
	id := sm.nextSubscriberID.Add(1)

	sub := &phaseSubscriber{ch: make(chan types.Phase, subscriberBuffer)}
	sm.subscribers.Store(id, sub)

	sub.trySend(sm.Phase())

	return sub.ch, func() {
		if s, ok := sm.subscribers.LoadAndDelete(id); ok {
			s.close()
		}
	}
}

// Close closes every subscriber channel.
func (sm *StateMachine) Close() {
	sm.subscribers.Range(func(id uint64, _ *phaseSubscriber) bool {
		if s, ok := sm.subscribers.LoadAndDelete(id); ok {
			s.close()
		}

		return true
	})
}
