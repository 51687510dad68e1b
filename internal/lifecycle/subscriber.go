package lifecycle

import (
	"sync"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// phaseSubscriber is one Subscribe channel.
type phaseSubscriber struct {
	ch     chan types.Phase
	mu     sync.Mutex
	closed bool
}

// trySend delivers a phase without blocking. It reports false when the
// notification was dropped because the subscriber's buffer was full.
func (s *phaseSubscriber) trySend(phase types.Phase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- phase:
		return true
	default:
		return false
	}
}

// close closes the subscriber's channel once.
func (s *phaseSubscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
