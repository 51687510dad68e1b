package testing

import (
	"context"
	"fmt"
	"time"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// PhaseWaiter is the subset of Session needed for waiting on a phase.
type PhaseWaiter interface {
	Subscribe() (<-chan types.Phase, func())
}

// WaitPhase waits for the session to reach the expected phase.
//
// It returns early with an error when the session settles in a different
// terminal phase, since no further transition can happen.
//
// Parameters:
//   - ctx: Context for cancellation
//   - w: Session to watch
//   - expected: Target phase
//   - timeout: Maximum time to wait
//
// Returns:
//   - error: nil once the phase is reached; timeout, terminal-phase or ctx error otherwise
//
// Example:
//
//	require.NoError(t, sess.Start(ctx))
//	require.NoError(t, sortvistest.WaitPhase(ctx, sess, types.PhaseSorted, 5*time.Second))
func WaitPhase(ctx context.Context, w PhaseWaiter, expected types.Phase, timeout time.Duration) error {
	phases, unsubscribe := w.Subscribe()
	defer unsubscribe()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	last := types.PhaseIdle
	for {
		select {
		case phase, ok := <-phases:
			if !ok {
				return fmt.Errorf("phase channel closed in %s while waiting for %s", last, expected)
			}
			last = phase
			if phase == expected {
				return nil
			}
			if phase.Terminal() {
				return fmt.Errorf("session settled in %s while waiting for %s", phase, expected)
			}
		case <-timer.C:
			return fmt.Errorf("timeout after %s waiting for %s (last %s)", timeout, expected, last)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
