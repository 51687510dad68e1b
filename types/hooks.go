package types

import "context"

// Hooks defines callbacks for Session lifecycle events.
//
// All hooks are optional and called asynchronously in background goroutines
// so a slow hook never delays a worker. Hooks receive the session's lifecycle
// context which is cancelled when the session is stopped.
//
// IMPORTANT: Hook execution behavior:
//   - Hooks run concurrently and may complete in any order
//   - Stop() waits for in-flight hooks before returning
//   - Hook errors are logged but don't fail session operations
//
// Example:
//
//	hooks := &sortvis.Hooks{
//	    OnPhaseChanged: func(ctx context.Context, from, to sortvis.Phase) error {
//	        log.Printf("phase %s -> %s", from, to)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPhaseChanged is called when the session phase transitions.
	OnPhaseChanged func(ctx context.Context, from, to Phase) error

	// OnCompleted is called once when a worker (sort or verifier) returns, cancelled or not.
	OnCompleted func(ctx context.Context, result Result) error

	// OnError is called when a worker reports an error, such as an integrity violation.
	OnError func(ctx context.Context, err error) error
}
