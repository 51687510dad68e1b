// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, so the session
// never has to nil-check individual callbacks.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Phase, types.Phase) error = (*NopHooks)(nil).OnPhaseChanged
	_ func(context.Context, types.Result) error             = (*NopHooks)(nil).OnCompleted
	_ func(context.Context, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPhaseChanged: h.OnPhaseChanged,
		OnCompleted:    h.OnCompleted,
		OnError:        h.OnError,
	}
}

// Fill returns hooks where every nil callback is replaced by its no-op.
func Fill(h *types.Hooks) types.Hooks {
	nop := NewNop()
	if h == nil {
		return nop
	}

	out := *h
	if out.OnPhaseChanged == nil {
		out.OnPhaseChanged = nop.OnPhaseChanged
	}
	if out.OnCompleted == nil {
		out.OnCompleted = nop.OnCompleted
	}
	if out.OnError == nil {
		out.OnError = nop.OnError
	}

	return out
}

// OnPhaseChanged is a no-op implementation.
func (h *NopHooks) OnPhaseChanged(_ context.Context, _, _ types.Phase) error {
	return nil
}

// OnCompleted is a no-op implementation.
func (h *NopHooks) OnCompleted(_ context.Context, _ types.Result) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
