package sorting

import (
	"fmt"

	"github.com/Dyyynamic/sort-visualizer/internal/runstate"
	"github.com/Dyyynamic/sort-visualizer/types"
)

// Func is an algorithm worker. It returns true when it set the completion flag
// and false when it stopped because cancellation was requested.
type Func func(rs *runstate.RunState) bool

var registry = map[types.Algorithm]Func{
	types.AlgorithmBubble:    Bubble,
	types.AlgorithmSelection: Selection,
	types.AlgorithmInsertion: Insertion,
	types.AlgorithmMerge:     Merge,
	types.AlgorithmQuick:     Quick,
}

// Lookup returns the worker for an algorithm.
//
// Parameters:
//   - algorithm: Algorithm selector
//
// Returns:
//   - Func: Worker function
//   - error: ErrUnknownAlgorithm if no worker is registered
func Lookup(algorithm types.Algorithm) (Func, error) {
	fn, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownAlgorithm, algorithm)
	}

	return fn, nil
}
