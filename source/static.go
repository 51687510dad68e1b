package source

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// Static implements a sequence source with a fixed list of values.
type Static struct {
	mu     sync.RWMutex
	values []int
}

var _ types.SequenceSource = (*Static)(nil)

// NewStatic creates a source that always returns a copy of values.
//
// Parameters:
//   - values: Fixed contents, copied on construction
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]int{5, 4, 3, 2, 1})
//	sess, err := sortvis.NewSession(&cfg, sortvis.WithSource(src))
//	if err != nil { /* handle */ }
func NewStatic(values []int) *Static {
	return &Static{values: slices.Clone(values)}
}

// Values returns a copy of the fixed list.
//
// Returns:
//   - []int: Copy of the configured values
//   - error: n does not match the number of configured values
func (s *Static) Values(ctx context.Context, n int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n != len(s.values) {
		return nil, fmt.Errorf("static source holds %d values, %d requested", len(s.values), n)
	}

	return slices.Clone(s.values), nil
}

// Update replaces the fixed list.
//
// Thread-safe: can be called concurrently with Values.
func (s *Static) Update(values []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = slices.Clone(values)
}
