// Package verify sweeps a sorted run and confirms ascending order.
package verify

import (
	"github.com/Dyyynamic/sort-visualizer/internal/runstate"
	"github.com/Dyyynamic/sort-visualizer/types"
)

// Run checks that every element is not less than its predecessor.
//
// Each index i in 1..n-1 is one move unit: it reads a[i-1] and a[i] and
// advances the verified prefix. The comparisons counter is never touched. On
// success the verified flag is set.
//
// Parameters:
//   - rs: Run state whose completion flag is already set
//
// Returns:
//   - bool: true if the sweep finished, false if it was cancelled or failed
//   - error: *types.IntegrityViolationError on the first out-of-order pair
func Run(rs *runstate.RunState) (bool, error) {
	n := rs.Len()

	for i := 1; i < n; i++ {
		ok, err := rs.Check(runstate.UnitMove, func(p *runstate.Progress) error {
			p.Cursor = i
			prev, cur := p.Seq.Get(i-1), p.Seq.Get(i)
			if cur < prev {
				return &types.IntegrityViolationError{Index: i, Previous: prev, Current: cur}
			}
			p.VerifiedUpTo = i

			return nil
		})
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	rs.MarkVerified()

	return true, nil
}
