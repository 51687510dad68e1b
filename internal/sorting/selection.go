package sorting

import "github.com/Dyyynamic/sort-visualizer/internal/runstate"

// Selection sorts by scanning for the minimum of the unsorted suffix.
//
// One unit compares a[j] with the current minimum (strict less-than updates it).
// After each scan the boundary is swapped with the minimum in a move unit, only
// when they differ; that swap does not add to the comparisons counter.
func Selection(rs *runstate.RunState) bool {
	n := rs.Len()

	for boundary := 0; boundary < n-1; boundary++ {
		minIdx := boundary
		for j := boundary + 1; j < n; j++ {
			ok := rs.Unit(runstate.UnitCompare, func(p *runstate.Progress) {
				p.Boundary = boundary
				p.Cursor = j
				if p.Seq.Get(j) < p.Seq.Get(minIdx) {
					minIdx = j
				}
				p.Pivot = minIdx
			})
			if !ok {
				return false
			}
		}

		if minIdx == boundary {
			continue
		}
		ok := rs.Unit(runstate.UnitMove, func(p *runstate.Progress) {
			p.Cursor = boundary
			p.Seq.Swap(boundary, minIdx)
		})
		if !ok {
			return false
		}
	}

	rs.MarkSorted()

	return true
}
