package sorting

import "github.com/Dyyynamic/sort-visualizer/internal/runstate"

// Bubble sorts with adjacent-pair passes.
//
// One unit compares a[j] with a[j+1] and swaps on strict greater-than. There is
// no early exit, so every input costs exactly n(n-1)/2 comparisons.
func Bubble(rs *runstate.RunState) bool {
	n := rs.Len()

	for pass := 0; pass < n-1; pass++ {
		end := n - pass - 1
		for j := 0; j < end; j++ {
			ok := rs.Unit(runstate.UnitCompare, func(p *runstate.Progress) {
				p.Cursor = j
				p.Boundary = end
				if p.Seq.Get(j) > p.Seq.Get(j+1) {
					p.Seq.Swap(j, j+1)
				}
			})
			if !ok {
				return false
			}
		}
	}

	rs.MarkSorted()

	return true
}
