package sorting

import "github.com/Dyyynamic/sort-visualizer/internal/runstate"

// quickRange is one pending inclusive range [lo, hi] awaiting partitioning.
type quickRange struct {
	lo, hi int
}

// Quick sorts with Lomuto-partition quick sort driven by an explicit range stack.
//
// The pivot is the last element of the range. One compare unit reads the
// scanned element and the pivot and, when the element is less than or equal
// to the pivot, swaps it into the store position. Pivot placement is a move
// unit. Not stable.
func Quick(rs *runstate.RunState) bool {
	stack := []quickRange{{lo: 0, hi: rs.Len() - 1}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.lo >= r.hi {
			continue
		}

		store, ok := partition(rs, r.lo, r.hi)
		if !ok {
			return false
		}

		// Left partition is pushed last so it is processed first.
		stack = append(stack,
			quickRange{lo: store + 1, hi: r.hi},
			quickRange{lo: r.lo, hi: store - 1},
		)
	}

	rs.MarkSorted()

	return true
}

// partition runs one Lomuto pass over [lo, hi] and returns the pivot's final index.
func partition(rs *runstate.RunState, lo, hi int) (int, bool) {
	store := lo
	for j := lo; j < hi; j++ {
		ok := rs.Unit(runstate.UnitCompare, func(p *runstate.Progress) {
			p.Pivot = hi
			p.Boundary = store
			p.Cursor = j
			if p.Seq.Get(j) <= p.Seq.Get(hi) {
				p.Seq.Swap(store, j)
				store++
			}
		})
		if !ok {
			return 0, false
		}
	}

	ok := rs.Unit(runstate.UnitMove, func(p *runstate.Progress) {
		p.Cursor = store
		p.Seq.Swap(store, hi)
	})

	return store, ok
}
