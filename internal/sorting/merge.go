package sorting

import "github.com/Dyyynamic/sort-visualizer/internal/runstate"

// mergeFrame is one pending range [lo, hi) of the merge sort decomposition.
type mergeFrame struct {
	lo, hi int
	merge  bool
}

// Merge sorts with top-down merge sort driven by an explicit frame stack.
//
// Splitting costs nothing. A merge copies both halves into scratch buffers
// (one move unit per element), then re-merges them with one compare unit per
// head-to-head comparison, taking from the left half on ties. Tails left over
// after one half runs out are written back in move units.
func Merge(rs *runstate.RunState) bool {
	stack := []mergeFrame{{lo: 0, hi: rs.Len()}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.hi-f.lo < 2 {
			continue
		}
		mid := f.lo + (f.hi-f.lo)/2

		if f.merge {
			if !mergeRange(rs, f.lo, mid, f.hi) {
				return false
			}

			continue
		}

		// Post-order: the merge frame runs after both halves; left half first.
		stack = append(stack,
			mergeFrame{lo: f.lo, hi: f.hi, merge: true},
			mergeFrame{lo: mid, hi: f.hi},
			mergeFrame{lo: f.lo, hi: mid},
		)
	}

	rs.MarkSorted()

	return true
}

// mergeRange merges the sorted runs [lo, mid) and [mid, hi).
func mergeRange(rs *runstate.RunState, lo, mid, hi int) bool {
	left, ok := copyRun(rs, lo, mid, lo, hi)
	if !ok {
		return false
	}
	right, ok := copyRun(rs, mid, hi, lo, hi)
	if !ok {
		return false
	}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		ok := rs.Unit(runstate.UnitCompare, func(p *runstate.Progress) {
			p.Cursor = k
			if left[i] <= right[j] {
				p.Seq.Set(k, left[i])
				i++
			} else {
				p.Seq.Set(k, right[j])
				j++
			}
		})
		if !ok {
			return false
		}
		k++
	}

	for _, tail := range [][]int{left[i:], right[j:]} {
		for _, v := range tail {
			ok := rs.Unit(runstate.UnitMove, func(p *runstate.Progress) {
				p.Cursor = k
				p.Seq.Set(k, v)
			})
			if !ok {
				return false
			}
			k++
		}
	}

	return true
}

// copyRun copies [from, to) into a scratch buffer, one move unit per element.
func copyRun(rs *runstate.RunState, from, to, lo, hi int) ([]int, bool) {
	buf := make([]int, 0, to-from)
	for idx := from; idx < to; idx++ {
		ok := rs.Unit(runstate.UnitMove, func(p *runstate.Progress) {
			p.Boundary = lo
			p.Pivot = hi - 1
			p.Cursor = idx
			buf = append(buf, p.Seq.Get(idx))
		})
		if !ok {
			return nil, false
		}
	}

	return buf, true
}
