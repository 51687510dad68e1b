package sorting

import "github.com/Dyyynamic/sort-visualizer/internal/runstate"

// Insertion sorts by shifting larger elements right of a held value.
//
// For index i the held value is picked up inside the first compare unit. Each
// compare unit checks the element to the left of the gap; when it is strictly
// greater it is shifted right in the same unit. The held value is then written
// into the gap in a move unit, skipped when nothing moved.
func Insertion(rs *runstate.RunState) bool {
	n := rs.Len()

	for i := 1; i < n; i++ {
		var held int
		picked := false
		gap := i

		for gap > 0 {
			shifted := false
			ok := rs.Unit(runstate.UnitCompare, func(p *runstate.Progress) {
				if !picked {
					held = p.Seq.Get(i)
					picked = true
				}
				p.Boundary = i
				p.Cursor = gap
				left := p.Seq.Get(gap - 1)
				if left > held {
					p.Seq.Set(gap, left)
					shifted = true
				}
			})
			if !ok {
				return false
			}
			if !shifted {
				break
			}
			gap--
		}

		if gap == i {
			continue
		}
		ok := rs.Unit(runstate.UnitMove, func(p *runstate.Progress) {
			p.Cursor = gap
			p.Seq.Set(gap, held)
		})
		if !ok {
			return false
		}
	}

	rs.MarkSorted()

	return true
}
