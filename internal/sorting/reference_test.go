package sorting

// Reference implementations used to derive the expected comparisons count for
// a specific input. They are plain loops over a private copy and share the
// split and tie rules of the workers.

func refBubble(values []int) int {
	n := len(values)

	return n * (n - 1) / 2
}

func refSelection(values []int) int {
	n := len(values)

	return n * (n - 1) / 2
}

func refInsertion(values []int) int {
	a := append([]int(nil), values...)
	count := 0
	for i := 1; i < len(a); i++ {
		held := a[i]
		gap := i
		for gap > 0 {
			count++
			if a[gap-1] <= held {
				break
			}
			a[gap] = a[gap-1]
			gap--
		}
		a[gap] = held
	}

	return count
}

func refMerge(values []int) int {
	a := append([]int(nil), values...)

	var sortRange func(lo, hi int) int
	sortRange = func(lo, hi int) int {
		if hi-lo < 2 {
			return 0
		}
		mid := lo + (hi-lo)/2
		count := sortRange(lo, mid) + sortRange(mid, hi)

		left := append([]int(nil), a[lo:mid]...)
		right := append([]int(nil), a[mid:hi]...)
		i, j, k := 0, 0, lo
		for i < len(left) && j < len(right) {
			count++
			if left[i] <= right[j] {
				a[k] = left[i]
				i++
			} else {
				a[k] = right[j]
				j++
			}
			k++
		}
		k += copy(a[k:], left[i:])
		copy(a[k:], right[j:])

		return count
	}

	return sortRange(0, len(a))
}

func refQuick(values []int) int {
	a := append([]int(nil), values...)

	var sortRange func(lo, hi int) int
	sortRange = func(lo, hi int) int {
		if lo >= hi {
			return 0
		}
		store := lo
		for j := lo; j < hi; j++ {
			if a[j] <= a[hi] {
				a[store], a[j] = a[j], a[store]
				store++
			}
		}
		a[store], a[hi] = a[hi], a[store]

		return hi - lo + sortRange(lo, store-1) + sortRange(store+1, hi)
	}

	return sortRange(0, len(a)-1)
}
