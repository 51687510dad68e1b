package sorting

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dyyynamic/sort-visualizer/internal/runstate"
	"github.com/Dyyynamic/sort-visualizer/types"
)

type algorithmCase struct {
	algorithm types.Algorithm
	expected  func([]int) int
}

var algorithmCases = []algorithmCase{
	{types.AlgorithmBubble, refBubble},
	{types.AlgorithmSelection, refSelection},
	{types.AlgorithmInsertion, refInsertion},
	{types.AlgorithmMerge, refMerge},
	{types.AlgorithmQuick, refQuick},
}

// permutations returns every permutation of 1..n in lexicographic order.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}

	var out [][]int
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			out = append(out, slices.Clone(base))
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			walk(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	walk(0)

	return out
}

func runToCompletion(t *testing.T, algorithm types.Algorithm, input []int) *runstate.RunState {
	t.Helper()

	fn, err := Lookup(algorithm)
	require.NoError(t, err)

	rs := runstate.New(input)
	require.True(t, fn(rs))

	return rs
}

func TestLookup(t *testing.T) {
	for _, a := range types.Algorithms {
		fn, err := Lookup(a)
		require.NoError(t, err)
		require.NotNil(t, fn)
	}

	_, err := Lookup(types.AlgorithmUnknown)
	require.ErrorIs(t, err, types.ErrUnknownAlgorithm)
}

func TestWorkers_AllPermutations(t *testing.T) {
	for _, tc := range algorithmCases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			for n := 2; n <= 6; n++ {
				for _, input := range permutations(n) {
					rs := runToCompletion(t, tc.algorithm, input)
					snap := rs.Peek()

					require.True(t, slices.IsSorted(snap.Values), "input %v produced %v", input, snap.Values)
					require.True(t, snap.Sorted)
					require.Equal(t, tc.expected(input), snap.Comparisons, "input %v", input)
				}
			}
		})
	}
}

func TestWorkers_RandomLargeInputs(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))

	for _, tc := range algorithmCases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			for range 5 {
				input := rng.Perm(64)
				rs := runToCompletion(t, tc.algorithm, input)
				snap := rs.Peek()

				require.True(t, slices.IsSorted(snap.Values))
				require.Equal(t, tc.expected(input), snap.Comparisons)
				require.Positive(t, snap.Accesses)
			}
		})
	}
}

func TestWorkers_Duplicates(t *testing.T) {
	input := []int{3, 1, 3, 2, 1, 3, 2, 2}

	for _, tc := range algorithmCases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			rs := runToCompletion(t, tc.algorithm, input)
			snap := rs.Peek()

			require.Equal(t, []int{1, 1, 2, 2, 2, 3, 3, 3}, snap.Values)
			require.Equal(t, tc.expected(input), snap.Comparisons)
		})
	}
}

func TestWorkers_ReverseFiveScenario(t *testing.T) {
	reversed := []int{5, 4, 3, 2, 1}

	t.Run("bubble", func(t *testing.T) {
		rs := runToCompletion(t, types.AlgorithmBubble, reversed)
		require.Equal(t, []int{1, 2, 3, 4, 5}, rs.Peek().Values)
		require.Equal(t, 10, rs.Comparisons())
	})

	t.Run("selection", func(t *testing.T) {
		rs := runToCompletion(t, types.AlgorithmSelection, reversed)
		require.Equal(t, []int{1, 2, 3, 4, 5}, rs.Peek().Values)
		require.Equal(t, 10, rs.Comparisons(), "boundary swaps are not counted as comparisons")
	})

	t.Run("insertion", func(t *testing.T) {
		rs := runToCompletion(t, types.AlgorithmInsertion, reversed)
		require.Equal(t, 10, rs.Comparisons())
	})
}

func TestWorkers_ReverseIsQuadraticForBubble(t *testing.T) {
	for n := 2; n <= 40; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = n - i
		}

		rs := runToCompletion(t, types.AlgorithmBubble, input)
		require.Equal(t, n*(n-1)/2, rs.Comparisons())
	}
}

func TestWorkers_AlreadySortedInput(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("insertion is linear", func(t *testing.T) {
		rs := runToCompletion(t, types.AlgorithmInsertion, input)
		require.Equal(t, len(input)-1, rs.Comparisons())
	})

	t.Run("selection never swaps", func(t *testing.T) {
		rs := runToCompletion(t, types.AlgorithmSelection, input)
		// Each compare unit reads two indices; no swap units add accesses.
		require.Equal(t, 2*rs.Comparisons(), rs.Accesses())
	})
}

func TestWorkers_CancellationLeavesCompletionFalse(t *testing.T) {
	for _, tc := range algorithmCases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			fn, err := Lookup(tc.algorithm)
			require.NoError(t, err)

			input := rand.New(rand.NewPCG(5, 8)).Perm(40)
			rs := runstate.New(input, runstate.WithDelay(2*time.Millisecond))

			var wg sync.WaitGroup
			var completed bool
			wg.Go(func() { completed = fn(rs) })

			require.Eventually(t, func() bool { return rs.Comparisons() > 3 }, 5*time.Second, time.Millisecond)
			rs.Cancel()

			returned := make(chan struct{})
			go func() {
				wg.Wait()
				close(returned)
			}()
			select {
			case <-returned:
			case <-time.After(time.Second):
				t.Fatal("worker did not return within one unit after cancellation")
			}

			require.False(t, completed)
			require.False(t, rs.Sorted())

			peeked := make(chan struct{})
			go func() {
				_ = rs.Peek()
				close(peeked)
			}()
			select {
			case <-peeked:
			case <-time.After(time.Second):
				t.Fatal("lock still held after cancellation")
			}
		})
	}
}

func TestWorkers_CancelledBeforeStart(t *testing.T) {
	for _, tc := range algorithmCases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			fn, err := Lookup(tc.algorithm)
			require.NoError(t, err)

			rs := runstate.New([]int{4, 3, 2, 1})
			rs.Cancel()

			require.False(t, fn(rs))
			require.False(t, rs.Sorted())
			require.LessOrEqual(t, rs.Comparisons(), 1, "at most the first unit runs")
		})
	}
}

func TestWorkers_ObserverSeesPermutationsThroughout(t *testing.T) {
	// Merge and insertion temporarily duplicate values while moving data, so
	// only the swap-based algorithms keep a permutation at every unit boundary.
	for _, algorithm := range []types.Algorithm{types.AlgorithmBubble, types.AlgorithmSelection, types.AlgorithmQuick} {
		t.Run(algorithm.String(), func(t *testing.T) {
			fn, err := Lookup(algorithm)
			require.NoError(t, err)

			input := rand.New(rand.NewPCG(21, 34)).Perm(30)
			rs := runstate.New(input)

			done := make(chan struct{})
			go func() {
				defer close(done)
				fn(rs)
			}()

			for {
				snap := rs.Snapshot()
				require.ElementsMatch(t, input, snap.Values)
				select {
				case <-done:
					require.True(t, rs.Sorted())
					return
				default:
				}
			}
		})
	}
}
