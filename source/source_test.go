package source

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic_Values(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		input := []int{5, 4, 3, 2, 1}
		src := NewStatic(input)

		result, err := src.Values(context.Background(), 5)
		require.NoError(t, err)
		require.Equal(t, input, result)

		result[0] = 99
		again, err := src.Values(context.Background(), 5)
		require.NoError(t, err)
		require.Equal(t, 5, again[0])
	})

	t.Run("constructor copies its input", func(t *testing.T) {
		input := []int{2, 1}
		src := NewStatic(input)
		input[0] = 42

		result, err := src.Values(context.Background(), 2)
		require.NoError(t, err)
		require.Equal(t, []int{2, 1}, result)
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := NewStatic([]int{1, 2, 3}).Values(context.Background(), 4)
		require.Error(t, err)
	})

	t.Run("update", func(t *testing.T) {
		src := NewStatic([]int{1, 2})
		src.Update([]int{3, 2, 1})

		result, err := src.Values(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, []int{3, 2, 1}, result)
	})
}

func TestShuffled_IsPermutation(t *testing.T) {
	src := NewShuffled(0)

	values, err := src.Values(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, values, 100)

	sorted := slices.Sorted(slices.Values(values))
	require.Equal(t, ascending(100), sorted)
}

func TestShuffled_SeedIsDeterministic(t *testing.T) {
	a, err := NewShuffled(42).Values(context.Background(), 64)
	require.NoError(t, err)
	b, err := NewShuffled(42).Values(context.Background(), 64)
	require.NoError(t, err)
	c, err := NewShuffled(43).Values(context.Background(), 64)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestSeedFromString(t *testing.T) {
	require.Zero(t, SeedFromString(""))
	require.Equal(t, SeedFromString("demo"), SeedFromString("demo"))
	require.NotEqual(t, SeedFromString("demo"), SeedFromString("demo2"))
	require.NotZero(t, SeedFromString("demo"))
}

func TestReversedAndSorted(t *testing.T) {
	reversed, err := NewReversed().Values(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1}, reversed)

	sorted, err := NewSorted().Values(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
}

func TestSources_RespectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewShuffled(1).Values(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	_, err = NewReversed().Values(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	_, err = NewSorted().Values(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	_, err = NewStatic([]int{1, 2}).Values(ctx, 2)
	require.ErrorIs(t, err, context.Canceled)
}
