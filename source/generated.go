package source

import (
	"context"
	"math/rand/v2"

	"github.com/zeebo/xxh3"

	"github.com/Dyyynamic/sort-visualizer/types"
)

// Shuffled produces a uniformly shuffled permutation of 1..n.
type Shuffled struct {
	seed uint64
}

var _ types.SequenceSource = (*Shuffled)(nil)

// NewShuffled creates a shuffling source.
//
// Parameters:
//   - seed: PRNG seed; 0 draws a fresh random seed on every call to Values
//
// Returns:
//   - *Shuffled: Initialized source
func NewShuffled(seed uint64) *Shuffled {
	return &Shuffled{seed: seed}
}

// SeedFromString derives a shuffle seed from free-form text.
//
// The same text always yields the same seed, so runs can be replayed by name.
// The empty string yields 0, which means "random".
//
// Example:
//
//	src := source.NewShuffled(source.SeedFromString("demo-run"))
func SeedFromString(s string) uint64 {
	if s == "" {
		return 0
	}

	seed := xxh3.HashString(s)
	if seed == 0 {
		seed = 1
	}

	return seed
}

// Values returns a permutation of 1..n.
func (s *Shuffled) Values(ctx context.Context, n int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := s.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	values := ascending(n)
	rng.Shuffle(n, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return values, nil
}

// Reversed produces n..1.
type Reversed struct{}

var _ types.SequenceSource = (*Reversed)(nil)

// NewReversed creates a source returning descending values.
func NewReversed() *Reversed {
	return &Reversed{}
}

// Values returns n, n-1, ..., 1.
func (Reversed) Values(ctx context.Context, n int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]int, n)
	for i := range values {
		values[i] = n - i
	}

	return values, nil
}

// Sorted produces 1..n.
type Sorted struct{}

var _ types.SequenceSource = (*Sorted)(nil)

// NewSorted creates a source returning ascending values.
func NewSorted() *Sorted {
	return &Sorted{}
}

// Values returns 1, 2, ..., n.
func (Sorted) Values(ctx context.Context, n int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ascending(n), nil
}

func ascending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}

	return values
}
