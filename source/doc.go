// Package source provides built-in sequence sources.
//
// A sequence source produces the initial contents of a run. The package includes:
//
//   - Shuffled: a seeded permutation of 1..n
//   - Reversed: n..1, the worst case for most quadratic algorithms
//   - Sorted: 1..n, the best case for insertion sort
//   - Static: a fixed list, mostly for tests
//
// Custom sources can be implemented by satisfying the types.SequenceSource interface.
package source
