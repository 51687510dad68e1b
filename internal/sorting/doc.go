// Package sorting implements the algorithm workers.
//
// Each classical algorithm is expressed as a sequence of RunState units of
// work instead of a tight loop: one comparison (with its conditional swap or
// shift) or one data move per unit. Comparison counts therefore match the
// textbook algorithms exactly, and every unit ends with a cancellation check.
//
// Recursive algorithms (merge, quick) keep an explicit stack of index ranges,
// so nested calls run the same unit loop and honor cancellation at every level.
//
// A worker returns true after setting the completion flag, or false as soon as
// a unit reports cancellation. Cancellation is not an error.
package sorting
