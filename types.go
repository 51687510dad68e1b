package sortvis

import "github.com/Dyyynamic/sort-visualizer/types"

// Re-export types from the types package.
//
// Internal packages depend on types without depending on the root sortvis
// package, while callers still get sortvis.Phase, sortvis.Logger and so on.
type (
	Phase     = types.Phase
	Algorithm = types.Algorithm
	Snapshot  = types.Snapshot
	Result    = types.Result
)

// Re-export interfaces from the types package for convenience.
type (
	Observer         = types.Observer
	SequenceSource   = types.SequenceSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Phase constants.
const (
	PhaseIdle      = types.PhaseIdle
	PhaseSorting   = types.PhaseSorting
	PhaseSorted    = types.PhaseSorted
	PhaseVerifying = types.PhaseVerifying
	PhaseVerified  = types.PhaseVerified
	PhaseCancelled = types.PhaseCancelled
	PhaseFailed    = types.PhaseFailed
)

// Re-export Algorithm constants.
const (
	AlgorithmUnknown   = types.AlgorithmUnknown
	AlgorithmBubble    = types.AlgorithmBubble
	AlgorithmSelection = types.AlgorithmSelection
	AlgorithmInsertion = types.AlgorithmInsertion
	AlgorithmMerge     = types.AlgorithmMerge
	AlgorithmQuick     = types.AlgorithmQuick
)

// ParseAlgorithm converts a selector name such as "bubble" into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	return types.ParseAlgorithm(name)
}

// Algorithms lists every runnable algorithm in presentation order.
var Algorithms = types.Algorithms
