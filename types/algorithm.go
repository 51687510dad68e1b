package types

import (
	"fmt"
	"strings"
)

// Algorithm selects the sorting procedure run by the worker.
type Algorithm int

const (
	// AlgorithmUnknown is the zero value and never valid for a run.
	AlgorithmUnknown Algorithm = iota

	// AlgorithmBubble is adjacent-pair bubble sort.
	AlgorithmBubble

	// AlgorithmSelection is minimum-scan selection sort.
	AlgorithmSelection

	// AlgorithmInsertion is shifting insertion sort.
	AlgorithmInsertion

	// AlgorithmMerge is top-down merge sort with scratch buffers.
	AlgorithmMerge

	// AlgorithmQuick is Lomuto-partition quick sort.
	AlgorithmQuick
)

// Algorithms lists every runnable algorithm in presentation order.
var Algorithms = []Algorithm{
	AlgorithmBubble,
	AlgorithmSelection,
	AlgorithmInsertion,
	AlgorithmMerge,
	AlgorithmQuick,
}

// String returns the lower-case selector name used on the command line and in config files.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBubble:
		return "bubble"
	case AlgorithmSelection:
		return "selection"
	case AlgorithmInsertion:
		return "insertion"
	case AlgorithmMerge:
		return "merge"
	case AlgorithmQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// Title returns the display name, e.g. "Bubble".
func (a Algorithm) Title() string {
	s := a.String()

	return strings.ToUpper(s[:1]) + s[1:]
}

// Quadratic reports whether the algorithm performs O(n²) comparisons on every input.
func (a Algorithm) Quadratic() bool {
	return a == AlgorithmBubble || a == AlgorithmSelection || a == AlgorithmInsertion
}

// ParseAlgorithm converts a selector name into an Algorithm.
//
// Parameters:
//   - name: Selector name (case-insensitive, surrounding whitespace ignored)
//
// Returns:
//   - Algorithm: Parsed algorithm
//   - error: ErrUnknownAlgorithm wrapped with the offending name
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms {
		if a.String() == normalized {
			return a, nil
		}
	}

	return AlgorithmUnknown, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files can name algorithms.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
