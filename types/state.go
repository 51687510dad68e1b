package types

import "strings"

// Phase represents the session lifecycle phase.
//
// Phases follow a defined progression during normal operation:
//
//	PhaseIdle → PhaseSorting → PhaseSorted → PhaseVerifying → PhaseVerified
//
// PhaseCancelled and PhaseFailed are terminal.
type Phase int

const (
	// PhaseIdle is the initial phase before any worker has been started.
	PhaseIdle Phase = iota

	// PhaseSorting indicates the algorithm worker is running.
	PhaseSorting

	// PhaseSorted indicates the algorithm worker finished and set the completion flag.
	PhaseSorted

	// PhaseVerifying indicates the verifier is scanning the sequence.
	PhaseVerifying

	// PhaseVerified indicates the verifier found no inverted pair.
	PhaseVerified

	// PhaseCancelled indicates the active worker returned because cancellation was requested.
	PhaseCancelled

	// PhaseFailed indicates the verifier reported an integrity violation.
	PhaseFailed
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSorting:
		return "Sorting"
	case PhaseSorted:
		return "Sorted"
	case PhaseVerifying:
		return "Verifying"
	case PhaseVerified:
		return "Verified"
	case PhaseCancelled:
		return "Cancelled"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Label returns the lower-case form used in metric labels and event payloads,
// matching Algorithm.String().
func (p Phase) Label() string {
	return strings.ToLower(p.String())
}

// Terminal reports whether no further transition can leave the phase.
func (p Phase) Terminal() bool {
	return p == PhaseVerified || p == PhaseCancelled || p == PhaseFailed
}
