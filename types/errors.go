package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sort visualizer.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Cancellation is deliberately absent: a cancelled run is an expected termination
// path reported through Phase and Result, never through an error value.

// Session errors - Public API errors returned by the Session.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownAlgorithm is returned when an algorithm selector is not recognized.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrSequenceSourceRequired is returned when the sequence source is nil.
	ErrSequenceSourceRequired = errors.New("sequence source is required")

	// ErrAlreadyStarted is returned when Start is called on a session that already ran a sort.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrNotStarted is returned when operations require a started session.
	ErrNotStarted = errors.New("session not started")

	// ErrNotSorted is returned when verification is requested before the completion flag is set.
	ErrNotSorted = errors.New("sort has not completed")

	// ErrWorkerActive is returned when a second worker is requested while one is running.
	ErrWorkerActive = errors.New("a worker is already active")
)

// Verifier errors.
var (
	// ErrIntegrityViolation is returned when the verifier finds an inverted adjacent pair.
	ErrIntegrityViolation = errors.New("integrity violation")
)

// IntegrityViolationError describes the first inverted adjacent pair found by the verifier.
//
// It indicates a defect in a worker or in the locking discipline, not a user error.
// errors.Is(err, ErrIntegrityViolation) reports true for it.
type IntegrityViolationError struct {
	// Index is the position i where element[i] < element[i-1].
	Index int

	// Previous is element[i-1].
	Previous int

	// Current is element[i].
	Current int
}

// Error implements the error interface.
func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("%s: element[%d]=%d is less than element[%d]=%d",
		ErrIntegrityViolation.Error(), e.Index, e.Current, e.Index-1, e.Previous)
}

// Unwrap returns ErrIntegrityViolation.
func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// IsIntegrityViolation checks whether err carries an integrity violation.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *IntegrityViolationError: The violation details, nil when err is not a violation
//   - bool: true if err wraps an IntegrityViolationError
func IsIntegrityViolation(err error) (*IntegrityViolationError, bool) {
	var violation *IntegrityViolationError
	if errors.As(err, &violation) {
		return violation, true
	}

	return nil, false
}
