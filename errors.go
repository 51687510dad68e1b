package sortvis

import "github.com/Dyyynamic/sort-visualizer/types"

// Sentinel errors returned by the Session.
//
// These are re-exported from the types package so internal packages and
// callers share the same values.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm selector.
	ErrUnknownAlgorithm = types.ErrUnknownAlgorithm

	// ErrSequenceSourceRequired is returned when WithSource is given a nil source.
	ErrSequenceSourceRequired = types.ErrSequenceSourceRequired

	// ErrAlreadyStarted is returned when Start or Verify is called twice.
	ErrAlreadyStarted = types.ErrAlreadyStarted

	// ErrNotStarted is returned when Wait is called before Start.
	ErrNotStarted = types.ErrNotStarted

	// ErrNotSorted is returned when Verify is called before the completion flag is set.
	ErrNotSorted = types.ErrNotSorted

	// ErrWorkerActive is returned when Verify is called while the sort worker still runs.
	ErrWorkerActive = types.ErrWorkerActive

	// ErrIntegrityViolation is wrapped by every verifier failure.
	ErrIntegrityViolation = types.ErrIntegrityViolation
)

// IntegrityViolationError describes the first inverted adjacent pair.
type IntegrityViolationError = types.IntegrityViolationError

// IsIntegrityViolation reports whether err carries an integrity violation.
func IsIntegrityViolation(err error) (*IntegrityViolationError, bool) {
	return types.IsIntegrityViolation(err)
}
