package testing

import (
	"testing"

	"github.com/Dyyynamic/sort-visualizer/internal/logging"
	"github.com/Dyyynamic/sort-visualizer/types"
)

// NewTestLogger creates a logger that writes to the testing.T log.
// This is useful for seeing session output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logging.NewTest(t)
}
