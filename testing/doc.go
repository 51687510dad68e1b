// Package testing provides test utilities for sort sessions.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: In-process NATS server for remote observer tests
//   - NewTestLogger: Logger that writes through testing.T
//   - WaitPhase: Block until a session reaches a phase
//
// Example usage:
//
//	import (
//	    "testing"
//	    sortvistest "github.com/Dyyynamic/sort-visualizer/testing"
//	)
//
//	func TestPublisher(t *testing.T) {
//	    _, nc := sortvistest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
