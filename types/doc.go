// Package types provides core type definitions and interfaces for the sort visualizer.
//
// This package contains shared types that are used across multiple packages in the
// module. By keeping these types in a separate package, we avoid import cycles
// between the root sortvis package and its internal implementations.
//
// Key types:
//   - Algorithm: Sorting algorithm selector
//   - Phase: Session lifecycle phase
//   - Snapshot: Lock-consistent view of a run handed to observers
//   - Observer: Read contract used by render and audio layers
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
