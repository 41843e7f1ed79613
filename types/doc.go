// Package types provides core type definitions and interfaces for the distribute library.
//
// This package contains shared types that are used across multiple packages in the
// distribute library. By keeping these types in a separate package, we avoid import
// cycles between the root distribute package, the strategy package and the adapters.
//
// Key types:
//   - Method: Distribution strategy tag (best effort, even, sequential, partial)
//   - SortingMethod: Pre-sort order applied before partitioning
//   - Report: Summary of a completed distribution
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - Hooks: Callbacks for distribution outcomes
package types
