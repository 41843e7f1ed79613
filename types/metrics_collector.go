package types

// MetricsCollector defines methods for recording distribution metrics.
//
// Implementations should be non-blocking. A single collector may be shared by
// distributors used from several goroutines, so methods must be thread-safe.
type MetricsCollector interface {
	// RecordDistribution records a successful distribution.
	//
	// Parameters:
	//   - method: Distribution method name (e.g., "best_effort")
	//   - elements: Number of input elements
	//   - groups: Number of output groups
	//   - duration: Time taken in seconds
	RecordDistribution(method string, elements, groups int, duration float64)

	// RecordDistributionError records a rejected distribution.
	//
	// Parameters:
	//   - method: Distribution method name
	//   - kind: Error kind label as returned by ErrorKind
	RecordDistributionError(method, kind string)
}
