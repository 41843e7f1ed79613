// Package metrics provides the default no-op metrics collector.
package metrics

import "github.com/arloliu/distribute/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Used when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordDistribution discards the distribution metric.
func (n *NopMetrics) RecordDistribution(_ /* method */ string, _ /* elements */, _ /* groups */ int, _ /* duration */ float64) {
	// No-op
}

// RecordDistributionError discards the rejection metric.
func (n *NopMetrics) RecordDistributionError(_ /* method */, _ /* kind */ string) {
	// No-op
}
