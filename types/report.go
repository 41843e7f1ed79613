package types

import "time"

// Report summarizes a successful distribution.
type Report struct {
	// Method is the strategy that produced the groups.
	Method Method

	// Sorting is the pre-sort order that was applied.
	Sorting SortingMethod

	// Elements is the number of input elements.
	Elements int

	// Sizes holds the size of each output group, in group order.
	Sizes []int

	// Duration is the wall time spent sorting and partitioning.
	Duration time.Duration
}

// Groups returns the number of output groups.
func (r Report) Groups() int {
	return len(r.Sizes)
}
