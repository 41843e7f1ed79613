package strategy

import "github.com/arloliu/distribute/types"

// BestEffort distributes elements over a fixed number of groups as evenly as
// possible, without requiring equal sizes.
type BestEffort struct {
	// GroupCount is the number of output groups. Must be > 0.
	GroupCount int

	// MaxGroupSize optionally caps the size of the largest group (0 = no cap).
	// The cap is only checked; the group count is never changed to satisfy it.
	MaxGroupSize int
}

// BestEffortOption configures a BestEffort strategy.
type BestEffortOption func(*BestEffort)

// NewBestEffort creates a best-effort strategy.
//
// Parameters:
//   - groupCount: Number of groups to distribute over
//   - opts: Optional configuration (WithGroupCap)
//
// Returns:
//   - BestEffort: The strategy value
//
// Example:
//
//	s := strategy.NewBestEffort(5, strategy.WithGroupCap(10))
func NewBestEffort(groupCount int, opts ...BestEffortOption) BestEffort {
	be := BestEffort{GroupCount: groupCount}
	for _, opt := range opts {
		opt(&be)
	}

	return be
}

// WithGroupCap sets the maximum size any single group may reach.
//
// Parameters:
//   - size: Maximum group size (0 disables the check)
//
// Returns:
//   - BestEffortOption: Configuration option
func WithGroupCap(size int) BestEffortOption {
	return func(be *BestEffort) {
		be.MaxGroupSize = size
	}
}

// Method returns types.MethodBestEffort.
func (be BestEffort) Method() types.Method { return types.MethodBestEffort }

// Validate checks that the group count is positive and the cap is not negative.
func (be BestEffort) Validate() error {
	if be.GroupCount <= 0 {
		return invalidf("group count must be > 0 for %s, got %d", be.Method(), be.GroupCount)
	}
	if be.MaxGroupSize < 0 {
		return invalidf("max group size must not be negative, got %d", be.MaxGroupSize)
	}

	return nil
}

// Sizes calculates group sizes using best-effort balancing.
//
// The algorithm:
//  1. q = n / groupCount, r = n % groupCount
//  2. The first r groups get q+1 elements, the remaining groups get q
//
// When groupCount > n the trailing groups are empty.
//
// Example:
//
//	sizes, _ := strategy.NewBestEffort(5).Sizes(9) // [2 2 2 2 1]
func (be BestEffort) Sizes(n int) ([]int, error) {
	if err := be.Validate(); err != nil {
		return nil, err
	}
	if err := checkElements(n); err != nil {
		return nil, err
	}

	perGroup := n / be.GroupCount
	remaining := n % be.GroupCount

	largest := perGroup
	if remaining > 0 {
		largest++
	}
	if be.MaxGroupSize > 0 && largest > be.MaxGroupSize {
		return nil, invalidf("group size %d exceeds max group size %d", largest, be.MaxGroupSize)
	}

	sizes := make([]int, be.GroupCount)
	for i := range sizes {
		sizes[i] = perGroup
		if i < remaining {
			sizes[i]++
		}
	}

	return sizes, nil
}

func (BestEffort) sealed() {}
