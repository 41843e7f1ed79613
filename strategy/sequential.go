package strategy

import "github.com/arloliu/distribute/types"

// Sequential fills each group up to MaxGroupSize before starting the next one.
//
// The group count is derived as ceil(n / MaxGroupSize) and only the last group
// may be smaller than MaxGroupSize.
type Sequential struct {
	// MaxGroupSize is the capacity of each group. Must be > 0.
	MaxGroupSize int

	// MinGroupSize is accepted but has no effect on the layout. Use Partial
	// when a minimum must be enforced.
	MinGroupSize int
}

// NewSequential creates a sequential strategy with the given group capacity.
func NewSequential(maxGroupSize int) Sequential {
	return Sequential{MaxGroupSize: maxGroupSize}
}

// Method returns types.MethodSequential.
func (s Sequential) Method() types.Method { return types.MethodSequential }

// Validate checks that the capacity is positive.
func (s Sequential) Validate() error {
	if s.MaxGroupSize <= 0 {
		return invalidf("max group size must be > 0 for %s, got %d", s.Method(), s.MaxGroupSize)
	}
	if s.MinGroupSize < 0 {
		return invalidf("min group size must not be negative, got %d", s.MinGroupSize)
	}

	return nil
}

// Sizes returns the sequential layout for n elements.
//
// Example:
//
//	sizes, _ := strategy.NewSequential(3).Sizes(10) // [3 3 3 1]
func (s Sequential) Sizes(n int) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := checkElements(n); err != nil {
		return nil, err
	}

	return fill(n, s.MaxGroupSize), nil
}

func (Sequential) sealed() {}

// fill splits n into full groups of capacity followed by one remainder group.
func fill(n, capacity int) []int {
	count := (n + capacity - 1) / capacity
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = capacity
	}
	sizes[count-1] = n - capacity*(count-1)

	return sizes
}
