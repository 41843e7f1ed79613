package strategy

import (
	"fmt"

	"github.com/arloliu/distribute/types"
)

// Even distributes elements over a fixed number of equally sized groups.
type Even struct {
	// GroupCount is the number of output groups. Must be > 0.
	GroupCount int
}

// NewEven creates an even strategy for groupCount groups.
func NewEven(groupCount int) Even {
	return Even{GroupCount: groupCount}
}

// Method returns types.MethodEven.
func (e Even) Method() types.Method { return types.MethodEven }

// Validate checks that the group count is positive.
func (e Even) Validate() error {
	if e.GroupCount <= 0 {
		return invalidf("group count must be > 0 for %s, got %d", e.Method(), e.GroupCount)
	}

	return nil
}

// Sizes returns groupCount sizes of n / groupCount each.
//
// Returns an error wrapping types.ErrUnevenDistribution when n is not a
// multiple of the group count.
func (e Even) Sizes(n int) ([]int, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := checkElements(n); err != nil {
		return nil, err
	}

	if n%e.GroupCount != 0 {
		return nil, fmt.Errorf("%w: %d elements over %d groups", types.ErrUnevenDistribution, n, e.GroupCount)
	}

	sizes := make([]int, e.GroupCount)
	for i := range sizes {
		sizes[i] = n / e.GroupCount
	}

	return sizes, nil
}

func (Even) sealed() {}
