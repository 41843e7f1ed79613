package strategy

import (
	"fmt"

	"github.com/arloliu/distribute/types"
)

// Strategy computes the group layout for a number of elements.
//
// Implementations are value types carrying only the parameters they need, so a
// parameter irrelevant to a strategy cannot be set on it.
type Strategy interface {
	// Method returns the distribution method tag of the strategy.
	Method() types.Method

	// Validate checks the strategy parameters without looking at any input.
	Validate() error

	// Sizes returns the size of each group for n elements, in group order.
	//
	// The sizes always sum to n. Errors wrap types.ErrInvalidArgument or
	// types.ErrUnevenDistribution.
	Sizes(n int) ([]int, error)

	sealed()
}

var (
	_ Strategy = BestEffort{}
	_ Strategy = Even{}
	_ Strategy = Sequential{}
	_ Strategy = Partial{}
)

// FromMethod builds the strategy named by method from flat parameters.
//
// Parameters that are irrelevant to method must be zero: mixing the
// group-count parameters of BestEffort and Even with the size parameters of
// Sequential and Partial is rejected rather than ignored. The returned
// strategy has already been validated.
//
// Parameters:
//   - method: Distribution method tag
//   - groupCount: Number of groups (BestEffort, Even)
//   - minGroupSize: Minimum group size (Partial; accepted and inert for Sequential)
//   - maxGroupSize: Maximum group size (Sequential, Partial)
//
// Returns:
//   - Strategy: Validated strategy
//   - error: types.ErrInvalidArgument for bad parameters, types.ErrUnsupportedStrategy for an unknown method
//
// Example:
//
//	s, err := strategy.FromMethod(types.MethodSequential, 0, 0, 25)
func FromMethod(method types.Method, groupCount, minGroupSize, maxGroupSize int) (Strategy, error) {
	if groupCount < 0 || minGroupSize < 0 || maxGroupSize < 0 {
		return nil, invalidf("group count and group sizes must not be negative")
	}

	var s Strategy
	switch method {
	case types.MethodBestEffort, types.MethodEven:
		if minGroupSize > 0 || maxGroupSize > 0 {
			return nil, invalidf("min/max group size is not supported for %s", method)
		}
		if method == types.MethodEven {
			s = Even{GroupCount: groupCount}
		} else {
			s = BestEffort{GroupCount: groupCount}
		}
	case types.MethodSequential, types.MethodPartial:
		if groupCount != 0 {
			return nil, invalidf("group count is derived and cannot be set for %s", method)
		}
		if method == types.MethodPartial {
			s = Partial{MaxGroupSize: maxGroupSize, MinGroupSize: minGroupSize}
		} else {
			s = Sequential{MaxGroupSize: maxGroupSize, MinGroupSize: minGroupSize}
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedStrategy, method)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
