package distribute

import "github.com/arloliu/distribute/types"

// Sentinel errors returned by the distribution engine.
//
// Errors are deterministic functions of the input and the plan: retrying a
// failed call with the same arguments fails the same way.
var (
	// ErrInvalidArgument is returned for empty input and for bad or
	// incompatible configuration.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrUnevenDistribution is returned by the even method when the element
	// count is not a multiple of the group count.
	ErrUnevenDistribution = types.ErrUnevenDistribution

	// ErrUnsupportedStrategy is returned when an unknown method reaches dispatch.
	ErrUnsupportedStrategy = types.ErrUnsupportedStrategy
)
