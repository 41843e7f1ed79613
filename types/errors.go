package types

import "errors"

// Sentinel errors for the distribute library.
//
// Every failure returned by the engine wraps exactly one of these errors, so
// callers branch with errors.Is. Context is added with fmt.Errorf("%w: ...", ...).
var (
	// ErrInvalidArgument is returned for empty input, missing or incompatible
	// configuration fields, non-comparable elements under natural ordering, and
	// a custom sort without a comparator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnevenDistribution is returned by the even strategy when the element
	// count is not divisible by the group count.
	ErrUnevenDistribution = errors.New("elements cannot be evenly distributed")

	// ErrUnsupportedStrategy is returned when a distribution method outside the
	// known set reaches dispatch.
	ErrUnsupportedStrategy = errors.New("unsupported distribution strategy")
)

// Error kind labels returned by ErrorKind.
const (
	KindInvalidArgument     = "invalid_argument"
	KindUnevenDistribution  = "uneven_distribution"
	KindUnsupportedStrategy = "unsupported_strategy"
	KindUnknown             = "unknown"
)

// ErrorKind classifies err into a stable label suitable for metrics and logs.
//
// Parameters:
//   - err: The error to classify
//
// Returns:
//   - string: One of the Kind* constants, or "" for a nil error
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnevenDistribution):
		return KindUnevenDistribution
	case errors.Is(err, ErrUnsupportedStrategy):
		return KindUnsupportedStrategy
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
