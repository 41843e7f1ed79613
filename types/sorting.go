package types

import "fmt"

// SortingMethod selects the order elements are put in before partitioning.
//
// The zero value is SortRetainOrder.
type SortingMethod int

const (
	// SortRetainOrder keeps the input iteration order.
	SortRetainOrder SortingMethod = iota

	// SortNaturalOrder sorts ascending by the elements' natural ordering.
	SortNaturalOrder

	// SortNaturalOrderReversed sorts descending by the elements' natural ordering.
	SortNaturalOrderReversed

	// SortCustom sorts ascending by a caller-supplied comparator.
	SortCustom
)

var sortingNames = map[SortingMethod]string{
	SortRetainOrder:          "retain_order",
	SortNaturalOrder:         "natural_order",
	SortNaturalOrderReversed: "natural_order_reversed",
	SortCustom:               "custom",
}

// String returns the snake_case name of the sorting method.
func (s SortingMethod) String() string {
	if name, ok := sortingNames[s]; ok {
		return name
	}

	return fmt.Sprintf("SortingMethod(%d)", int(s))
}

// IsValid reports whether s is one of the known sorting methods.
func (s SortingMethod) IsValid() bool {
	_, ok := sortingNames[s]
	return ok
}

// ParseSortingMethod converts a sorting method name into a SortingMethod.
//
// Returns ErrInvalidArgument if the name is unknown.
func ParseSortingMethod(name string) (SortingMethod, error) {
	for s, n := range sortingNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown sorting method %q", ErrInvalidArgument, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s SortingMethod) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SortingMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseSortingMethod(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
