package types

import "fmt"

// Method selects how elements are mapped to groups.
//
// The zero value is MethodBestEffort.
type Method int

const (
	// MethodBestEffort balances group sizes as evenly as possible over a fixed
	// number of groups. Leading groups absorb the remainder, one element each.
	MethodBestEffort Method = iota

	// MethodEven splits elements over a fixed number of equally sized groups and
	// fails with ErrUnevenDistribution when the element count is not divisible.
	MethodEven

	// MethodSequential fills each group up to the maximum group size before
	// moving to the next group. The group count is derived.
	MethodSequential

	// MethodPartial fills groups like MethodSequential while guaranteeing that
	// every group holds at least the minimum group size.
	MethodPartial
)

var methodNames = map[Method]string{
	MethodBestEffort: "best_effort",
	MethodEven:       "even",
	MethodSequential: "sequential",
	MethodPartial:    "partial",
}

// String returns the snake_case name of the method.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// IsValid reports whether m is one of the known methods.
func (m Method) IsValid() bool {
	_, ok := methodNames[m]
	return ok
}

// ParseMethod converts a method name into a Method.
//
// Parameters:
//   - name: Method name as returned by String (e.g., "best_effort")
//
// Returns:
//   - Method: Parsed method
//   - error: ErrUnsupportedStrategy if the name is unknown
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown distribution method %q", ErrUnsupportedStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStrategy, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
