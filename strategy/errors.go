package strategy

import (
	"fmt"

	"github.com/arloliu/distribute/types"
)

// invalidf wraps types.ErrInvalidArgument with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", types.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// checkElements rejects an empty or negative element count.
func checkElements(n int) error {
	if n <= 0 {
		return invalidf("element count must be > 0, got %d", n)
	}

	return nil
}
