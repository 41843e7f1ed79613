package distribute

import (
	"fmt"
	"slices"

	"github.com/arloliu/distribute/internal/natural"
)

// sortElements orders elements in place according to the plan.
//
// Sorting is stable, so equal elements keep their input order under every
// method, including the reversed natural order.
func (p Plan[E]) sortElements(elements []E) error {
	switch p.sorting {
	case SortRetainOrder:
		return nil
	case SortNaturalOrder, SortNaturalOrderReversed:
		compare, err := p.naturalComparator(elements)
		if err != nil {
			return err
		}
		if p.sorting == SortNaturalOrderReversed {
			slices.SortStableFunc(elements, func(a, b E) int { return compare(b, a) })
		} else {
			slices.SortStableFunc(elements, compare)
		}

		return nil
	case SortCustom:
		if p.custom == nil {
			return fmt.Errorf("%w: %s requires a comparator", ErrInvalidArgument, p.sorting)
		}
		slices.SortStableFunc(elements, p.custom)

		return nil
	default:
		return fmt.Errorf("%w: unknown sorting method %s", ErrInvalidArgument, p.sorting)
	}
}

func (p Plan[E]) naturalComparator(elements []E) (func(a, b E) int, error) {
	if p.natural != nil {
		return p.natural, nil
	}

	compare, err := natural.Comparator(elements)
	if err != nil {
		return nil, fmt.Errorf("%w: %s requires ordered elements: %w", ErrInvalidArgument, p.sorting, err)
	}

	return compare, nil
}
