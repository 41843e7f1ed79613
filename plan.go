package distribute

import (
	"fmt"

	"github.com/arloliu/distribute/internal/natural"
	"github.com/arloliu/distribute/strategy"
)

// Plan is an immutable, validated description of a distribution of E values.
//
// Build a Plan with NewPlan, PlanFromConfig or Request.Build. The zero Plan has
// no strategy and is rejected by Distribute.
type Plan[E any] struct {
	strategy strategy.Strategy
	sorting  SortingMethod

	// custom is the caller comparator, set only for SortCustom.
	custom func(a, b E) int

	// natural is the resolved natural ordering, set for the natural sorting
	// methods when it can be resolved from the type alone.
	natural func(a, b E) int
}

// NewPlan creates a plan from a typed strategy.
//
// Parameters:
//   - s: Distribution strategy (e.g., strategy.NewSequential(25))
//   - sorting: Pre-sort order
//   - compare: Comparator for SortCustom; must be nil for every other sorting method
//
// Returns:
//   - Plan[E]: Validated plan
//   - error: ErrInvalidArgument for a nil or invalid strategy, an unknown sorting
//     method, a missing or superfluous comparator, or an E without natural ordering
//
// Example:
//
//	plan, err := distribute.NewPlan(strategy.NewEven(4), distribute.SortCustom,
//	    func(a, b Job) int { return cmp.Compare(a.Priority, b.Priority) })
func NewPlan[E any](s strategy.Strategy, sorting SortingMethod, compare func(a, b E) int) (Plan[E], error) {
	if s == nil {
		return Plan[E]{}, fmt.Errorf("%w: strategy is required", ErrInvalidArgument)
	}
	if err := s.Validate(); err != nil {
		return Plan[E]{}, err
	}

	p := Plan[E]{strategy: s, sorting: sorting}

	switch sorting {
	case SortRetainOrder:
	case SortNaturalOrder, SortNaturalOrderReversed:
		if !natural.Dynamic[E]() {
			cmpFn, err := natural.Comparator[E](nil)
			if err != nil {
				return Plan[E]{}, fmt.Errorf("%w: %s requires ordered elements: %w", ErrInvalidArgument, sorting, err)
			}
			p.natural = cmpFn
		}
	case SortCustom:
		if compare == nil {
			return Plan[E]{}, fmt.Errorf("%w: %s requires a comparator", ErrInvalidArgument, sorting)
		}
		p.custom = compare
	default:
		return Plan[E]{}, fmt.Errorf("%w: unknown sorting method %s", ErrInvalidArgument, sorting)
	}

	if compare != nil && sorting != SortCustom {
		return Plan[E]{}, fmt.Errorf("%w: comparator is only used with %s, got %s", ErrInvalidArgument, SortCustom, sorting)
	}

	return p, nil
}

// PlanFromConfig creates a plan from a flat Config.
//
// Parameters:
//   - cfg: Distribution configuration
//   - compare: Comparator for cfg.Sorting == SortCustom, nil otherwise
//
// Returns:
//   - Plan[E]: Validated plan
//   - error: Wraps ErrInvalidArgument or ErrUnsupportedStrategy
func PlanFromConfig[E any](cfg Config, compare func(a, b E) int) (Plan[E], error) {
	s, err := cfg.Strategy()
	if err != nil {
		return Plan[E]{}, err
	}

	return NewPlan(s, cfg.Sorting, compare)
}

// Strategy returns the plan's distribution strategy (nil for the zero Plan).
func (p Plan[E]) Strategy() strategy.Strategy {
	return p.strategy
}

// Method returns the distribution method and false for the zero Plan.
func (p Plan[E]) Method() (Method, bool) {
	if p.strategy == nil {
		return 0, false
	}

	return p.strategy.Method(), true
}

// Sorting returns the plan's pre-sort order.
func (p Plan[E]) Sorting() SortingMethod {
	return p.sorting
}
