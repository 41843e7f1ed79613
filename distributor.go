package distribute

import (
	"fmt"
	"slices"
	"time"

	"github.com/arloliu/distribute/internal/hooks"
	"github.com/arloliu/distribute/internal/logger"
	"github.com/arloliu/distribute/internal/metrics"
	"github.com/arloliu/distribute/types"
)

// Distributor applies plans to input slices.
//
// A Distributor holds only its options and no per-call state, so one value may
// be shared by several goroutines as long as the configured logger, metrics
// collector and hooks are safe for concurrent use.
type Distributor[E any] struct {
	logger  Logger
	metrics MetricsCollector
	hooks   Hooks
}

// NewDistributor creates a distributor.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Distributor[E]: Distributor with no-op defaults for unset options
//
// Example:
//
//	d := distribute.NewDistributor[string](
//	    distribute.WithLogger(logging.NewSlogDefault()),
//	)
//	groups, err := d.Distribute(names, plan)
func NewDistributor[E any](opts ...Option) *Distributor[E] {
	o := distributorOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Distributor[E]{
		logger:  o.logger,
		metrics: o.metrics,
		hooks:   hooks.Resolve(o.hooks),
	}
	if d.logger == nil {
		d.logger = logger.NewNop()
	}
	if d.metrics == nil {
		d.metrics = metrics.NewNop()
	}

	return d
}

// Distribute partitions elements into groups according to plan.
//
// The algorithm:
//  1. Reject empty input and plans without a strategy
//  2. Compute the group sizes from the element count
//  3. Sort a copy of the elements by the plan's sorting method
//  4. Slice the sorted copy into groups, in order
//
// The caller's slice is never modified and the returned groups do not alias it.
// On failure no partial result is returned.
//
// Parameters:
//   - elements: Non-empty input
//   - plan: Validated plan
//
// Returns:
//   - [][]E: Groups in order; their concatenation is the sorted input
//   - error: Wraps ErrInvalidArgument, ErrUnevenDistribution or ErrUnsupportedStrategy
//
// Example:
//
//	plan, _ := distribute.PlanFromConfig[int](distribute.Config{GroupCount: 5}, nil)
//	groups, _ := d.Distribute([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, plan)
//	// groups: [[0 1] [2 3] [4 5] [6 7] [8]]
func (d *Distributor[E]) Distribute(elements []E, plan Plan[E]) ([][]E, error) {
	start := time.Now()

	method, ok := plan.Method()
	label := "unknown"
	if ok {
		label = method.String()
	}

	groups, sizes, err := d.distribute(elements, plan)
	if err != nil {
		d.reject(label, err)
		return nil, err
	}

	report := Report{
		Method:   method,
		Sorting:  plan.Sorting(),
		Elements: len(elements),
		Sizes:    sizes,
		Duration: time.Since(start),
	}

	d.logger.Debug("distribution completed",
		"method", label,
		"sorting", report.Sorting.String(),
		"elements", report.Elements,
		"groups", report.Groups(),
	)
	d.metrics.RecordDistribution(label, report.Elements, report.Groups(), report.Duration.Seconds())
	d.hooks.OnDistributed(report)

	return groups, nil
}

// reject reports a failed distribution to the logger, metrics and hooks.
func (d *Distributor[E]) reject(method string, err error) {
	kind := types.ErrorKind(err)
	d.logger.Debug("distribution rejected", "method", method, "kind", kind, "error", err)
	d.metrics.RecordDistributionError(method, kind)
	d.hooks.OnRejected(err)
}

func (d *Distributor[E]) distribute(elements []E, plan Plan[E]) ([][]E, []int, error) {
	if len(elements) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrInvalidArgument)
	}
	if plan.strategy == nil {
		return nil, nil, fmt.Errorf("%w: plan has no strategy", ErrInvalidArgument)
	}
	if !plan.strategy.Method().IsValid() {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedStrategy, plan.strategy.Method())
	}

	sizes, err := plan.strategy.Sizes(len(elements))
	if err != nil {
		return nil, nil, err
	}

	sorted := slices.Clone(elements)
	if err := plan.sortElements(sorted); err != nil {
		return nil, nil, err
	}

	return split(sorted, sizes), sizes, nil
}

// split cuts elements into consecutive groups of the given sizes. Each group
// has its capacity clipped so appending to one group cannot overwrite the next.
func split[E any](elements []E, sizes []int) [][]E {
	groups := make([][]E, len(sizes))
	offset := 0
	for i, size := range sizes {
		end := offset + size
		groups[i] = elements[offset:end:end]
		offset = end
	}

	return groups
}

// Distribute partitions elements with a distributor that has default options.
//
// Parameters:
//   - elements: Non-empty input
//   - plan: Validated plan
//   - opts: Optional dependencies for this call
//
// Returns:
//   - [][]E: Groups in order
//   - error: Wraps ErrInvalidArgument, ErrUnevenDistribution or ErrUnsupportedStrategy
func Distribute[E any](elements []E, plan Plan[E], opts ...Option) ([][]E, error) {
	return NewDistributor[E](opts...).Distribute(elements, plan)
}
