package distribute

import "fmt"

// Request is a fluent builder for a single distribution.
//
// Setters return the request for chaining. The first invalid argument is
// latched and reported by Build or Distribute; later setters do not clear it.
// A Request is not safe for concurrent use.
//
// Example:
//
//	groups, err := distribute.NewRequest(players).
//	    UseMethod(distribute.MethodEven).
//	    ForAmountOfGroups(2).
//	    SortBy(func(a, b Player) int { return cmp.Compare(b.Rating, a.Rating) }).
//	    Distribute()
type Request[E any] struct {
	elements []E
	cfg      Config
	compare  func(a, b E) int
	err      error
}

// NewRequest starts a request for elements with the default configuration.
//
// Empty input is latched as ErrInvalidArgument.
func NewRequest[E any](elements []E) *Request[E] {
	r := &Request[E]{elements: elements, cfg: DefaultConfig()}
	if len(elements) == 0 {
		r.fail(fmt.Errorf("%w: empty input", ErrInvalidArgument))
	}

	return r
}

func (r *Request[E]) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// UseMethod sets the distribution method. Default: MethodBestEffort.
func (r *Request[E]) UseMethod(m Method) *Request[E] {
	r.cfg.Method = m
	return r
}

// ForAmountOfGroups sets the number of groups for best-effort and even
// distribution. Non-positive values are latched as ErrInvalidArgument.
func (r *Request[E]) ForAmountOfGroups(n int) *Request[E] {
	if n <= 0 {
		r.fail(fmt.Errorf("%w: amount of groups must be > 0, got %d", ErrInvalidArgument, n))
		return r
	}
	r.cfg.GroupCount = n

	return r
}

// WithMinGroupSize sets the minimum group size.
func (r *Request[E]) WithMinGroupSize(n int) *Request[E] {
	r.cfg.MinGroupSize = n
	return r
}

// WithMaxGroupSize sets the maximum group size.
func (r *Request[E]) WithMaxGroupSize(n int) *Request[E] {
	r.cfg.MaxGroupSize = n
	return r
}

// RetainOrder keeps the input order. This is the default.
func (r *Request[E]) RetainOrder() *Request[E] {
	r.cfg.Sorting = SortRetainOrder
	r.compare = nil

	return r
}

// SortNaturally sorts elements ascending by their natural ordering.
func (r *Request[E]) SortNaturally() *Request[E] {
	r.cfg.Sorting = SortNaturalOrder
	r.compare = nil

	return r
}

// SortReversed sorts elements descending by their natural ordering.
func (r *Request[E]) SortReversed() *Request[E] {
	r.cfg.Sorting = SortNaturalOrderReversed
	r.compare = nil

	return r
}

// SortBy sorts elements ascending by compare. A nil comparator is latched as
// ErrInvalidArgument.
func (r *Request[E]) SortBy(compare func(a, b E) int) *Request[E] {
	if compare == nil {
		r.fail(fmt.Errorf("%w: comparator is required", ErrInvalidArgument))
		return r
	}
	r.cfg.Sorting = SortCustom
	r.compare = compare

	return r
}

// WithConfig replaces the whole configuration, e.g. with one loaded from YAML.
//
// A comparator set with SortBy is kept only if cfg.Sorting is SortCustom.
func (r *Request[E]) WithConfig(cfg Config) *Request[E] {
	r.cfg = cfg
	if cfg.Sorting != SortCustom {
		r.compare = nil
	}

	return r
}

// Config returns the configuration accumulated so far.
func (r *Request[E]) Config() Config {
	return r.cfg
}

// Build validates the request and returns its plan.
//
// Returns:
//   - Plan[E]: Validated plan
//   - error: The latched setter error, or the validation error of the configuration
func (r *Request[E]) Build() (Plan[E], error) {
	if r.err != nil {
		return Plan[E]{}, r.err
	}

	return PlanFromConfig(r.cfg, r.compare)
}

// Distribute builds the plan and distributes the request's elements.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - [][]E: Groups in order
//   - error: Build or distribution error
func (r *Request[E]) Distribute(opts ...Option) ([][]E, error) {
	d := NewDistributor[E](opts...)

	plan, err := r.Build()
	if err != nil {
		d.reject(r.cfg.Method.String(), err)
		return nil, err
	}

	return d.Distribute(r.elements, plan)
}
