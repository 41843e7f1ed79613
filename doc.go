// Package distribute partitions an ordered collection of elements into groups.
//
// A distribution is described by a Plan: a distribution strategy (how many
// groups, how large), a sorting method applied before partitioning, and for
// custom sorting a comparator. A Distributor applies a plan to an input slice
// and returns the groups, or a typed error. Every input element ends up in
// exactly one group and elements keep their (sorted) order within and across
// groups.
//
// # Quick Start
//
// Fluent request, close to a one-liner:
//
//	groups, err := distribute.NewRequest(items).
//	    UseMethod(distribute.MethodBestEffort).
//	    ForAmountOfGroups(3).
//	    Distribute()
//
// Configuration loaded from YAML:
//
//	cfg, err := distribute.ParseConfig([]byte("method: sequential\nmaxGroupSize: 25\n"))
//	plan, err := distribute.PlanFromConfig[string](cfg, nil)
//	groups, err := distribute.Distribute(items, plan)
//
// Typed strategies, where irrelevant parameters cannot be expressed:
//
//	plan, err := distribute.NewPlan[int](strategy.NewPartial(10, 3), distribute.SortNaturalOrder, nil)
//
// # Distribution Methods
//
//   - MethodBestEffort: groupCount groups, sizes differ by at most one
//   - MethodEven: groupCount equal groups, ErrUnevenDistribution otherwise
//   - MethodSequential: groups of maxGroupSize, the last one may be shorter
//   - MethodPartial: like sequential, short trailing groups merge backward
//     until every group has at least minGroupSize elements
//
// # Sorting Methods
//
//   - SortRetainOrder: input order (default)
//   - SortNaturalOrder / SortNaturalOrderReversed: ordered Go kinds or types
//     with a Compare(T) int method; ErrInvalidArgument otherwise
//   - SortCustom: caller comparator
//
// Sorting is stable and works on a copy: the caller's slice is never modified
// and returned groups never alias it.
//
// # Errors
//
// All failures wrap ErrInvalidArgument, ErrUnevenDistribution or
// ErrUnsupportedStrategy. Use errors.Is to tell "the plan is misconfigured"
// apart from "this plan does not fit this data".
//
// See the examples/ directory for a complete working example.
package distribute
