// Package strategy provides the built-in distribution strategies.
//
// A strategy decides how many groups a distribution produces and how many
// elements land in each group. Strategies never look at element values; they
// only turn an element count into a list of group sizes, which the engine then
// fills with elements in order. The package includes four strategies:
//
//   - BestEffort: Fixed group count, sizes differ by at most one (leading groups are larger)
//   - Even: Fixed group count, all sizes equal, fails when the count does not divide
//   - Sequential: Fixed group capacity, groups are filled one after another
//   - Partial: Sequential filling with a guaranteed minimum size for every group
//
// # Strategy Selection Guide
//
// BestEffort:
//   - Use when the number of groups is fixed (e.g., one group per worker)
//   - Guarantees balance within one element
//   - Configuration: group count, optional per-group cap
//
// Even:
//   - Use when groups must be exactly equal and a mismatch is a data error
//   - Configuration: group count
//
// Sequential:
//   - Use for batching (e.g., at most 25 items per request)
//   - The last group may be smaller than the others
//   - Configuration: maximum group size
//
// Partial:
//   - Use for batching where tiny trailing batches are undesirable
//   - A short trailing group is merged into its predecessor, so a merged group
//     may exceed the maximum group size
//   - Configuration: maximum group size, minimum group size (default 1)
//
// The set of strategies is closed: Strategy has an unexported method and can
// only be satisfied by the types in this package.
package strategy
