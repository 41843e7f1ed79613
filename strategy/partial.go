package strategy

import "github.com/arloliu/distribute/types"

// Partial fills groups sequentially like Sequential and guarantees that every
// group holds at least MinGroupSize elements.
//
// An undersized trailing group is merged into its predecessor, repeatedly, so
// the last group may grow past MaxGroupSize. A MinGroupSize above
// MaxGroupSize is rejected by Validate instead of collapsing every group into
// one.
type Partial struct {
	// MaxGroupSize is the fill capacity of each group. Must be > 0.
	MaxGroupSize int

	// MinGroupSize is the smallest allowed group (0 means 1). Must not exceed
	// MaxGroupSize.
	MinGroupSize int
}

// NewPartial creates a partial strategy.
//
// Parameters:
//   - maxGroupSize: Fill capacity of each group
//   - minGroupSize: Minimum size of every group (0 defaults to 1)
//
// Returns:
//   - Partial: The strategy value
func NewPartial(maxGroupSize, minGroupSize int) Partial {
	return Partial{MaxGroupSize: maxGroupSize, MinGroupSize: minGroupSize}
}

// Method returns types.MethodPartial.
func (p Partial) Method() types.Method { return types.MethodPartial }

// Validate checks the capacity and the minimum.
//
// A minimum above the capacity is rejected: full groups would already be
// below the minimum and no merging of the trailing group could fix them.
func (p Partial) Validate() error {
	if p.MaxGroupSize <= 0 {
		return invalidf("max group size must be > 0 for %s, got %d", p.Method(), p.MaxGroupSize)
	}
	if p.MinGroupSize < 0 {
		return invalidf("min group size must not be negative, got %d", p.MinGroupSize)
	}
	if p.MinGroupSize > p.MaxGroupSize {
		return invalidf("min group size %d exceeds max group size %d", p.MinGroupSize, p.MaxGroupSize)
	}

	return nil
}

// Sizes returns the partial layout for n elements.
//
// The algorithm:
//  1. Compute the sequential layout for MaxGroupSize
//  2. While more than one group remains and the last group is below the
//     minimum, merge the last group into its predecessor
//
// When n is below the minimum the result is a single group of n elements.
//
// Example:
//
//	sizes, _ := strategy.NewPartial(3, 2).Sizes(10) // [3 3 4]
func (p Partial) Sizes(n int) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkElements(n); err != nil {
		return nil, err
	}

	minSize := max(p.MinGroupSize, 1)
	sizes := fill(n, p.MaxGroupSize)
	for len(sizes) > 1 && sizes[len(sizes)-1] < minSize {
		last := len(sizes) - 1
		sizes[last-1] += sizes[last]
		sizes = sizes[:last]
	}

	return sizes, nil
}

func (Partial) sealed() {}
