package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireComplete fails the test unless groups hold exactly the elements of
// input, each occurrence once, in any order.
//
// Parameters:
//   - t: Test handle
//   - input: Elements passed to the distribution
//   - groups: Distribution result
func RequireComplete[E comparable](t testing.TB, input []E, groups [][]E) {
	t.Helper()

	want := make(map[E]int, len(input))
	for _, e := range input {
		want[e]++
	}

	got := make(map[E]int, len(input))
	total := 0
	for _, group := range groups {
		for _, e := range group {
			got[e]++
			total++
		}
	}

	require.Equal(t, len(input), total, "element count differs between input and groups")
	require.Equal(t, want, got, "groups are not a permutation of the input")
}

// RequireSizes fails the test unless the groups have exactly the given sizes.
func RequireSizes[E any](t testing.TB, groups [][]E, sizes ...int) {
	t.Helper()

	got := make([]int, len(groups))
	for i, group := range groups {
		got[i] = len(group)
	}

	require.Equal(t, sizes, got, "group sizes")
}

// Flatten concatenates groups in order.
func Flatten[E any](groups [][]E) []E {
	var out []E
	for _, group := range groups {
		out = append(out, group...)
	}

	return out
}
