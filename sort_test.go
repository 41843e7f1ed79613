package distribute

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/distribute/strategy"
	distributetest "github.com/arloliu/distribute/testing"
)

type version struct {
	major, minor int
}

func (v version) Compare(o version) int {
	if c := cmp.Compare(v.major, o.major); c != 0 {
		return c
	}

	return cmp.Compare(v.minor, o.minor)
}

// ticket orders by rank only, so tickets of equal rank are distinguishable ties.
type ticket struct {
	id   string
	rank int
}

func (t ticket) Compare(o ticket) int {
	return cmp.Compare(t.rank, o.rank)
}

// countdown is an int whose natural ordering runs backwards.
type countdown int

func (c countdown) Compare(o countdown) int {
	return cmp.Compare(o, c)
}

func TestSort_NaturalOrder(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		groups, err := Distribute([]int{7, 3, 9, 1, 5, 2}, mustPlan[int](t, strategy.NewEven(3), SortNaturalOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]int{{1, 2}, {3, 5}, {7, 9}}, groups)
	})

	t.Run("descending", func(t *testing.T) {
		groups, err := Distribute([]string{"b", "d", "a", "c"}, mustPlan[string](t, strategy.NewSequential(3), SortNaturalOrderReversed, nil))

		require.NoError(t, err)
		require.Equal(t, [][]string{{"d", "c", "b"}, {"a"}}, groups)
	})

	t.Run("Compare method", func(t *testing.T) {
		input := []version{{2, 1}, {1, 0}, {2, 0}, {1, 9}}

		groups, err := Distribute(input, mustPlan[version](t, strategy.NewBestEffort(2), SortNaturalOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]version{{{1, 0}, {1, 9}}, {{2, 0}, {2, 1}}}, groups)
	})

	t.Run("interface elements resolved at distribution time", func(t *testing.T) {
		plan := mustPlan[any](t, strategy.NewSequential(2), SortNaturalOrder, nil)

		groups, err := Distribute([]any{3, 1, 2}, plan)
		require.NoError(t, err)
		require.Equal(t, [][]any{{1, 2}, {3}}, groups)

		_, err = Distribute([]any{3, "one"}, plan)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("reversed keeps equal elements in input order", func(t *testing.T) {
		input := []ticket{{"a", 1}, {"b", 2}, {"c", 1}, {"d", 2}}

		groups, err := Distribute(input, mustPlan[ticket](t, strategy.NewSequential(4), SortNaturalOrderReversed, nil))

		require.NoError(t, err)
		require.Equal(t, [][]ticket{{{"b", 2}, {"d", 2}, {"a", 1}, {"c", 1}}}, groups)
	})

	t.Run("ascending keeps equal elements in input order", func(t *testing.T) {
		input := []ticket{{"a", 2}, {"b", 1}, {"c", 2}, {"d", 1}}

		groups, err := Distribute(input, mustPlan[ticket](t, strategy.NewSequential(4), SortNaturalOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]ticket{{{"b", 1}, {"d", 1}, {"a", 2}, {"c", 2}}}, groups)
	})

	t.Run("Compare method wins for interface elements", func(t *testing.T) {
		typed, err := Distribute([]countdown{1, 3, 2}, mustPlan[countdown](t, strategy.NewSequential(3), SortNaturalOrder, nil))
		require.NoError(t, err)
		require.Equal(t, [][]countdown{{3, 2, 1}}, typed)

		boxed, err := Distribute([]any{countdown(1), countdown(3), countdown(2)}, mustPlan[any](t, strategy.NewSequential(3), SortNaturalOrder, nil))
		require.NoError(t, err)
		require.Equal(t, [][]any{{countdown(3), countdown(2), countdown(1)}}, boxed)
	})

	t.Run("custom comparator keeps equal elements in input order", func(t *testing.T) {
		input := []job{{"a", 1}, {"b", 2}, {"c", 1}, {"d", 2}}
		byPriority := func(x, y job) int { return cmp.Compare(x.priority, y.priority) }

		plan := mustPlan[job](t, strategy.NewSequential(4), SortCustom, func(x, y job) int { return byPriority(y, x) })
		groups, err := Distribute(input, plan)

		require.NoError(t, err)
		require.Equal(t, []job{{"b", 2}, {"d", 2}, {"a", 1}, {"c", 1}}, groups[0])
	})
}

func TestSort_Custom(t *testing.T) {
	byLength := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
	input := []string{"ccc", "a", "bb", "dddd", "e"}

	groups, err := Distribute(input, mustPlan[string](t, strategy.NewPartial(2, 2), SortCustom, byLength))

	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "e"}, {"bb", "ccc", "dddd"}}, groups)
}

func TestSort_Idempotent(t *testing.T) {
	input := strings.Fields("pear fig apple kiwi banana fig cherry date")
	plan := mustPlan[string](t, strategy.NewBestEffort(3), SortNaturalOrder, nil)

	first, err := Distribute(input, plan)
	require.NoError(t, err)

	second, err := Distribute(distributetest.Flatten(first), plan)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, Fingerprint(first, nil), Fingerprint(second, nil))
}
