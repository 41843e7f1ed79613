package distribute

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/distribute/strategy"
	distributetest "github.com/arloliu/distribute/testing"
)

func testElements(n int) []int {
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}

	return elements
}

func mustPlan[E any](t *testing.T, s strategy.Strategy, sorting SortingMethod, compare func(a, b E) int) Plan[E] {
	t.Helper()

	plan, err := NewPlan(s, sorting, compare)
	require.NoError(t, err)

	return plan
}

func TestDistributor_BestEffort(t *testing.T) {
	t.Run("even amount of elements", func(t *testing.T) {
		elements := testElements(10)

		groups, err := Distribute(elements, mustPlan[int](t, strategy.NewBestEffort(2), SortRetainOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}}, groups)
	})

	t.Run("uneven amount of elements", func(t *testing.T) {
		elements := testElements(9)

		groups, err := Distribute(elements, mustPlan[int](t, strategy.NewBestEffort(5), SortRetainOrder, nil))

		require.NoError(t, err)
		distributetest.RequireSizes(t, groups, 2, 2, 2, 2, 1)
		require.Equal(t, elements, distributetest.Flatten(groups))
	})

	t.Run("more groups than elements", func(t *testing.T) {
		groups, err := Distribute([]string{"a", "b"}, mustPlan[string](t, strategy.NewBestEffort(3), SortRetainOrder, nil))

		require.NoError(t, err)
		distributetest.RequireSizes(t, groups, 1, 1, 0)
		require.NotNil(t, groups[2])
	})

	t.Run("cap exceeded", func(t *testing.T) {
		plan := mustPlan[int](t, strategy.NewBestEffort(2, strategy.WithGroupCap(4)), SortRetainOrder, nil)

		groups, err := Distribute(testElements(10), plan)

		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, groups)
	})
}

func TestDistributor_Even(t *testing.T) {
	t.Run("divisible", func(t *testing.T) {
		groups, err := Distribute(testElements(10), mustPlan[int](t, strategy.NewEven(2), SortRetainOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}}, groups)
	})

	t.Run("not divisible", func(t *testing.T) {
		groups, err := Distribute(testElements(9), mustPlan[int](t, strategy.NewEven(2), SortRetainOrder, nil))

		require.ErrorIs(t, err, ErrUnevenDistribution)
		require.NotErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, groups)
	})
}

func TestDistributor_Sequential(t *testing.T) {
	groups, err := Distribute(testElements(10), mustPlan[int](t, strategy.NewSequential(3), SortRetainOrder, nil))

	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9}}, groups)
}

func TestDistributor_Partial(t *testing.T) {
	t.Run("trailing group merges backward", func(t *testing.T) {
		groups, err := Distribute(testElements(10), mustPlan[int](t, strategy.NewPartial(3, 2), SortRetainOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8, 9}}, groups)
		for _, group := range groups {
			require.GreaterOrEqual(t, len(group), 2)
		}
	})

	t.Run("input below minimum is one group", func(t *testing.T) {
		groups, err := Distribute(testElements(3), mustPlan[int](t, strategy.NewPartial(5, 4), SortRetainOrder, nil))

		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1, 2}}, groups)
	})
}

func TestDistributor_EmptyInput(t *testing.T) {
	strategies := []strategy.Strategy{
		strategy.NewBestEffort(2),
		strategy.NewEven(2),
		strategy.NewSequential(3),
		strategy.NewPartial(3, 1),
	}

	for _, s := range strategies {
		t.Run(s.Method().String(), func(t *testing.T) {
			plan := mustPlan[int](t, s, SortRetainOrder, nil)

			groups, err := Distribute([]int{}, plan)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.Nil(t, groups)

			_, err = Distribute[int](nil, plan)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDistributor_ZeroPlan(t *testing.T) {
	_, err := Distribute([]int{1, 2}, Plan[int]{})

	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDistributor_Completeness(t *testing.T) {
	input := []int{4, 4, 1, 9, 4, 2, 2, 7, 0, 1, 3, 8, 8}
	plans := map[string]Plan[int]{
		"best_effort": mustPlan[int](t, strategy.NewBestEffort(4), SortNaturalOrder, nil),
		"even":        mustPlan[int](t, strategy.NewEven(13), SortNaturalOrderReversed, nil),
		"sequential":  mustPlan[int](t, strategy.NewSequential(5), SortRetainOrder, nil),
		"partial":     mustPlan[int](t, strategy.NewPartial(5, 4), SortCustom, func(a, b int) int { return a%3 - b%3 }),
	}

	for name, plan := range plans {
		t.Run(name, func(t *testing.T) {
			groups, err := Distribute(input, plan)

			require.NoError(t, err)
			distributetest.RequireComplete(t, input, groups)
		})
	}
}

func TestDistributor_DoesNotMutateInput(t *testing.T) {
	input := []int{5, 3, 9, 1}
	original := append([]int(nil), input...)

	groups, err := Distribute(input, mustPlan[int](t, strategy.NewBestEffort(2), SortNaturalOrder, nil))
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3}, {5, 9}}, groups)
	require.Equal(t, original, input)

	groups[0][0] = 100
	groups[0] = append(groups[0], 200)
	require.Equal(t, original, input)
	require.Equal(t, []int{5, 9}, groups[1])
}

func TestDistributor_Observability(t *testing.T) {
	t.Run("hooks receive the report", func(t *testing.T) {
		var reports []Report
		var rejected []error
		d := NewDistributor[int](
			WithLogger(distributetest.NewTestLogger(t)),
			WithHooks(&Hooks{
				OnDistributed: func(r Report) { reports = append(reports, r) },
				OnRejected:    func(err error) { rejected = append(rejected, err) },
			}),
		)

		_, err := d.Distribute(testElements(9), mustPlan[int](t, strategy.NewBestEffort(5), SortRetainOrder, nil))
		require.NoError(t, err)
		_, err = d.Distribute(testElements(9), mustPlan[int](t, strategy.NewEven(2), SortRetainOrder, nil))
		require.Error(t, err)

		require.Len(t, reports, 1)
		require.Equal(t, MethodBestEffort, reports[0].Method)
		require.Equal(t, 9, reports[0].Elements)
		require.Equal(t, []int{2, 2, 2, 2, 1}, reports[0].Sizes)
		require.Equal(t, 5, reports[0].Groups())

		require.Len(t, rejected, 1)
		require.True(t, errors.Is(rejected[0], ErrUnevenDistribution))
	})

	t.Run("metrics record outcomes", func(t *testing.T) {
		collector := &recordingMetrics{}
		d := NewDistributor[int](WithMetrics(collector))

		_, err := d.Distribute(testElements(10), mustPlan[int](t, strategy.NewSequential(3), SortRetainOrder, nil))
		require.NoError(t, err)
		_, err = d.Distribute(nil, mustPlan[int](t, strategy.NewSequential(3), SortRetainOrder, nil))
		require.Error(t, err)
		_, err = d.Distribute(testElements(2), Plan[int]{})
		require.Error(t, err)

		require.Equal(t, []string{"sequential:10:4"}, collector.successes)
		require.Equal(t, []string{"sequential:invalid_argument", "unknown:invalid_argument"}, collector.failures)
	})
}

type recordingMetrics struct {
	successes []string
	failures  []string
}

func (m *recordingMetrics) RecordDistribution(method string, elements, groups int, _ float64) {
	m.successes = append(m.successes, fmt.Sprintf("%s:%d:%d", method, elements, groups))
}

func (m *recordingMetrics) RecordDistributionError(method, kind string) {
	m.failures = append(m.failures, method+":"+kind)
}
