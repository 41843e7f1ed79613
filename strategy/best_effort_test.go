package strategy

import (
	"testing"

	"github.com/arloliu/distribute/types"
	"github.com/stretchr/testify/require"
)

func TestBestEffort_Sizes(t *testing.T) {
	t.Run("splits evenly when divisible", func(t *testing.T) {
		sizes, err := NewBestEffort(2).Sizes(10)

		require.NoError(t, err)
		require.Equal(t, []int{5, 5}, sizes)
	})

	t.Run("leading groups absorb the remainder", func(t *testing.T) {
		sizes, err := NewBestEffort(5).Sizes(9)

		require.NoError(t, err)
		require.Equal(t, []int{2, 2, 2, 2, 1}, sizes)
	})

	t.Run("more groups than elements leaves trailing groups empty", func(t *testing.T) {
		sizes, err := NewBestEffort(4).Sizes(2)

		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 0, 0}, sizes)
	})

	t.Run("rejects non-positive group count", func(t *testing.T) {
		_, err := BestEffort{}.Sizes(10)
		require.ErrorIs(t, err, types.ErrInvalidArgument)

		_, err = NewBestEffort(-1).Sizes(10)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewBestEffort(2).Sizes(0)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})

	t.Run("cap is checked against the largest group", func(t *testing.T) {
		sizes, err := NewBestEffort(5, WithGroupCap(2)).Sizes(9)
		require.NoError(t, err)
		require.Equal(t, []int{2, 2, 2, 2, 1}, sizes)

		_, err = NewBestEffort(4, WithGroupCap(2)).Sizes(9)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
		require.Contains(t, err.Error(), "exceeds max group size")
	})

	t.Run("negative cap is invalid", func(t *testing.T) {
		err := NewBestEffort(2, WithGroupCap(-3)).Validate()
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})
}
