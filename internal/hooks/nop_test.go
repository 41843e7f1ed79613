package hooks

import (
	"errors"
	"testing"

	"github.com/arloliu/distribute/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()

	require.NotNil(t, hooks.OnDistributed)
	require.NotNil(t, hooks.OnRejected)
	require.NotPanics(t, func() {
		hooks.OnDistributed(types.Report{Sizes: []int{5, 5}})
		hooks.OnRejected(errors.New("uneven"))
	})
}

func TestResolve(t *testing.T) {
	t.Run("nil hooks resolve to no-ops", func(t *testing.T) {
		hooks := Resolve(nil)

		require.NotNil(t, hooks.OnDistributed)
		require.NotNil(t, hooks.OnRejected)
	})

	t.Run("keeps caller callbacks and fills the rest", func(t *testing.T) {
		var got types.Report
		hooks := Resolve(&types.Hooks{
			OnDistributed: func(r types.Report) { got = r },
		})

		hooks.OnDistributed(types.Report{Elements: 3, Sizes: []int{3}})
		require.Equal(t, 3, got.Elements)
		require.NotPanics(t, func() {
			hooks.OnRejected(errors.New("bad"))
		})
	})
}
