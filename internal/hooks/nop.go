// Package hooks provides no-op defaults for distribution hooks.
package hooks

import "github.com/arloliu/distribute/types"

// NopHooks implements Hooks with no-op callbacks.
//
// Used for every hook the caller left nil, eliminating nil checks in the engine.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(types.Report) = (*NopHooks)(nil).OnDistributed
	_ func(error)        = (*NopHooks)(nil).OnRejected
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnDistributed: h.OnDistributed,
		OnRejected:    h.OnRejected,
	}
}

// Resolve returns a copy of h with every nil callback replaced by a no-op.
//
// Parameters:
//   - h: Caller hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func Resolve(h *types.Hooks) types.Hooks {
	resolved := NewNop()
	if h == nil {
		return resolved
	}
	if h.OnDistributed != nil {
		resolved.OnDistributed = h.OnDistributed
	}
	if h.OnRejected != nil {
		resolved.OnRejected = h.OnRejected
	}

	return resolved
}

// OnDistributed is a no-op implementation.
func (h *NopHooks) OnDistributed(_ types.Report) {}

// OnRejected is a no-op implementation.
func (h *NopHooks) OnRejected(_ error) {}
