package distribute

import "github.com/arloliu/distribute/types"

// Re-export types from the types package.
//
// Type aliases give users distribute.Method, distribute.Logger and friends
// while the strategy and adapter packages depend only on types, which keeps
// them free of import cycles with the root package.
type (
	Method        = types.Method
	SortingMethod = types.SortingMethod
	Report        = types.Report
)

// Re-export interfaces from the types package for convenience.
type (
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Method constants from the types package.
const (
	MethodBestEffort = types.MethodBestEffort
	MethodEven       = types.MethodEven
	MethodSequential = types.MethodSequential
	MethodPartial    = types.MethodPartial
)

// Re-export SortingMethod constants from the types package.
const (
	SortRetainOrder          = types.SortRetainOrder
	SortNaturalOrder         = types.SortNaturalOrder
	SortNaturalOrderReversed = types.SortNaturalOrderReversed
	SortCustom               = types.SortCustom
)
