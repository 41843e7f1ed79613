package types

// Hooks defines callbacks for distribution outcomes.
//
// All hooks are optional. They run synchronously on the calling goroutine,
// after the result has been computed and before Distribute returns, so they
// must not block. Hooks observe outcomes only and cannot alter the result.
//
// Example:
//
//	hooks := &distribute.Hooks{
//	    OnDistributed: func(r distribute.Report) {
//	        log.Printf("%s produced %d groups", r.Method, r.Groups())
//	    },
//	}
type Hooks struct {
	// OnDistributed is called after a successful distribution.
	OnDistributed func(report Report)

	// OnRejected is called when a distribution fails, with the error returned
	// to the caller.
	OnRejected func(err error)
}
