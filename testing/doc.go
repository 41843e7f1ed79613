// Package testing provides test utilities for code built on the distribute library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.T
//   - RequireComplete: Asserts every input element appears in exactly one group
//   - RequireSizes: Asserts the size of each group
//
// Example usage:
//
//	import (
//	    "testing"
//	    distributetest "github.com/arloliu/distribute/testing"
//	)
//
//	func TestBatches(t *testing.T) {
//	    groups, err := distribute.Distribute(items, plan)
//	    require.NoError(t, err)
//	    distributetest.RequireComplete(t, items, groups)
//	}
package testing
